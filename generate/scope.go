package generate

// ScopeKind is the kind of block a scope frame marks.
type ScopeKind int

// Enumeration of scope kinds
const (
	ScopeLoop      ScopeKind = iota // `punishme` and `punishmeif`
	ScopeCondition                  // `ask`
)

func (sk ScopeKind) String() string {
	if sk == ScopeLoop {
		return "loop"
	}

	return "condition"
}

// ScopeStack is the stack of currently open blocks.  The zero value is an
// empty stack.
type ScopeStack struct {
	frames []ScopeKind
}

// Push opens a new block.
func (ss *ScopeStack) Push(kind ScopeKind) {
	ss.frames = append(ss.frames, kind)
}

// Pop closes the innermost block regardless of its kind.  It returns false if
// there is no open block.
func (ss *ScopeStack) Pop() (ScopeKind, bool) {
	if len(ss.frames) == 0 {
		return 0, false
	}

	top := ss.frames[len(ss.frames)-1]
	ss.frames = ss.frames[:len(ss.frames)-1]
	return top, true
}

// Top returns the innermost open block.
func (ss *ScopeStack) Top() (ScopeKind, bool) {
	if len(ss.frames) == 0 {
		return 0, false
	}

	return ss.frames[len(ss.frames)-1], true
}

// Contains returns whether any open block is of the given kind.
func (ss *ScopeStack) Contains(kind ScopeKind) bool {
	for _, f := range ss.frames {
		if f == kind {
			return true
		}
	}

	return false
}

// Depth returns the number of open blocks.
func (ss *ScopeStack) Depth() int {
	return len(ss.frames)
}

// Empty returns whether every opened block has been closed.
func (ss *ScopeStack) Empty() bool {
	return len(ss.frames) == 0
}
