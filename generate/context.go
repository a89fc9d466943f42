package generate

import "mommy/sem"

// Options are the tunable limits used by the statement compilers.
type Options struct {
	// MaxArraySize is the largest length accepted for `group`, `words`, and
	// `ibegyou` sizes.
	MaxArraySize int

	// InputBufferSize is the buffer size used by `listen` when neither an
	// explicit `upto` size nor a known array length is available.
	InputBufferSize int
}

// Default option values
const (
	DefaultMaxArraySize    = 65536
	DefaultInputBufferSize = 128
)

// DefaultOptions returns the default statement compiler options.
func DefaultOptions() Options {
	return Options{
		MaxArraySize:    DefaultMaxArraySize,
		InputBufferSize: DefaultInputBufferSize,
	}
}

// Context is the mutable state of a single compilation.  It is threaded through
// every statement compiler and is never shared between compilations.
type Context struct {
	// Symbols is the table of all declared variables.
	Symbols *sem.SymbolTable

	// Scopes is the stack of currently open blocks.
	Scopes *ScopeStack

	// Includes is the insertion-ordered set of include lines required by the
	// generated code.
	Includes *IncludeSet

	// Options are the limits in effect for this compilation.
	Options Options
}

// NewContext creates a fresh compilation context.
func NewContext(opts Options) *Context {
	if opts.MaxArraySize <= 0 {
		opts.MaxArraySize = DefaultMaxArraySize
	}

	if opts.InputBufferSize <= 0 {
		opts.InputBufferSize = DefaultInputBufferSize
	}

	return &Context{
		Symbols:  sem.NewSymbolTable(),
		Scopes:   &ScopeStack{},
		Includes: NewIncludeSet(),
		Options:  opts,
	}
}

// require records the headers a generated statement depends on.
func (ctx *Context) require(headers ...string) {
	for _, h := range headers {
		ctx.Includes.Add(h)
	}
}
