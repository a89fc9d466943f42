package report

import "fmt"

// ErrorKind is one of the closed set of MommyLang compilation errors.  It
// implements `error` so statement compilers can return a kind directly and
// callers can match it with `errors.Is`.
type ErrorKind int

// Enumeration of error kinds.  The order is significant only for display.
const (
	// argument/shape errors
	MissingArguments ErrorKind = iota
	SyntaxError
	InvalidVariableName

	// symbol table errors
	UndeclaredVariable
	VariableAlreadyExists
	TypeMismatch

	// memory/array safety errors
	AccessViolation
	IndexOutOfBounds
	InvalidArraySize

	// arithmetic errors
	MathOnString
	DivideByZero

	// block structure errors
	UnclosedBlock
	UnexpectedDone
	UnexpectedSatisfied
	OrphanElse

	// lookup errors
	UnknownPackage
)

var kindNames = map[ErrorKind]string{
	MissingArguments:      "MissingArguments",
	SyntaxError:           "SyntaxError",
	InvalidVariableName:   "InvalidVariableName",
	UndeclaredVariable:    "UndeclaredVariable",
	VariableAlreadyExists: "VariableAlreadyExists",
	TypeMismatch:          "TypeMismatch",
	AccessViolation:       "AccessViolation",
	IndexOutOfBounds:      "IndexOutOfBounds",
	InvalidArraySize:      "InvalidArraySize",
	MathOnString:          "MathOnString",
	DivideByZero:          "DivideByZero",
	UnclosedBlock:         "UnclosedBlock",
	UnexpectedDone:        "UnexpectedDone",
	UnexpectedSatisfied:   "UnexpectedSatisfied",
	OrphanElse:            "OrphanElse",
	UnknownPackage:        "UnknownPackage",
}

var kindMessages = map[ErrorKind]string{
	MissingArguments:      "You stopped talking mid-sentence. Finish what you started.",
	SyntaxError:           "I can't read this mess. Fix your grammar.",
	InvalidVariableName:   "That name is forbidden. Do not test my authority.",
	UndeclaredVariable:    "Who is that? Define your names before you use them.",
	VariableAlreadyExists: "We already have that. Be creative, or be quiet.",
	TypeMismatch:          "Square peg, round hole. Stop forcing things where they don't belong.",
	AccessViolation:       "Do not touch that memory. That is MINE.",
	IndexOutOfBounds:      "You are reaching too far! That shelf doesn't exist.",
	InvalidArraySize:      "A group cannot be that size. Use a real number.",
	MathOnString:          "You cannot do math on words.",
	DivideByZero:          "Divide by zero? Do you WANT to break the universe?",
	UnclosedBlock:         "You opened a door and forgot to close it. Close your blocks.",
	UnexpectedDone:        "You said 'done' but you haven't even started.",
	UnexpectedSatisfied:   "You skipped the work but want the reward? Only loops can be satisfied.",
	OrphanElse:            "This 'or' has no 'ask'. It is all alone.",
	UnknownPackage:        "We do not have that kind of tool in our house.",
}

// Name returns the identifier-style name of the kind: eg. `DivideByZero`.
func (k ErrorKind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}

	return k.Name()
}

// -----------------------------------------------------------------------------

// CompileError is a compilation error tagged with the source line on which it
// occurred.  It is the only kind of error the pipeline driver returns for bad
// input code.
type CompileError struct {
	// Line is the 1-based source line.  A line of zero indicates that the
	// error was detected at the end of the file (eg. an unclosed block).
	Line int

	// Kind is the specific error.
	Kind ErrorKind

	// Text is the trimmed source text of the offending line, if any.
	Text string
}

// Raise creates a new compile error at the given line.
func Raise(line int, kind ErrorKind, text string) *CompileError {
	return &CompileError{Line: line, Kind: kind, Text: text}
}

func (ce *CompileError) Error() string {
	if ce.Line == 0 {
		return fmt.Sprintf("end of file: %s: %s", ce.Kind.Name(), ce.Kind.Error())
	}

	return fmt.Sprintf("line %d: %s: %s", ce.Line, ce.Kind.Name(), ce.Kind.Error())
}

// Unwrap exposes the error kind to `errors.Is` and `errors.As`.
func (ce *CompileError) Unwrap() error {
	return ce.Kind
}

// Short returns the condensed `line N: Kind` form used by the test case book.
func (ce *CompileError) Short() string {
	if ce.Line == 0 {
		return "end of file: " + ce.Kind.Name()
	}

	return fmt.Sprintf("line %d: %s", ce.Line, ce.Kind.Name())
}
