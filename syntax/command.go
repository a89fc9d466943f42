package syntax

// CommandKind is the kind of command a source line performs.  It is decided
// entirely by the first token of the line.
type CommandKind int

// Enumeration of command kinds
const (
	CmdUnknown CommandKind = iota

	// variables
	CmdDeclare
	CmdAssign
	CmdArray
	CmdString

	// dynamic memory
	CmdAlloc
	CmdFree

	// arithmetic
	CmdMath

	// input/output
	CmdSay
	CmdListen

	// loops
	CmdLoopStart
	CmdLoopStartIf
	CmdLoopEnd
	CmdLoopBreak

	// conditions
	CmdCondition
	CmdConditionElse

	// system
	CmdProgramEnd
	CmdInclude

	// NumCommandKinds is the number of command kinds including CmdUnknown.
	NumCommandKinds
)

// keywords maps every leading keyword to its command kind
var keywords = map[string]CommandKind{
	"mayihave":   CmdDeclare,
	"decl":       CmdDeclare,
	"replace":    CmdAssign,
	"group":      CmdArray,
	"words":      CmdString,
	"ibegyou":    CmdAlloc,
	"takeitback": CmdFree,
	"add":        CmdMath,
	"subtract":   CmdMath,
	"multiply":   CmdMath,
	"divide":     CmdMath,
	"mod":        CmdMath,
	"say":        CmdSay,
	"listen":     CmdListen,
	"punishme":   CmdLoopStart,
	"punishmeif": CmdLoopStartIf,
	"done":       CmdLoopEnd,
	"satisfied":  CmdLoopBreak,
	"ask":        CmdCondition,
	"or":         CmdConditionElse,
	"leave":      CmdProgramEnd,
	"makeme":     CmdInclude,
}

// Classify maps the first token of a line to its command kind.  Unrecognized
// tokens classify as CmdUnknown.
func Classify(tok string) CommandKind {
	if kind, ok := keywords[tok]; ok {
		return kind
	}

	return CmdUnknown
}

var commandNames = [NumCommandKinds]string{
	CmdUnknown:       "unknown",
	CmdDeclare:       "declaration",
	CmdAssign:        "assignment",
	CmdArray:         "array",
	CmdString:        "string",
	CmdAlloc:         "allocation",
	CmdFree:          "release",
	CmdMath:          "arithmetic",
	CmdSay:           "output",
	CmdListen:        "input",
	CmdLoopStart:     "loop",
	CmdLoopStartIf:   "conditional loop",
	CmdLoopEnd:       "block end",
	CmdLoopBreak:     "break",
	CmdCondition:     "condition",
	CmdConditionElse: "else",
	CmdProgramEnd:    "program end",
	CmdInclude:       "include",
}

func (ck CommandKind) String() string {
	if ck >= 0 && ck < NumCommandKinds {
		return commandNames[ck]
	}

	return "unknown"
}
