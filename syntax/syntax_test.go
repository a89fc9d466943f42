package syntax

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"spaces only", "   \t ", nil},
		{"declaration", "mayihave 5 in x as int", []string{"mayihave", "5", "in", "x", "as", "int"}},
		{"mixed whitespace", "say\tx\r\n", []string{"say", "x"}},
		{"quoted", `say "Hello World"`, []string{"say", `"Hello World"`}},
		{"quoted with tab", "say \"a\tb\"", []string{"say", "\"a\tb\""}},
		{"glued quotes", `say abc"d e"f`, []string{"say", `abc"d e"f`}},
		{"unterminated", `say "oops here`, []string{"say", `"oops here`}},
		{"repeated spaces", "add  x   with 1", []string{"add", "x", "with", "1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			be.Equal(t, Tokenize(tc.line), tc.want)
		})
	}
}

func TestIsStringLiteral(t *testing.T) {
	be.True(t, IsStringLiteral(`"hi"`))
	be.True(t, !IsStringLiteral("hi"))
	be.True(t, !IsStringLiteral(""))
}

func TestClassify(t *testing.T) {
	tests := map[string]CommandKind{
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
		"Say":        CmdUnknown,
		"print":      CmdUnknown,
		"":           CmdUnknown,
	}

	for tok, want := range tests {
		be.Equal(t, Classify(tok), want)
	}
}

func TestCommandKindString(t *testing.T) {
	for k := CmdUnknown; k < NumCommandKinds; k++ {
		be.True(t, k.String() != "")
	}
	be.Equal(t, CmdMath.String(), "arithmetic")
	be.Equal(t, CommandKind(-1).String(), "unknown")
}
