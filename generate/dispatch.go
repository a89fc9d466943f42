package generate

import (
	"mommy/report"
	"mommy/syntax"
)

// StmtCompiler compiles one tokenized statement into a line of C.  An empty
// result means the statement emits no code.
type StmtCompiler func(ctx *Context, tokens []string) (string, error)

// compilers holds exactly one statement compiler for every command kind
var compilers = [syntax.NumCommandKinds]StmtCompiler{
	syntax.CmdUnknown:       genUnknown,
	syntax.CmdDeclare:       genDeclare,
	syntax.CmdAssign:        genAssign,
	syntax.CmdArray:         genArray,
	syntax.CmdString:        genString,
	syntax.CmdAlloc:         genAlloc,
	syntax.CmdFree:          genFree,
	syntax.CmdMath:          genMath,
	syntax.CmdSay:           genSay,
	syntax.CmdListen:        genListen,
	syntax.CmdLoopStart:     genLoopStart,
	syntax.CmdLoopStartIf:   genLoopStartIf,
	syntax.CmdLoopEnd:       genLoopEnd,
	syntax.CmdLoopBreak:     genLoopBreak,
	syntax.CmdCondition:     genCondition,
	syntax.CmdConditionElse: genConditionElse,
	syntax.CmdProgramEnd:    genProgramEnd,
	syntax.CmdInclude:       genInclude,
}

// StatementCompiler returns the compiler for a command kind.  Out of range
// kinds are treated as unknown.
func StatementCompiler(kind syntax.CommandKind) StmtCompiler {
	if kind < 0 || kind >= syntax.NumCommandKinds {
		return genUnknown
	}

	return compilers[kind]
}

// CompileStatement classifies and compiles a single tokenized line.
func (ctx *Context) CompileStatement(tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}

	return StatementCompiler(syntax.Classify(tokens[0]))(ctx, tokens)
}

func genUnknown(ctx *Context, tokens []string) (string, error) {
	return "", report.SyntaxError
}
