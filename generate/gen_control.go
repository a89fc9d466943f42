package generate

import (
	"fmt"

	"mommy/report"
	"mommy/sem"
)

// genLoopStart compiles a counted loop: `punishme <count>`.
func genLoopStart(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < loopLen {
		return "", report.MissingArguments
	}

	if len(tokens) > loopLen {
		return "", report.SyntaxError
	}

	count := tokens[loopCount]
	if n, ok := sem.ParseIndexLiteral(count); (!ok || n < 0) && !ctx.Symbols.Has(count) {
		return "", report.SyntaxError
	}

	ctx.Scopes.Push(ScopeLoop)
	return fmt.Sprintf("for (int i = 0; i < %s; i++) {", count), nil
}

// genLoopStartIf compiles a conditional loop: `punishmeif <condition...>`.  The
// condition is passed through to C unchanged.
func genLoopStartIf(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < loopLen {
		return "", report.MissingArguments
	}

	ctx.Scopes.Push(ScopeLoop)
	return fmt.Sprintf("while (%s) {", joinFrom(tokens, loopCondStart)), nil
}

// genLoopEnd compiles `done` which closes the innermost open block of either
// kind.
func genLoopEnd(ctx *Context, tokens []string) (string, error) {
	if _, ok := ctx.Scopes.Pop(); !ok {
		return "", report.UnexpectedDone
	}

	return "}", nil
}

// genLoopBreak compiles `satisfied` which leaves the innermost loop.
func genLoopBreak(ctx *Context, tokens []string) (string, error) {
	if !ctx.Scopes.Contains(ScopeLoop) {
		return "", report.UnexpectedSatisfied
	}

	return "break;", nil
}

// -----------------------------------------------------------------------------

// genCondition compiles `ask if <condition...>`.
func genCondition(ctx *Context, tokens []string) (string, error) {
	if len(tokens) <= askIf {
		return "", report.MissingArguments
	}

	if tokens[askIf] != kwIf {
		return "", report.SyntaxError
	}

	if len(tokens) < askMinLen {
		return "", report.MissingArguments
	}

	ctx.Scopes.Push(ScopeCondition)
	return fmt.Sprintf("if (%s) {", joinFrom(tokens, askCondStart)), nil
}

// genConditionElse compiles `or` which switches an open condition to its
// alternative branch.  The frame stays on the stack: it is closed by `done`.
func genConditionElse(ctx *Context, tokens []string) (string, error) {
	if top, ok := ctx.Scopes.Top(); !ok || top != ScopeCondition {
		return "", report.OrphanElse
	}

	if len(tokens) > 1 {
		return "", report.SyntaxError
	}

	return "} else {", nil
}

// genProgramEnd compiles `leave` which returns from the program early.
func genProgramEnd(ctx *Context, tokens []string) (string, error) {
	return "return 0;", nil
}
