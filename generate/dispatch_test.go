package generate

import (
	"testing"

	"github.com/nalgeon/be"

	"mommy/report"
	"mommy/syntax"
)

// compileLines runs each line through a fresh context and returns the
// non-empty output lines produced before the first error.
func compileLines(lines ...string) (*Context, []string, error) {
	ctx := NewContext(DefaultOptions())

	var out []string
	for _, line := range lines {
		code, err := ctx.CompileStatement(syntax.Tokenize(line))
		if err != nil {
			return ctx, out, err
		}

		if code != "" {
			out = append(out, code)
		}
	}

	return ctx, out, nil
}

// lastLine compiles lines and returns the code of the final one.
func lastLine(t *testing.T, lines ...string) string {
	t.Helper()

	_, out, err := compileLines(lines...)
	be.Err(t, err, nil)
	be.True(t, len(out) > 0)
	return out[len(out)-1]
}

func TestEveryKindHasCompiler(t *testing.T) {
	for kind := syntax.CmdUnknown; kind < syntax.NumCommandKinds; kind++ {
		be.True(t, compilers[kind] != nil)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := compileLines("gimme 5")
	be.Err(t, err, report.SyntaxError)

	_, err = StatementCompiler(syntax.NumCommandKinds + 3)(NewContext(DefaultOptions()), []string{"x"})
	be.Err(t, err, report.SyntaxError)
}

func TestEmptyStatement(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	code, err := ctx.CompileStatement(nil)
	be.Err(t, err, nil)
	be.Equal(t, code, "")
}

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext(Options{})
	be.Equal(t, ctx.Options.MaxArraySize, DefaultMaxArraySize)
	be.Equal(t, ctx.Options.InputBufferSize, DefaultInputBufferSize)
	be.True(t, ctx.Scopes.Empty())
	be.Equal(t, ctx.Symbols.Len(), 0)
}

func TestFailedStatementLeavesNoSymbol(t *testing.T) {
	ctx, _, err := compileLines("mayihave 5 in x as double")
	be.Err(t, err, report.SyntaxError)
	be.True(t, !ctx.Symbols.Has("x"))
}

func TestMaxArraySizeOption(t *testing.T) {
	ctx := NewContext(Options{MaxArraySize: 8})

	_, err := ctx.CompileStatement(syntax.Tokenize("group 8 in a as int"))
	be.Err(t, err, nil)

	_, err = ctx.CompileStatement(syntax.Tokenize("group 9 in b as int"))
	be.Err(t, err, report.InvalidArraySize)
}
