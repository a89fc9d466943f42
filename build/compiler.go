package build

import (
	"strings"

	"mommy/generate"
	"mommy/report"
	"mommy/sem"
	"mommy/syntax"
)

// Compiler is the data structure responsible for maintaining the state of a
// single transpilation: one source file in, one C translation unit out.
type Compiler struct {
	// opts are the limits passed to every statement compiler
	opts generate.Options

	// ctx is the context of the most recent compilation.  It is kept so the
	// symbol table can be inspected after the fact.
	ctx *generate.Context
}

// NewCompiler creates a new compiler with the given statement compiler options.
func NewCompiler(opts generate.Options) *Compiler {
	return &Compiler{opts: opts}
}

// Compile transpiles the lines of a source file.  Every call starts from an
// empty symbol table and scope stack.  On failure, the returned unit holds all
// the code generated before the failing line and the error is always a
// `*report.CompileError`.
func (c *Compiler) Compile(lines []string) (*Unit, error) {
	c.ctx = generate.NewContext(c.opts)
	unit := &Unit{}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		code, err := c.ctx.CompileStatement(syntax.Tokenize(line))
		if err != nil {
			unit.Includes = c.ctx.Includes.Lines()
			return unit, raise(i+1, err, line)
		}

		if code != "" {
			unit.Body = append(unit.Body, code)
		}
	}

	unit.Includes = c.ctx.Includes.Lines()

	if !c.ctx.Scopes.Empty() {
		return unit, report.Raise(0, report.UnclosedBlock, "")
	}

	return unit, nil
}

// Symbols returns the symbol table of the most recent compilation.  It is nil
// if nothing has been compiled yet.
func (c *Compiler) Symbols() *sem.SymbolTable {
	if c.ctx == nil {
		return nil
	}

	return c.ctx.Symbols
}

// raise tags a statement compiler error with its source position.
func raise(line int, err error, text string) *report.CompileError {
	kind, ok := err.(report.ErrorKind)
	if !ok {
		kind = report.SyntaxError
	}

	return report.Raise(line, kind, text)
}

// Transpile compiles a complete source text with default options and returns
// the rendered C.
func Transpile(src string) (string, error) {
	unit, err := NewCompiler(generate.DefaultOptions()).Compile(SplitLines(src))
	if err != nil {
		return "", err
	}

	return unit.Render(), nil
}

// SplitLines splits source text into physical lines.
func SplitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}
