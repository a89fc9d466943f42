package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"mommy/casebook"
	"mommy/generate"
	"mommy/report"
)

// compileSource compiles source text with the default options.
func compileSource(src string) (*Unit, error) {
	return NewCompiler(generate.DefaultOptions()).Compile(SplitLines(src))
}

// compileError compiles source text that must fail and returns its error.
func compileError(t *testing.T, src string) *report.CompileError {
	t.Helper()

	_, err := compileSource(src)
	be.True(t, err != nil)

	var ce *report.CompileError
	be.True(t, errors.As(err, &ce))
	return ce
}

func TestCaseBook(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	be.Err(t, err, nil)
	be.True(t, len(paths) > 0)

	for _, path := range paths {
		buff, err := os.ReadFile(path)
		be.Err(t, err, nil)

		cases, err := casebook.ExtractCases(string(buff))
		be.Err(t, err, nil)

		for _, c := range cases {
			t.Run(filepath.Base(path)+"/"+c.Name, func(t *testing.T) {
				unit, err := compileSource(c.Source)

				if c.ExpectsError() {
					var ce *report.CompileError
					be.True(t, errors.As(err, &ce))
					be.Equal(t, ce.Short(), c.WantError)
					return
				}

				be.Err(t, err, nil)
				be.Equal(t, unit.Render(), c.WantC)
			})
		}
	}
}

func TestDeclarationProperty(t *testing.T) {
	for _, v := range []string{"0", "1", "-7", "42", "65535"} {
		unit, err := compileSource("decl " + v + " in n as int")
		be.Err(t, err, nil)
		be.Equal(t, unit.Body, []string{"int n = " + v + ";"})

		ce := compileError(t, "decl "+v+" in n as int\ndecl "+v+" in n as int")
		be.Equal(t, ce.Line, 2)
		be.Err(t, ce, report.VariableAlreadyExists)
	}
}

func TestDivideProperty(t *testing.T) {
	for _, typ := range []string{"int", "float", "ascii"} {
		ce := compileError(t, "mayihave 1 in x as "+typ+"\ndivide x with 0")
		be.Err(t, ce, report.DivideByZero)

		ce = compileError(t, "mayihave 1 in x as "+typ+"\ndivide x with y")
		be.Err(t, ce, report.UndeclaredVariable)
	}
}

func TestArrayBoundsProperty(t *testing.T) {
	ce := compileError(t, "group 5 in arr as int\nreplace arr in 5 with 1")
	be.Err(t, ce, report.AccessViolation)
	be.Equal(t, ce.Line, 2)
	be.Equal(t, ce.Text, "replace arr in 5 with 1")

	unit, err := compileSource("group 5 in arr as int\nreplace arr in 4 with 1")
	be.Err(t, err, nil)
	be.Equal(t, unit.Body[1], "arr[4] = 1;")
}

func TestBlockProperties(t *testing.T) {
	ce := compileError(t, "punishme 3")
	be.Err(t, ce, report.UnclosedBlock)
	be.Equal(t, ce.Line, 0)

	ce = compileError(t, "done")
	be.Err(t, ce, report.UnexpectedDone)

	ce = compileError(t, "satisfied")
	be.Err(t, ce, report.UnexpectedSatisfied)

	ce = compileError(t, "or")
	be.Err(t, ce, report.OrphanElse)

	ce = compileError(t, "punishme 1\nor\ndone")
	be.Err(t, ce, report.OrphanElse)

	_, err := compileSource("ask if 1\nor\ndone")
	be.Err(t, err, nil)
}

func TestSayProperty(t *testing.T) {
	unit, err := compileSource(`say "Hello"`)
	be.Err(t, err, nil)
	be.Equal(t, unit.Body, []string{`printf("Hello\n");`})

	unit, err = compileSource("mayihave 1.5 in x as float\nsay x")
	be.Err(t, err, nil)
	be.Equal(t, unit.Body[1], `printf("%f\n", x);`)
}

func TestRoundTripIdempotence(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "control.md"))
	be.Err(t, err, nil)

	cases, err := casebook.ExtractCases(string(src))
	be.Err(t, err, nil)

	c := NewCompiler(generate.DefaultOptions())
	for _, tc := range cases {
		first, err := c.Compile(SplitLines(tc.Source))
		be.Err(t, err, nil)

		second, err := c.Compile(SplitLines(tc.Source))
		be.Err(t, err, nil)

		be.Equal(t, second.Render(), first.Render())
	}
}

func TestPartialUnitOnFailure(t *testing.T) {
	unit, err := compileSource("makeme ask_more\nmayihave 1 in x as int\nsay y\nsay x")
	be.Err(t, err, report.UndeclaredVariable)
	be.Equal(t, unit.Body, []string{"int x = 1;"})
	be.Equal(t, unit.Includes, []string{generate.HeaderStdlib})
}

func TestCompilerSymbols(t *testing.T) {
	c := NewCompiler(generate.DefaultOptions())
	be.True(t, c.Symbols() == nil)

	_, err := c.Compile([]string{"mayihave 1 in b as int", "group 2 in a as float"})
	be.Err(t, err, nil)
	be.Equal(t, c.Symbols().Names(), []string{"a", "b"})

	// a later compilation starts from an empty table
	_, err = c.Compile([]string{"mayihave 1 in b as int"})
	be.Err(t, err, nil)
	be.Equal(t, c.Symbols().Names(), []string{"b"})
}

func TestTranspile(t *testing.T) {
	out, err := Transpile("mayihave 1 in x as int\r\nleave\r\n")
	be.Err(t, err, nil)
	be.Equal(t, out, "int main() {\n    int x = 1;\n    return 0;\n    return 0;\n}\n")

	_, err = Transpile("mayihave 1 in x as int\nadd x with s")
	be.Err(t, err, report.UndeclaredVariable)
	be.True(t, strings.HasPrefix(err.Error(), "line 2: "))
}

func TestRenderEmpty(t *testing.T) {
	u := &Unit{}
	be.Equal(t, u.Render(), "int main() {\n    return 0;\n}\n")
}
