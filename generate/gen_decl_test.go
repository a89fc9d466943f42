package generate

import (
	"testing"

	"github.com/nalgeon/be"

	"mommy/report"
	"mommy/sem"
)

func TestDeclare(t *testing.T) {
	cases := []struct {
		line, want string
	}{
		{"mayihave 10 in x as int", "int x = 10;"},
		{"decl 10 in x as int", "int x = 10;"},
		{"mayihave 2.5 in f as float", "float f = 2.5;"},
		{"mayihave 65 in c as ascii", "int c = 65;"},
		{"mayihave 'A' in c as ascii", "int c = 'A';"},
		{`mayihave "hi" in s as string`, `char* s = "hi";`},
		{"mayihave null in p as box", "int* p = NULL;"},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			be.Equal(t, lastLine(t, c.line), c.want)
		})
	}
}

func TestDeclareFromVariable(t *testing.T) {
	be.Equal(t, lastLine(t, "mayihave 1 in x as int", "mayihave x in y as int"), "int y = x;")
}

func TestDeclareErrors(t *testing.T) {
	cases := []struct {
		lines []string
		want  report.ErrorKind
	}{
		{[]string{"mayihave 10 in x"}, report.MissingArguments},
		{[]string{"mayihave"}, report.MissingArguments},
		{[]string{"mayihave 10 in x as int please"}, report.SyntaxError},
		{[]string{"mayihave 10 on x as int"}, report.SyntaxError},
		{[]string{"mayihave 10 in x is int"}, report.SyntaxError},
		{[]string{"mayihave 10 in x as double"}, report.SyntaxError},
		{[]string{"mayihave 10 in int as int"}, report.InvalidVariableName},
		{[]string{"mayihave 10 in 9lives as int"}, report.InvalidVariableName},
		{[]string{"mayihave y in x as int"}, report.UndeclaredVariable},
		{[]string{"mayihave 1 in x as int", "mayihave 2 in x as float"}, report.VariableAlreadyExists},
	}

	for _, c := range cases {
		_, _, err := compileLines(c.lines...)
		be.Err(t, err, c.want)
	}
}

func TestArrayDeclare(t *testing.T) {
	ctx, out, err := compileLines("group 5 in arr as int", "words 10 in name as ascii")
	be.Err(t, err, nil)
	be.Equal(t, out, []string{"int arr[5] = {0};", "int name[10] = {0};"})

	dt, _ := ctx.Symbols.Lookup("arr")
	be.True(t, sem.Equals(dt, sem.ArrayType{Elem: sem.PrimInt, Len: 5}))

	dt, _ = ctx.Symbols.Lookup("name")
	be.True(t, sem.Equals(dt, sem.ArrayType{Elem: sem.PrimAscii, Len: 10}))
}

func TestArrayDeclareErrors(t *testing.T) {
	cases := []struct {
		line string
		want report.ErrorKind
	}{
		{"group 0 in a as int", report.InvalidArraySize},
		{"group -3 in a as int", report.InvalidArraySize},
		{"group 70000 in a as int", report.InvalidArraySize},
		{"group n in a as int", report.InvalidArraySize},
		{"group 5 in a as box", report.SyntaxError},
		{"group 5 in a", report.MissingArguments},
		{"words 10 in w as int", report.TypeMismatch},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			_, _, err := compileLines(c.line)
			be.Err(t, err, c.want)
		})
	}
}

// -----------------------------------------------------------------------------

func TestAlloc(t *testing.T) {
	ctx, out, err := compileLines("ibegyou 10 in buf as int")
	be.Err(t, err, nil)
	be.Equal(t, out, []string{
		`int* buf = (int*)malloc(10 * sizeof(int)); if (buf == NULL) { printf("Mommy Error: No memory for buf\n"); return 1; }`,
	})
	be.Equal(t, ctx.Includes.Lines(), []string{HeaderStdio, HeaderStdlib})
}

func TestAllocVariableSize(t *testing.T) {
	ctx, out, err := compileLines("mayihave 4 in n as int", "ibegyou n in buf as float")
	be.Err(t, err, nil)
	be.Equal(t, out[1], `float* buf = (float*)malloc(n * sizeof(float)); if (buf == NULL) { printf("Mommy Error: No memory for buf\n"); return 1; }`)

	dt, _ := ctx.Symbols.Lookup("buf")
	_, known := sem.KnownLen(dt)
	be.True(t, !known)
}

func TestAllocErrors(t *testing.T) {
	_, _, err := compileLines("ibegyou k in buf as int")
	be.Err(t, err, report.InvalidArraySize)

	_, _, err = compileLines("ibegyou 0 in buf as int")
	be.Err(t, err, report.InvalidArraySize)

	_, _, err = compileLines("ibegyou 4 in buf as thing")
	be.Err(t, err, report.SyntaxError)
}

func TestFree(t *testing.T) {
	be.Equal(t, lastLine(t, "ibegyou 10 in buf as int", "takeitback buf"), "free(buf); buf = NULL;")
	be.Equal(t, lastLine(t, "mayihave null in p as box", "takeitback p"), "free(p); p = NULL;")
}

func TestFreeErrors(t *testing.T) {
	_, _, err := compileLines("takeitback")
	be.Err(t, err, report.MissingArguments)

	_, _, err = compileLines("takeitback ghost")
	be.Err(t, err, report.UndeclaredVariable)

	_, _, err = compileLines("mayihave 1 in x as int", "takeitback x")
	be.Err(t, err, report.TypeMismatch)

	_, _, err = compileLines("group 3 in a as int", "takeitback a")
	be.Err(t, err, report.TypeMismatch)

	_, _, err = compileLines("ibegyou 3 in b as int", "takeitback b now")
	be.Err(t, err, report.SyntaxError)
}
