package generate

import (
	"fmt"
	"strconv"
	"strings"

	"mommy/report"
	"mommy/sem"
	"mommy/syntax"
)

// genSay compiles the three forms of `say`:
//
//	say "text"            print a string literal
//	say <array> in <idx>  print one element, or every element with `?`
//	say <value>           print a variable or numeric literal
func genSay(ctx *Context, tokens []string) (string, error) {
	code, err := ctx.sayCode(tokens)
	if err != nil {
		return "", err
	}

	ctx.require(HeaderStdio)
	return code, nil
}

// sayCode selects the `say` form from the shape of the statement.
func (ctx *Context) sayCode(tokens []string) (string, error) {
	if len(tokens) < sayMinLen {
		return "", report.MissingArguments
	}

	if syntax.IsStringLiteral(tokens[sayValue]) {
		msg := strings.Trim(joinFrom(tokens, sayValue), `"`)
		msg = strings.ReplaceAll(printfEscape(msg), `"`, `\"`)
		return fmt.Sprintf("printf(\"%s\\n\");", msg), nil
	}

	if len(tokens) >= sayIndexLen && tokens[sayIn] == kwIn {
		if len(tokens) > sayIndexLen {
			return "", report.SyntaxError
		}

		return ctx.sayIndexed(tokens[sayValue], tokens[sayIndex])
	}

	if len(tokens) > sayMinLen {
		return "", report.SyntaxError
	}

	return ctx.sayScalar(tokens[sayValue])
}

// sayIndexed prints a single element of an indexable variable or, for the
// wildcard index, all of its elements.
func (ctx *Context) sayIndexed(name, index string) (string, error) {
	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	if !sem.IsIndexable(dt) {
		return "", report.TypeMismatch
	}

	if index == kwWildcard {
		length, ok := sem.KnownLen(dt)
		if !ok {
			return "", report.AccessViolation
		}

		return sayAll(name, sem.ElemType(dt), length), nil
	}

	if err := ctx.checkIndex(dt, index); err != nil {
		return "", err
	}

	return fmt.Sprintf("printf(\"%s\\n\", %s[%s]);", elemFormat(sem.ElemType(dt)), name, index), nil
}

// sayScalar prints a literal or a whole variable.
func (ctx *Context) sayScalar(name string) (string, error) {
	if _, err := strconv.Atoi(name); err == nil {
		return fmt.Sprintf("printf(\"%%d\\n\", %s);", name), nil
	}

	if isNumberLiteral(name) {
		return fmt.Sprintf("printf(\"%%f\\n\", %s);", name), nil
	}

	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	switch v := dt.(type) {
	case sem.PrimType:
		return fmt.Sprintf("printf(\"%s\\n\", %s);", elemFormat(v), name), nil
	case sem.PointerType:
		return fmt.Sprintf("if (%[1]s == NULL) { printf(\"NULL\\n\"); } else { printf(\"%%d\\n\", *%[1]s); }", name), nil
	case sem.ArrayType, sem.HeapType:
		if length, ok := sem.KnownLen(dt); ok {
			return sayAll(name, sem.ElemType(dt), length), nil
		}
	}

	return "", report.TypeMismatch
}

// sayAll emits a loop printing every element of an array.  Character arrays are
// printed as text; everything else is space-separated.
func sayAll(name string, elem sem.PrimType, length int) string {
	format := elemFormat(elem)
	if elem != sem.PrimAscii {
		format += " "
	}

	return fmt.Sprintf(
		"for (int i = 0; i < %d; i++) { printf(\"%s\", %s[i]); } printf(\"\\n\");",
		length, format, name,
	)
}

// -----------------------------------------------------------------------------

// genListen compiles `listen <name> [upto <size>]` which reads one line of
// standard input into a variable.
func genListen(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < listenMinLen {
		return "", report.MissingArguments
	}

	name := tokens[listenName]
	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	size := ctx.Options.InputBufferSize
	knownLen, hasLen := sem.KnownLen(dt)
	if hasLen {
		size = knownLen
	}

	switch len(tokens) {
	case listenMinLen:
	case listenUptoLen:
		if tokens[listenUpto] != kwUpto {
			return "", report.SyntaxError
		}

		n, err := ctx.parseSize(tokens[listenSize])
		if err != nil {
			return "", err
		}

		if hasLen && n > knownLen {
			return "", report.AccessViolation
		}

		size = n
	default:
		return "", report.SyntaxError
	}

	switch v := dt.(type) {
	case sem.PrimType:
		switch v {
		case sem.PrimInt:
			ctx.require(HeaderStdio, HeaderStdlib)
			return listenNumber(name, "atoi"), nil
		case sem.PrimFloat:
			ctx.require(HeaderStdio, HeaderStdlib)
			return listenNumber(name, "atof"), nil
		case sem.PrimAscii:
			ctx.require(HeaderStdio)
			return fmt.Sprintf("{ char _mommy_buf[64]; if(fgets(_mommy_buf, 64, stdin)) { %s = (int)_mommy_buf[0]; } }", name), nil
		case sem.PrimString:
			ctx.require(HeaderStdio, HeaderString)
			return fmt.Sprintf("fgets(%[1]s, %[2]d, stdin); %[1]s[strcspn(%[1]s, \"\\n\")] = 0;", name, size), nil
		}
	case sem.ArrayType, sem.HeapType:
		switch sem.ElemType(dt) {
		case sem.PrimAscii, sem.PrimInt:
			ctx.require(HeaderStdio)
			return listenCodes(name, size), nil
		}
	}

	return "", report.TypeMismatch
}

// listenNumber emits a read of one number through a small temporary buffer.
func listenNumber(name, conv string) string {
	return fmt.Sprintf("{ char _mommy_buf[64]; if(fgets(_mommy_buf, 64, stdin)) { %s = %s(_mommy_buf); } }", name, conv)
}

// listenCodes emits a read of one line into an array of character codes.  Every
// element after the line terminator is zeroed.
func listenCodes(name string, size int) string {
	return fmt.Sprintf(
		"{ char _temp_ascii[%[2]d]; if(fgets(_temp_ascii, %[2]d, stdin)) { "+
			"for(int i=0; i<%[2]d; i++) { "+
			"if(_temp_ascii[i] == '\\0' || _temp_ascii[i] == '\\n') { %[1]s[i] = 0; for(int j=i+1; j<%[2]d; j++) { %[1]s[j] = 0; } break; } "+
			"%[1]s[i] = (int)_temp_ascii[i]; } } }",
		name, size,
	)
}
