package generate

import (
	"fmt"

	"mommy/report"
	"mommy/sem"
)

// genAssign compiles every `replace` form.  The shape is selected by the
// connector at position two and the total token count.
func genAssign(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < assignLen {
		return "", report.MissingArguments
	}

	switch tokens[assignWith] {
	case kwIn:
		return ctx.genArrayWrite(tokens)
	case kwWith:
		switch len(tokens) {
		case assignLen:
			return ctx.genScalarAssign(tokens)
		case ptrLen:
			return ctx.genPointerAssign(tokens)
		case readLen:
			if tokens[readIn] == kwIn {
				return ctx.genArrayRead(tokens)
			}
		}
	}

	return "", report.SyntaxError
}

// genScalarAssign compiles `replace <name> with <value>`.
func (ctx *Context) genScalarAssign(tokens []string) (string, error) {
	name, value := tokens[assignName], tokens[assignValue]

	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	// C arrays are not assignable
	if _, ok := dt.(sem.ArrayType); ok {
		return "", report.TypeMismatch
	}

	if err := ctx.checkValue(value); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s = %s;", name, cNull(value)), nil
}

// genArrayWrite compiles `replace <name> in <index> with <value>`.
func (ctx *Context) genArrayWrite(tokens []string) (string, error) {
	if len(tokens) < writeLen {
		return "", report.MissingArguments
	}

	if len(tokens) > writeLen || tokens[writeWith] != kwWith {
		return "", report.SyntaxError
	}

	name, index, value := tokens[writeName], tokens[writeIndex], tokens[writeValue]

	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	if !sem.IsIndexable(dt) {
		return "", report.TypeMismatch
	}

	if err := ctx.checkIndex(dt, index); err != nil {
		return "", err
	}

	if err := ctx.checkValue(value); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s[%s] = %s;", name, index, cNull(value)), nil
}

// genArrayRead compiles `replace <dest> with <array> in <index>`.
func (ctx *Context) genArrayRead(tokens []string) (string, error) {
	dest, array, index := tokens[readDest], tokens[readArray], tokens[readIndex]

	if _, err := ctx.Symbols.Lookup(dest); err != nil {
		return "", err
	}

	dt, err := ctx.Symbols.Lookup(array)
	if err != nil {
		return "", err
	}

	if !sem.IsIndexable(dt) {
		return "", report.TypeMismatch
	}

	if err := ctx.checkIndex(dt, index); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s = %s[%s];", dest, array, index), nil
}

// genPointerAssign compiles the pointer forms:
//
//	replace <box> with <var> address   take the address of a variable
//	replace <box> with <value> inside  write through a pointer
//	replace <var> with <box> inside    read through a pointer
func (ctx *Context) genPointerAssign(tokens []string) (string, error) {
	name, value := tokens[ptrName], tokens[ptrValue]

	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	switch tokens[ptrMode] {
	case kwAddress:
		if !sem.IsPointer(dt) {
			return "", report.TypeMismatch
		}

		vdt, err := ctx.Symbols.Lookup(value)
		if err != nil {
			return "", err
		}

		// a box only ever references integer cells
		if pt, ok := vdt.(sem.PrimType); !ok || (pt != sem.PrimInt && pt != sem.PrimAscii) {
			return "", report.TypeMismatch
		}

		return fmt.Sprintf("%s = &%s;", name, value), nil
	case kwInside:
		if sem.IsPointer(dt) {
			if err := ctx.checkValue(value); err != nil {
				return "", err
			}

			ctx.require(HeaderStdio)
			return fmt.Sprintf(
				"if (%[1]s == NULL) { printf(\"Mommy Error: NULL Pointer access on '%[1]s'\\n\"); return 1; } *%[1]s = %[2]s;",
				name, value,
			), nil
		}

		vdt, err := ctx.Symbols.Lookup(value)
		if err != nil {
			return "", err
		}

		if !sem.IsPointer(vdt) {
			return "", report.TypeMismatch
		}

		return fmt.Sprintf("%s = *%s;", name, value), nil
	}

	return "", report.SyntaxError
}
