package generate

import (
	"fmt"

	"mommy/report"
	"mommy/sem"
)

// genAlloc compiles a heap allocation: `ibegyou <size> in <name> as <type>`.
// The size is either an integer literal or a declared variable; in the latter
// case the block's length is unknown at compile time.
func genAlloc(ctx *Context, tokens []string) (string, error) {
	if err := checkDeclShape(tokens); err != nil {
		return "", err
	}

	elem, ok := sem.ParsePrimType(tokens[declType])
	if !ok {
		return "", report.SyntaxError
	}

	sizeTok := tokens[declValue]
	length := sem.SizeUnknown
	if isIntLiteral(sizeTok) {
		n, err := ctx.parseSize(sizeTok)
		if err != nil {
			return "", err
		}

		length = n
	} else if !ctx.Symbols.Has(sizeTok) {
		return "", report.InvalidArraySize
	}

	name := tokens[declName]
	if err := ctx.Symbols.Declare(name, sem.HeapType{Elem: elem, Len: length}); err != nil {
		return "", err
	}

	ctx.require(HeaderStdio, HeaderStdlib)

	ctype := elem.CType()
	return fmt.Sprintf(
		"%[1]s* %[2]s = (%[1]s*)malloc(%[3]s * sizeof(%[1]s)); if (%[2]s == NULL) { printf(\"Mommy Error: No memory for %[2]s\\n\"); return 1; }",
		ctype, name, sizeTok,
	), nil
}

// genFree compiles a heap release: `takeitback <name>`.  The pointer is nulled
// after it is freed.
func genFree(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < freeLen {
		return "", report.MissingArguments
	}

	if len(tokens) > freeLen {
		return "", report.SyntaxError
	}

	name := tokens[freeName]
	dt, err := ctx.Symbols.Lookup(name)
	if err != nil {
		return "", err
	}

	switch dt.(type) {
	case sem.HeapType, sem.PointerType:
	default:
		return "", report.TypeMismatch
	}

	ctx.require(HeaderStdlib)
	return fmt.Sprintf("free(%[1]s); %[1]s = NULL;", name), nil
}
