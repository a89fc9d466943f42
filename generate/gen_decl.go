package generate

import (
	"fmt"

	"mommy/report"
	"mommy/sem"
	"mommy/syntax"
)

// genDeclare compiles a scalar declaration: `mayihave <value> in <name> as
// <type>`.
func genDeclare(ctx *Context, tokens []string) (string, error) {
	if err := checkDeclShape(tokens); err != nil {
		return "", err
	}

	dt, ok := sem.ParseScalarType(tokens[declType])
	if !ok {
		return "", report.SyntaxError
	}

	value := tokens[declValue]
	if err := ctx.checkValue(value); err != nil {
		return "", err
	}

	name := tokens[declName]
	if err := ctx.Symbols.Declare(name, dt); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s = %s;", dt.CType(), name, cNull(value)), nil
}

// genArray compiles a fixed-size array declaration: `group <size> in <name> as
// <type>`.
func genArray(ctx *Context, tokens []string) (string, error) {
	if err := checkDeclShape(tokens); err != nil {
		return "", err
	}

	elem, ok := sem.ParsePrimType(tokens[declType])
	if !ok {
		return "", report.SyntaxError
	}

	return ctx.declareArray(tokens, elem)
}

// genString compiles a text buffer declaration: `words <size> in <name> as
// ascii`.  Text is stored as an array of character codes.
func genString(ctx *Context, tokens []string) (string, error) {
	if err := checkDeclShape(tokens); err != nil {
		return "", err
	}

	elem, ok := sem.ParsePrimType(tokens[declType])
	if !ok {
		return "", report.SyntaxError
	}

	if elem != sem.PrimAscii {
		return "", report.TypeMismatch
	}

	return ctx.declareArray(tokens, elem)
}

// declareArray declares and emits a stack array from a validated declaration.
func (ctx *Context) declareArray(tokens []string, elem sem.PrimType) (string, error) {
	size, err := ctx.parseSize(tokens[declValue])
	if err != nil {
		return "", err
	}

	name := tokens[declName]
	at := sem.ArrayType{Elem: elem, Len: size}
	if err := ctx.Symbols.Declare(name, at); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s[%d] = {0};", at.CType(), name, size), nil
}

// checkDeclShape validates the token count and connector keywords shared by all
// declaration forms.
func checkDeclShape(tokens []string) error {
	if len(tokens) < declLen {
		return report.MissingArguments
	}

	if len(tokens) > declLen || tokens[declIn] != kwIn || tokens[declAs] != kwAs {
		return report.SyntaxError
	}

	return nil
}

// checkValue validates the right-hand side of a declaration or assignment: it
// must be a literal, `null`, or a declared variable.
func (ctx *Context) checkValue(value string) error {
	switch {
	case isNumberLiteral(value), syntax.IsStringLiteral(value), isCharLiteral(value), value == kwNull:
		return nil
	case ctx.Symbols.Has(value):
		return nil
	}

	return report.UndeclaredVariable
}

// isCharLiteral returns whether a token is a C character literal: eg. 'A'.
func isCharLiteral(tok string) bool {
	return len(tok) >= 3 && tok[0] == '\'' && tok[len(tok)-1] == '\''
}
