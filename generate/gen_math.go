package generate

import (
	"fmt"

	"mommy/report"
	"mommy/sem"
)

// mathOperators maps each arithmetic keyword to its C operator
var mathOperators = map[string]string{
	"add":      "+",
	"subtract": "-",
	"multiply": "*",
	"divide":   "/",
	"mod":      "%",
}

// genMath compiles a single binary operation: `<op> <target> with <source>`
// becomes `target = target <op> source;`.  There is no chaining: every
// statement performs exactly one operation.
func genMath(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < mathLen {
		return "", report.MissingArguments
	}

	op, ok := mathOperators[tokens[0]]
	if !ok || len(tokens) > mathLen || tokens[mathWith] != kwWith {
		return "", report.SyntaxError
	}

	target, source := tokens[mathTarget], tokens[mathSource]

	targetType, err := ctx.Symbols.Lookup(target)
	if err != nil {
		return "", err
	}

	// the source is either a variable or a number
	var sourceType sem.DataType
	if ctx.Symbols.Has(source) {
		sourceType, _ = ctx.Symbols.Lookup(source)
	} else if !isNumberLiteral(source) {
		return "", report.UndeclaredVariable
	}

	if sem.IsString(targetType) || (sourceType != nil && sem.IsString(sourceType)) {
		return "", report.MathOnString
	}

	if !isNumeric(targetType) || (sourceType != nil && !isNumeric(sourceType)) {
		return "", report.TypeMismatch
	}

	// only a literal zero can be rejected here: the value of a variable is not
	// known until run time
	if (op == "/" || op == "%") && isZeroLiteral(source) {
		return "", report.DivideByZero
	}

	if op == "%" && (isFloat(targetType) || isFloat(sourceType) || (sourceType == nil && !isIntLiteral(source))) {
		return "", report.TypeMismatch
	}

	return fmt.Sprintf("%s = %s %s %s;", target, target, op, source), nil
}

// isNumeric returns whether a type is a numeric scalar.
func isNumeric(dt sem.DataType) bool {
	pt, ok := dt.(sem.PrimType)
	return ok && pt != sem.PrimString
}

// isFloat returns whether a type is the float scalar.
func isFloat(dt sem.DataType) bool {
	pt, ok := dt.(sem.PrimType)
	return ok && pt == sem.PrimFloat
}
