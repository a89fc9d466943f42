package generate

import (
	"strconv"
	"strings"
	"unicode"

	"mommy/report"
	"mommy/sem"
)

// Connector keywords that must occupy fixed token positions
const (
	kwIn       = "in"
	kwAs       = "as"
	kwWith     = "with"
	kwAddress  = "address"
	kwInside   = "inside"
	kwUpto     = "upto"
	kwIf       = "if"
	kwNull     = "null"
	kwWildcard = "?"
)

// -----------------------------------------------------------------------------
// Token positions for every statement shape.  Each shape's length is checked
// before any of its positions are indexed.

// <decl|group|words|ibegyou> <value> in <name> as <type>
const (
	declLen   = 6
	declValue = 1
	declIn    = 2
	declName  = 3
	declAs    = 4
	declType  = 5
)

// takeitback <name>
const (
	freeLen  = 2
	freeName = 1
)

// replace <name> with <value>
const (
	assignLen   = 4
	assignName  = 1
	assignWith  = 2
	assignValue = 3
)

// replace <name> in <index> with <value>
const (
	writeLen   = 6
	writeName  = 1
	writeIn    = 2
	writeIndex = 3
	writeWith  = 4
	writeValue = 5
)

// replace <dest> with <array> in <index>
const (
	readLen   = 6
	readDest  = 1
	readWith  = 2
	readArray = 3
	readIn    = 4
	readIndex = 5
)

// replace <name> with <value> <address|inside>
const (
	ptrLen   = 5
	ptrName  = 1
	ptrWith  = 2
	ptrValue = 3
	ptrMode  = 4
)

// <op> <target> with <source>
const (
	mathLen    = 4
	mathTarget = 1
	mathWith   = 2
	mathSource = 3
)

// say <value> | say <array> in <index>
const (
	sayMinLen   = 2
	sayValue    = 1
	sayIndexLen = 4
	sayIn       = 2
	sayIndex    = 3
)

// listen <name> [upto <size>]
const (
	listenMinLen  = 2
	listenName    = 1
	listenUptoLen = 4
	listenUpto    = 2
	listenSize    = 3
)

// punishme <count> | punishmeif <condition...>
const (
	loopLen       = 2
	loopCount     = 1
	loopCondStart = 1
)

// ask if <condition...>
const (
	askMinLen    = 3
	askIf        = 1
	askCondStart = 2
)

// makeme <package>
const (
	includeLen     = 2
	includePackage = 1
)

// -----------------------------------------------------------------------------

// isNumberLiteral returns whether a token is a plain decimal number: an
// optional sign, digits, an optional fraction, and an optional exponent.
func isNumberLiteral(tok string) bool {
	if _, err := strconv.ParseFloat(tok, 64); err != nil {
		return false
	}

	// ParseFloat also accepts `inf`, `nan`, hex floats, and underscores none of
	// which are valid C literals
	return strings.IndexFunc(tok, func(r rune) bool {
		return r == '_' || (unicode.IsLetter(r) && r != 'e' && r != 'E')
	}) == -1
}

// isIntLiteral returns whether a token is a decimal integer literal.
func isIntLiteral(tok string) bool {
	_, ok := sem.ParseIndexLiteral(tok)
	return ok
}

// isZeroLiteral returns whether a token is a numeric literal equal to zero.
func isZeroLiteral(tok string) bool {
	if !isNumberLiteral(tok) {
		return false
	}

	f, _ := strconv.ParseFloat(tok, 64)
	return f == 0
}

// parseSize parses an array or buffer size that must be a positive integer no
// larger than the configured maximum.
func (ctx *Context) parseSize(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || n > ctx.Options.MaxArraySize {
		return 0, report.InvalidArraySize
	}

	return n, nil
}

// checkIndex validates an index token against the type being indexed.  Valid
// indices are integer literals (statically bounds-checked when possible) and
// declared identifiers.
func (ctx *Context) checkIndex(dt sem.DataType, index string) error {
	if isIntLiteral(index) {
		return sem.BoundsCheck(dt, index)
	}

	if ctx.Symbols.Has(index) {
		return nil
	}

	return report.SyntaxError
}

// cNull rewrites the `null` keyword into the C null literal.
func cNull(value string) string {
	if value == kwNull {
		return "NULL"
	}

	return value
}

// joinFrom joins all tokens starting at a position with single spaces.
func joinFrom(tokens []string, start int) string {
	return strings.Join(tokens[start:], " ")
}

// printfEscape escapes text for use inside a printf format string.
func printfEscape(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}

// elemFormat returns the printf conversion for a primitive type.
func elemFormat(pt sem.PrimType) string {
	switch pt {
	case sem.PrimFloat:
		return "%f"
	case sem.PrimString:
		return "%s"
	case sem.PrimAscii:
		return "%c"
	default:
		return "%d"
	}
}
