package syntax

import "strings"

// Tokenize splits one trimmed source line into whitespace-separated tokens.
// Double-quoted regions are kept together as a single token and the quotes
// themselves remain part of the token so that later stages can recognize
// string literals by their leading quote.  There is no escaping: an odd number
// of quotes simply leaves the rest of the line inside the string.
func Tokenize(line string) []string {
	var tokens []string
	var sb strings.Builder
	inString := false

	for _, c := range line {
		switch c {
		case '"':
			inString = !inString
			sb.WriteRune(c)
		case ' ', '\t', '\r', '\n':
			if inString {
				sb.WriteRune(c)
			} else if sb.Len() > 0 {
				tokens = append(tokens, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteRune(c)
		}
	}

	if sb.Len() > 0 {
		tokens = append(tokens, sb.String())
	}

	return tokens
}

// IsStringLiteral returns whether a token is a quoted string literal.
func IsStringLiteral(tok string) bool {
	return strings.HasPrefix(tok, `"`)
}
