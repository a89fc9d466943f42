package build

import "strings"

// indent is the indentation of every statement inside `main`
const indent = "    "

// Unit is one generated C translation unit.
type Unit struct {
	// Includes are the include lines in the order they were first required.
	Includes []string

	// Body is the sequence of generated statements that make up `main`.
	Body []string
}

// Render assembles the complete C source text.
func (u *Unit) Render() string {
	sb := strings.Builder{}

	for _, inc := range u.Includes {
		sb.WriteString(inc)
		sb.WriteRune('\n')
	}

	if len(u.Includes) > 0 {
		sb.WriteRune('\n')
	}

	sb.WriteString("int main() {\n")
	for _, line := range u.Body {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteRune('\n')
	}

	sb.WriteString(indent + "return 0;\n")
	sb.WriteString("}\n")

	return sb.String()
}
