package casebook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fence languages recognized inside a case
const (
	FenceSource       = "mommy"
	FenceC            = "c"
	FenceCompileError = "compile-error"
)

// Case is a single transpiler test case extracted from Markdown.
type Case struct {
	Name   string // The test name from the heading (after "Test: ")
	Line   int    // The line of the heading in the document
	Source string // The contents of the `mommy` fence

	// Exactly one of these is set: the expected C output or the expected short
	// compile error (eg. `line 3: DivideByZero`).
	WantC     string
	WantError string
}

// ExpectsError returns whether the case expects compilation to fail.
func (c *Case) ExpectsError() bool {
	return c.WantError != ""
}

// ExtractCases parses a Markdown document and extracts all test cases.  A case
// starts at any heading whose text begins with `Test: `.
func ExtractCases(markdown string) ([]Case, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []Case
	var current *Case

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}

			if current != nil {
				if err := validateCase(current); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *current)
			}

			current = &Case{
				Name: strings.TrimPrefix(heading, "Test: "),
				Line: lineNumber(n, source),
			}
		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			content := strings.TrimRight(blockContent(n, source), "\n")
			line := lineNumber(n, source)

			if current == nil {
				// plain fences are allowed as prose
				if lang != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of a test case", line, lang)
				}

				return ast.WalkContinue, nil
			}

			switch lang {
			case FenceSource:
				if current.Source != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple source fences in test '%s'", line, current.Name)
				}
				current.Source = content
			case FenceC:
				if current.WantC != "" || current.WantError != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple expectations in test '%s'", line, current.Name)
				}
				current.WantC = content + "\n"
			case FenceCompileError:
				if current.WantC != "" || current.WantError != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple expectations in test '%s'", line, current.Name)
				}
				current.WantError = content
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, lang, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})

	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validateCase(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}

	return cases, nil
}

// validateCase ensures a case has a source and an expectation
func validateCase(c *Case) error {
	if c.Source == "" {
		return fmt.Errorf("test '%s' has no %s fence", c.Name, FenceSource)
	}

	if c.WantC == "" && c.WantError == "" {
		return fmt.Errorf("test '%s' has no expectation fence", c.Name)
	}

	return nil
}

// nodeText extracts the plain text content of a markdown node
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer

	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

// blockContent extracts the content of a fenced code block
func blockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	for i := 0; i < block.Lines().Len(); i++ {
		line := block.Lines().At(i)
		buf.Write(line.Value(source))
	}

	return buf.String()
}

// lineNumber calculates the 1-based line number of a node
func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}

	start := node.Lines().At(0).Start
	return bytes.Count(source[:min(start, len(source))], []byte{'\n'}) + 1
}
