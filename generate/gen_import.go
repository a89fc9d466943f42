package generate

import (
	"mommy/report"
)

// C headers used by generated code
const (
	HeaderStdio  = "#include <stdio.h>"
	HeaderStdlib = "#include <stdlib.h>"
	HeaderString = "#include <string.h>"
	HeaderMath   = "#include <math.h>"
)

// packages maps every `makeme` package name to its include line
var packages = map[string]string{
	"listen_and_read": HeaderStdio,
	"ask_more":        HeaderStdlib,
	"tie_words":       HeaderString,
	"do_the_math":     HeaderMath,
}

// LookupPackage returns the include line for a package name.
func LookupPackage(name string) (string, error) {
	if inc, ok := packages[name]; ok {
		return inc, nil
	}

	return "", report.UnknownPackage
}

// IncludeSet is an insertion-ordered set of include lines.
type IncludeSet struct {
	lines []string
	seen  map[string]struct{}
}

// NewIncludeSet creates a new, empty include set.
func NewIncludeSet() *IncludeSet {
	return &IncludeSet{seen: make(map[string]struct{})}
}

// Add records an include line if it has not already been recorded.
func (is *IncludeSet) Add(line string) {
	if line == "" {
		return
	}

	if _, ok := is.seen[line]; ok {
		return
	}

	is.seen[line] = struct{}{}
	is.lines = append(is.lines, line)
}

// Lines returns a copy of the recorded include lines in insertion order.
func (is *IncludeSet) Lines() []string {
	return append([]string(nil), is.lines...)
}

// genInclude compiles `makeme <package>`.
func genInclude(ctx *Context, tokens []string) (string, error) {
	if len(tokens) < includeLen {
		return "", report.MissingArguments
	}

	if len(tokens) > includeLen {
		return "", report.SyntaxError
	}

	inc, err := LookupPackage(tokens[includePackage])
	if err != nil {
		return "", err
	}

	ctx.require(inc)
	return "", nil
}
