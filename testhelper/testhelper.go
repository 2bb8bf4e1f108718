package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var whiteSpaces = regexp.MustCompile(`^([ \t]+)`)

// TrimIndent removes the indentation of a raw string fixture. The first line
// (the one after the opening backquote) is dropped and the indentation of the
// second line is removed from every following line.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = whiteSpaces.FindString(lines[1])
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines[1:], "\n")
}

// Lines joins lines with '\n'.
func Lines(t *testing.T, lines ...string) string {
	t.Helper()

	return strings.Join(lines, "\n")
}
