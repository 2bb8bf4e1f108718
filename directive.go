package cttt

import (
	"slices"
	"strings"
	"unicode"
)

// Namespace is the marker that introduces every directive inside a comment.
const Namespace = "@cttt"

// Well-known directive kinds
const (
	// KindName marks a location with a symbolic name.
	KindName = "name"
	// KindChange declares that the most recently named location changes into another one.
	KindChange = "change"
)

// Directive is one recognized annotation occurrence
type Directive struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Argument string   `json:"argument" yaml:"argument"`
	Args     []string `json:"args" yaml:"args"`
	Line     int      `json:"line" yaml:"line"`     // 1-based physical line
	Column   int      `json:"column" yaml:"column"` // 1-based rune column of the namespace
	Comment  string   `json:"comment" yaml:"comment"`
}

// NewDirective builds a Directive, deriving Args from the argument text.
// The argument must be non-empty after trimming and free of parentheses for
// String to produce text the scanner recognizes again; see Valid.
func NewDirective(kind, argument string, line, column int, comment string) Directive {
	argument = strings.TrimSpace(argument)

	return Directive{
		Kind:     kind,
		Argument: argument,
		Args:     SplitArgs(argument),
		Line:     line,
		Column:   column,
		Comment:  comment,
	}
}

// String returns the directive in its textual wire form.
func (d Directive) String() string {
	return "// " + Namespace + "." + d.Kind + "(" + d.Argument + ")"
}

// Valid reports whether the directive can be written with String and read
// back: the kind matches the kind grammar and the argument is non-empty and
// holds no parenthesis or line break.
func (d Directive) Valid() bool {
	return ValidKind(d.Kind) &&
		strings.TrimSpace(d.Argument) != "" &&
		!strings.ContainsAny(d.Argument, "()\r\n")
}

// Equivalent reports whether two directives carry the same kind and argument,
// regardless of where they were found.
func (d Directive) Equivalent(other Directive) bool {
	return d.Kind == other.Kind && d.Argument == other.Argument
}

// SplitArgs splits argument text on commas, trimming each item and dropping empty ones.
func SplitArgs(argument string) []string {
	parts := strings.Split(argument, ",")
	args := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			args = append(args, part)
		}
	}

	return args
}

// ValidKind reports whether kind matches the kind grammar: one or more
// letters, digits, underscores or hyphens.
func ValidKind(kind string) bool {
	if kind == "" {
		return false
	}

	for _, r := range kind {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}

	return true
}

// KindSet is an immutable set of directive kinds used by strict parsing.
type KindSet struct {
	kinds map[string]struct{}
}

// NewKindSet creates a KindSet holding the given kinds. Membership is case-sensitive.
func NewKindSet(kinds ...string) KindSet {
	m := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		m[kind] = struct{}{}
	}

	return KindSet{kinds: m}
}

// Contains reports whether kind is in the set.
func (s KindSet) Contains(kind string) bool {
	_, ok := s.kinds[kind]
	return ok
}

// Len returns the number of kinds in the set.
func (s KindSet) Len() int {
	return len(s.kinds)
}

// Kinds returns the kinds in sorted order.
func (s KindSet) Kinds() []string {
	result := make([]string, 0, len(s.kinds))
	for kind := range s.kinds {
		result = append(result, kind)
	}

	slices.Sort(result)

	return result
}
