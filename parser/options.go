package parser

import "io"

// Options selects between the lenient and the strict entry points.
type Options struct {
	// Strict rejects directives whose kind is not in AllowedKinds.
	Strict       bool
	AllowedKinds KindSet
}

// DefaultOptions provides the default parser options (lenient parsing).
var DefaultOptions = Options{}

// ParseWithOptions dispatches to Parse or ParseStrict.
func ParseWithOptions(text string, options Options) ([]Directive, error) {
	if options.Strict {
		return ParseStrict(text, options.AllowedKinds)
	}

	return Parse(text), nil
}

// ParseReaderWithOptions dispatches to ParseReader or ParseStrictReader.
func ParseReaderWithOptions(r io.Reader, options Options) ([]Directive, error) {
	if options.Strict {
		return ParseStrictReader(r, options.AllowedKinds)
	}

	return ParseReader(r)
}
