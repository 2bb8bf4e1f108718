package parser

import (
	"errors"
	"io"

	"github.com/shibukawa/cttt"
	"github.com/shibukawa/cttt/scanner"
)

// Re-export common types for user convenience
type (
	Directive           = cttt.Directive
	KindSet             = cttt.KindSet
	DisallowedKindError = cttt.DisallowedKindError
)

// Parse returns every directive of text in input order. Any kind is accepted
// and the call never fails; text without directives yields an empty slice.
func Parse(text string) []Directive {
	return scanner.ScanAll(text)
}

// ParseStrict is Parse restricted to the kinds in allowed. When any directive
// has another kind, no directives are returned and the error joins one
// *DisallowedKindError per offending directive, in input order.
func ParseStrict(text string, allowed KindSet) ([]Directive, error) {
	directives := scanner.ScanAll(text)

	if err := Validate(directives, allowed); err != nil {
		return nil, err
	}

	return directives, nil
}

// ParseReader is the io.Reader form of Parse. It fails only on read errors.
func ParseReader(r io.Reader) ([]Directive, error) {
	directives := make([]Directive, 0)

	for d, err := range scanner.ScanReader(r) {
		if err != nil {
			return nil, err
		}

		directives = append(directives, d)
	}

	return directives, nil
}

// ParseStrictReader is the io.Reader form of ParseStrict.
func ParseStrictReader(r io.Reader, allowed KindSet) ([]Directive, error) {
	directives, err := ParseReader(r)
	if err != nil {
		return nil, err
	}

	if err := Validate(directives, allowed); err != nil {
		return nil, err
	}

	return directives, nil
}

// Validate checks that every directive kind is in allowed.
func Validate(directives []Directive, allowed KindSet) error {
	var violations []error

	for _, d := range directives {
		if !allowed.Contains(d.Kind) {
			violations = append(violations, &DisallowedKindError{
				Kind:    d.Kind,
				Line:    d.Line,
				Column:  d.Column,
				Comment: d.Comment,
			})
		}
	}

	return errors.Join(violations...)
}
