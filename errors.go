package cttt

import (
	"errors"
	"fmt"
)

// Common errors used throughout the cttt package
var (
	// ErrDisallowedKind is returned by strict parsing when a directive kind is not in the allowed set.
	ErrDisallowedKind = errors.New("disallowed directive kind")

	// Configuration errors
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInvalidKind indicates a configured kind does not match the kind grammar.
	ErrInvalidKind = errors.New("invalid directive kind")
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown output format")
)

// DisallowedKindError describes one directive rejected by strict parsing.
type DisallowedKindError struct {
	Kind    string `json:"kind" yaml:"kind"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Comment string `json:"comment" yaml:"comment"`
}

func (e *DisallowedKindError) Error() string {
	return fmt.Sprintf("%s %q at line %d, column %d", ErrDisallowedKind, e.Kind, e.Line, e.Column)
}

// Unwrap returns ErrDisallowedKind so callers can use errors.Is.
func (e *DisallowedKindError) Unwrap() error {
	return ErrDisallowedKind
}

// DisallowedKinds extracts every DisallowedKindError carried by err, in input order.
// err may be a single *DisallowedKindError, a join of several, or a wrapper around either.
func DisallowedKinds(err error) []*DisallowedKindError {
	switch e := err.(type) {
	case nil:
		return nil
	case *DisallowedKindError:
		return []*DisallowedKindError{e}
	case interface{ Unwrap() []error }:
		var result []*DisallowedKindError
		for _, inner := range e.Unwrap() {
			result = append(result, DisallowedKinds(inner)...)
		}

		return result
	default:
		return DisallowedKinds(errors.Unwrap(err))
	}
}
