package main

import "errors"

// Sentinel errors for command operations
var (
	ErrDisallowedDirectives = errors.New("disallowed directives found")
	ErrIncompleteGraph      = errors.New("unpaired name or change directives")
	ErrScanFailed           = errors.New("some files could not be scanned")
	ErrInvalidFilter        = errors.New("invalid filter expression")
)
