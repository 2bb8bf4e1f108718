// Package scanner extracts cttt directives from source text.
//
// # Directive Format
//
// A directive is a comment line of the form:
//
//	// @cttt.<kind>(<argument>)
//
// Examples:
//
//	// @cttt.name(foo)
//	# @cttt.change(bar)
//	<!-- @cttt.change(./docs/README.md, ./src/lib.rs) -->
//	 * @cttt.name(SPECIAL_BLOCK)
//
// # Recognition Rules
//
// The first non-blank text of the line must be one of [CommentOpeners].
// Directive text anywhere else on a line, such as inside a string literal or
// in a comment trailing code, is ignored.
//
// The namespace is compared with Unicode case folding (@CTTT works). The kind
// is one or more letters, digits, '_' or '-' and is kept as written. No
// whitespace is allowed between the namespace, the dot, the kind and the
// opening parenthesis. Whitespace inside the parentheses is trimmed.
//
// Only the first directive of a line is taken and anything after its closing
// parenthesis is ignored.
//
// # Malformed Input
//
// Near misses are skipped without error: a missing kind, a missing or
// unclosed parenthesis, an empty argument, or a nested parenthesis.
package scanner
