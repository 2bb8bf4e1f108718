package scanner

import (
	"slices"
	"strings"
	"unicode"
)

// commentOpeners lists the comment openers a directive line may start with,
// longest first so that "/**" wins over "/*" and "{-" over "{".
var commentOpeners = []string{
	"<!--",
	`"""`,
	"'''",
	"///",
	"/**",
	"//",
	"/*",
	"(*",
	"{-",
	"--",
	"#",
	"!",
	";",
	"{",
	"*", // continuation line inside a block comment
}

// CommentOpeners returns the recognized comment openers, longest first.
// The result is a copy.
func CommentOpeners() []string {
	return slices.Clone(commentOpeners)
}

// stripCommentOpener removes leading indentation, a comment opener and the
// whitespace following it. It returns the remaining text and its byte offset
// within line. Lines whose first non-blank text is not a comment opener are
// rejected.
func stripCommentOpener(line string) (body string, offset int, ok bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := len(line) - len(trimmed)

	for _, opener := range commentOpeners {
		if !strings.HasPrefix(trimmed, opener) {
			continue
		}

		rest := trimmed[len(opener):]
		body = strings.TrimLeftFunc(rest, unicode.IsSpace)

		return body, indent + len(opener) + len(rest) - len(body), true
	}

	return "", 0, false
}
