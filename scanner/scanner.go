package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shibukawa/cttt"
	tok "github.com/shibukawa/cttt/tokenizer"
)

// byteOrderMark is skipped at the very start of the input.
const byteOrderMark = "\uFEFF"

// Scan returns an iterator over the directives of text, in line order.
// Lines are separated by '\n'; a trailing '\r' is ignored, and so is a
// byte order mark at the start of text.
func Scan(text string) iter.Seq[cttt.Directive] {
	return func(yield func(cttt.Directive) bool) {
		number := 0

		for line := range strings.SplitSeq(strings.TrimPrefix(text, byteOrderMark), "\n") {
			number++

			if d, ok := ScanLine(line, number); ok {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// ScanAll collects every directive of text. The result is never nil.
func ScanAll(text string) []cttt.Directive {
	directives := make([]cttt.Directive, 0)
	for d := range Scan(text) {
		directives = append(directives, d)
	}

	return directives
}

// ScanReader is the streaming form of Scan. A read error is yielded once and
// ends the iteration.
func ScanReader(r io.Reader) iter.Seq2[cttt.Directive, error] {
	return func(yield func(cttt.Directive, error) bool) {
		reader := bufio.NewReader(r)
		number := 0

		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				number++
				if number == 1 {
					line = strings.TrimPrefix(line, byteOrderMark)
				}

				if d, ok := ScanLine(strings.TrimSuffix(line, "\n"), number); ok {
					if !yield(d, nil) {
						return
					}
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(cttt.Directive{}, fmt.Errorf("failed to read line %d: %w", number+1, err))
				}

				return
			}
		}
	}
}

// ScanLine recognizes a directive on a single physical line. number is the
// 1-based line number recorded in the directive.
func ScanLine(line string, number int) (cttt.Directive, bool) {
	line = strings.TrimSuffix(line, "\r")

	body, offset, ok := stripCommentOpener(line)
	if !ok || body == "" {
		return cttt.Directive{}, false
	}

	tokens := tok.Tokenize(body, tok.TokenizerOptions{
		Line:   number,
		Column: utf8.RuneCountInString(line[:offset]) + 1,
	})

	m, ok := matchDirective(tokens)
	if !ok {
		return cttt.Directive{}, false
	}

	comment := strings.TrimRightFunc(line, unicode.IsSpace)

	return cttt.NewDirective(m.kind, m.argument, number, m.position.Column, comment), true
}
