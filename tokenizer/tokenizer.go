package tokenizer

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses Go 1.23 iterator pattern
type TokenIterator iter.Seq[Token]

// CommentTokenizer tokenizes the text of a comment, typically the part of a
// line that follows the comment opener.
type CommentTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	// Line is stamped on the first token. Defaults to 1.
	Line int
	// Column is the column of the first rune of input. Defaults to 1.
	Column int
	// SkipWhitespace drops WHITESPACE tokens from the stream.
	SkipWhitespace bool
}

// NewCommentTokenizer creates a new CommentTokenizer
func NewCommentTokenizer(input string, options ...TokenizerOptions) *CommentTokenizer {
	opts := TokenizerOptions{
		Line:   1,
		Column: 1,
	}
	if len(options) > 0 {
		opts = options[0]
		if opts.Line <= 0 {
			opts.Line = 1
		}

		if opts.Column <= 0 {
			opts.Column = 1
		}
	}

	return &CommentTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens. The last token is always EOF.
func (t *CommentTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   t.options.Line,
			column: t.options.Column - 1,
		}

		tokenizer.readChar()

		for {
			token := tokenizer.nextToken()

			if token.Type == EOF {
				yield(token)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, including the trailing EOF
func (t *CommentTokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 16)
	for token := range t.Tokens() {
		tokens = append(tokens, token)
	}

	return tokens
}

// Tokenize is a shorthand for NewCommentTokenizer(input, options...).AllTokens().
func Tokenize(input string, options ...TokenizerOptions) []Token {
	return NewCommentTokenizer(input, options...).AllTokens()
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int // byte offset of the rune after current
	offset   int // byte offset of current
	line     int
	column   int
	current  rune
	eof      bool
}

// nextToken gets the next token
func (t *tokenizer) nextToken() Token {
	if t.eof {
		return Token{Type: EOF, Position: t.pos()}
	}

	switch t.current {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return t.readWhitespace()
	case '@':
		return t.readSingle(AT)
	case '.':
		return t.readSingle(DOT)
	case '(':
		return t.readSingle(OPENED_PARENS)
	case ')':
		return t.readSingle(CLOSED_PARENS)
	case ',':
		return t.readSingle(COMMA)
	default:
		if isWordRune(t.current) {
			return t.readWord()
		}

		return t.readSingle(OTHER)
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.current == '\n' {
		t.line++
		t.column = 0
	}

	if t.position >= len(t.input) {
		t.current = 0
		t.offset = len(t.input)
		t.eof = true
		t.column++

		return
	}

	r, size := utf8.DecodeRuneInString(t.input[t.position:])
	t.current = r
	t.offset = t.position
	t.position += size
	t.column++
}

// pos returns the position of the current character
func (t *tokenizer) pos() Position {
	return Position{
		Line:   t.line,
		Column: t.column,
		Offset: t.offset,
	}
}

// readSingle reads a one-character token
func (t *tokenizer) readSingle(tokenType TokenType) Token {
	start := t.pos()
	t.readChar()

	return Token{
		Type:     tokenType,
		Value:    t.input[start.Offset:t.offset],
		Position: start,
	}
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	start := t.pos()

	for !t.eof && unicode.IsSpace(t.current) {
		t.readChar()
	}

	return Token{
		Type:     WHITESPACE,
		Value:    t.input[start.Offset:t.offset],
		Position: start,
	}
}

// readWord reads words (kinds, namespace names, argument items)
func (t *tokenizer) readWord() Token {
	start := t.pos()

	for !t.eof && isWordRune(t.current) {
		t.readChar()
	}

	return Token{
		Type:     WORD,
		Value:    t.input[start.Offset:t.offset],
		Position: start,
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}
