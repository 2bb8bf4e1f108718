package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	EOF           TokenType = iota
	WHITESPACE              // spaces and tabs
	WORD                    // letters, digits, '_' and '-'
	AT                      // @
	DOT                     // .
	OPENED_PARENS           // (
	CLOSED_PARENS           // )
	COMMA                   // ,
	OTHER                   // any other single character
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case AT:
		return "AT"
	case DOT:
		return "DOT"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case COMMA:
		return "COMMA"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source text
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // byte offset into the tokenized input
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
