package scanner

import (
	"slices"
	"strings"

	"github.com/shibukawa/cttt"
	tok "github.com/shibukawa/cttt/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
	"golang.org/x/text/cases"
)

// Token labels attached by the grammar
const (
	labelNamespace = "namespace"
	labelKind      = "kind"
	labelArgument  = "argument"
)

var namespaceName = strings.TrimPrefix(cttt.Namespace, "@")

var (
	at         = primitiveType("at", tok.AT)
	dot        = primitiveType("dot", tok.DOT)
	word       = primitiveType("word", tok.WORD)
	parenOpen  = primitiveType("parenOpen", tok.OPENED_PARENS)
	parenClose = primitiveType("parenClose", tok.CLOSED_PARENS)

	// argumentPart is anything up to the closing parenthesis. A nested
	// opening parenthesis makes the whole directive fail to match.
	argumentPart = exceptType("argumentPart", tok.OPENED_PARENS, tok.CLOSED_PARENS, tok.EOF)

	namespace = label(labelNamespace, at, namespaceWord)

	// @cttt.<kind>(<argument>)
	directive = pc.Seq(
		namespace,
		dot,
		label(labelKind, word),
		parenOpen,
		label(labelArgument, pc.ZeroOrMore("argument", argumentPart)),
		parenClose,
	)
)

// namespaceWord matches the namespace name using Unicode case folding, so
// @CTTT and @cttt are the same namespace.
func namespaceWord(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
	if len(tokens) == 0 || tokens[0].Val.Type != tok.WORD {
		return 0, nil, pc.ErrNotMatch
	}

	// Casers keep state, so one is created per match to stay goroutine safe.
	folder := cases.Fold()
	if folder.String(tokens[0].Val.Value) != folder.String(namespaceName) {
		return 0, nil, pc.ErrNotMatch
	}

	return 1, tokens[:1], nil
}

func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func exceptType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && !slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// label tags every token matched by the sequence with typeStr.
func label(typeStr string, p ...pc.Parser[tok.Token]) pc.Parser[tok.Token] {
	return pc.Trans(pc.Seq(p...), func(pctx *pc.ParseContext[tok.Token], src []pc.Token[tok.Token]) (converted []pc.Token[tok.Token], err error) {
		for i := range src {
			src[i].Type = typeStr
		}

		return src, nil
	})
}

func toParserToken(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], 0, len(tokens))

	for _, token := range tokens {
		if token.Type == tok.EOF {
			break
		}

		results = append(results, pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		})
	}

	return results
}

// match is the result of running the directive grammar on one comment body.
type match struct {
	kind     string
	argument string
	position tok.Position
}

// matchDirective runs the directive grammar at the start of tokens.
func matchDirective(tokens []tok.Token) (match, bool) {
	pctx := pc.NewParseContext[tok.Token]()

	_, matched, err := directive(pctx, toParserToken(tokens))
	if err != nil || len(matched) == 0 {
		return match{}, false
	}

	var (
		result   match
		argument strings.Builder
	)

	result.position = matched[0].Val.Position

	for _, token := range matched {
		switch token.Type {
		case labelKind:
			result.kind = token.Val.Value
		case labelArgument:
			argument.WriteString(token.Raw)
		}
	}

	result.argument = strings.TrimSpace(argument.String())
	if result.kind == "" || result.argument == "" {
		return match{}, false
	}

	return result, true
}
