package postfix

import (
	"fmt"
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/rpnsheet"
	tok "github.com/shibukawa/rpnsheet/tokenizer"
)

var (
	// number parses a numeric literal.
	number = primitiveType("number", tok.NUMBER)
	// reference parses a cell reference.
	reference = primitiveType("reference", tok.REFERENCE)
	// operator parses one of + - * /.
	operator = primitiveType("operator", tok.OPERATOR)
	// term parses any token that may appear in a postfix expression.
	term = pc.Or(number, reference, operator)
)

func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			matched := tokens[0]
			matched.Type = typeName

			return 1, []pc.Token[tok.Token]{matched}, nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func toParserTokens(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], len(tokens))

	for i, token := range tokens {
		results[i] = pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  1,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
	}

	return results
}

// Check validates the shape of a postfix expression without resolving any
// reference: every token must be a number, a reference or an operator, every
// operator needs two operands on the stack, and exactly one value must
// remain. It reports the first problem found, with its position.
func Check(tokens []tok.Token) error {
	pctx := pc.NewParseContext[tok.Token]()
	pTokens := toParserTokens(tokens)

	depth := 0

	for len(pTokens) > 0 {
		consumed, matched, err := term(pctx, pTokens)
		if err != nil || len(matched) == 0 {
			bad := pTokens[0].Val
			return fmt.Errorf("%w: %q at %s", rpnsheet.ErrMalformedToken, bad.Value, bad.Position)
		}

		if matched[0].Type == "operator" {
			if depth < 2 {
				op := matched[0].Val
				return fmt.Errorf("%w: %q at %s", rpnsheet.ErrMissingOperands, op.Value, op.Position)
			}
			depth--
		} else {
			depth++
		}

		pTokens = pTokens[consumed:]
	}

	if depth != 1 {
		return fmt.Errorf("%w: %d values remain", rpnsheet.ErrLeftoverOperands, depth)
	}

	return nil
}
