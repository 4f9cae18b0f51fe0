// Package postfix evaluates reverse-Polish expressions whose operands may be
// references to other cells.
package postfix

import (
	"fmt"
	"slices"

	"github.com/shibukawa/rpnsheet"
	"github.com/shibukawa/rpnsheet/arith"
	tok "github.com/shibukawa/rpnsheet/tokenizer"
)

// Resolver dereferences a cell reference to its resolved numeric text.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ref string) (string, error)

func (f ResolverFunc) Resolve(ref string) (string, error) {
	return f(ref)
}

// Evaluate reduces tokens in a single left-to-right pass over a working
// stack. References are resolved in place as they are met; each operator
// replaces itself and the two values immediately to its left with the
// result. The first failure aborts the evaluation.
func Evaluate(tokens []tok.Token, resolver Resolver) (string, error) {
	stack := slices.Clone(tokens)

	for i := 0; i < len(stack); i++ {
		token := stack[i]

		switch token.Type {
		case tok.REFERENCE:
			value, err := resolver.Resolve(token.Value)
			if err != nil {
				return "", err
			}

			stack[i] = tok.Token{Type: tok.NUMBER, Value: value, Position: token.Position}
		case tok.OPERATOR:
			if i < 2 {
				return "", fmt.Errorf("%w: %q at %s", rpnsheet.ErrMissingOperands, token.Value, token.Position)
			}

			result, err := arith.Apply(stack[i-2].Value, stack[i-1].Value, token.Value)
			if err != nil {
				return "", err
			}

			i -= 2
			stack = slices.Replace(stack, i, i+3, tok.Token{Type: tok.NUMBER, Value: result, Position: stack[i].Position})
		case tok.NUMBER:
		default:
			return "", fmt.Errorf("%w: %q at %s", rpnsheet.ErrMalformedToken, token.Value, token.Position)
		}
	}

	if len(stack) != 1 {
		return "", fmt.Errorf("%w: %d values remain", rpnsheet.ErrLeftoverOperands, len(stack))
	}

	return stack[0].Value, nil
}
