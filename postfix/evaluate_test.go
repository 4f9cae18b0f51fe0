package postfix

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/rpnsheet"
	tok "github.com/shibukawa/rpnsheet/tokenizer"
)

// mapResolver resolves references from a fixed table and records lookups.
type mapResolver struct {
	values map[string]string
	calls  []string
}

func (m *mapResolver) Resolve(ref string) (string, error) {
	m.calls = append(m.calls, ref)

	v, ok := m.values[ref]
	if !ok {
		return "", rpnsheet.ErrOutOfRange
	}

	return v, nil
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"addition", "3 4 +", "7"},
		{"subtraction", "10 4 -", "6"},
		{"multiplication", "5 2 *", "10"},
		{"non-integral division", "1 3 /", "0.3333333333333333"},
		{"chained", "5 1 2 + 4 * + 3 -", "14"},
		{"left to right", "2 3 4 * +", "14"},
		{"single number", "42", "42"},
		{"single negative decimal", "-1.5", "-1.5"},
		{"negative operand", "-3 2 *", "-6"},
		{"single reference", "a1", "2"},
		{"upper-case reference", "B1", "8"},
		{"references", "a1 b1 +", "10"},
		{"mixed", "a1 3 * b1 -", "-2"},
		{"divide by zero", "1 0 /", "Infinity"},
	}

	resolver := &mapResolver{values: map[string]string{"a1": "2", "b1": "8"}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tok.Tokenize(tt.input), resolver)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"too many operands", "1 2 3", rpnsheet.ErrLeftoverOperands},
		{"leading operator", "+ 1 2", rpnsheet.ErrMissingOperands},
		{"one operand", "1 +", rpnsheet.ErrMissingOperands},
		{"operator after reduction", "1 2 + *", rpnsheet.ErrMissingOperands},
		{"unknown word", "1 two +", rpnsheet.ErrMalformedToken},
		{"unknown operator", "1 2 %", rpnsheet.ErrMalformedToken},
		{"double space", "1  2 +", rpnsheet.ErrMalformedToken},
		{"empty", "", rpnsheet.ErrMalformedToken},
		{"sentinel text", "#err", rpnsheet.ErrMalformedToken},
		{"exponent literal", "1e3 1 +", rpnsheet.ErrMalformedToken},
		{"missing reference", "zz9 1 +", rpnsheet.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mapResolver{values: map[string]string{}}
			_, err := Evaluate(tok.Tokenize(tt.input), resolver)
			assert.IsError(t, err, tt.expected)
		})
	}
}

func TestEvaluate_ShortCircuitsOnReferenceError(t *testing.T) {
	resolver := &mapResolver{values: map[string]string{"a1": "1", "c1": "3"}}

	_, err := Evaluate(tok.Tokenize("a1 b1 + c1 +"), resolver)
	assert.IsError(t, err, rpnsheet.ErrOutOfRange)
	assert.Equal(t, []string{"a1", "b1"}, resolver.calls)
}

func TestEvaluate_ResolvesReferencesBeforeLaterSyntaxErrors(t *testing.T) {
	resolver := &mapResolver{values: map[string]string{"a1": "1"}}

	_, err := Evaluate(tok.Tokenize("a1 oops"), resolver)
	assert.IsError(t, err, rpnsheet.ErrMalformedToken)
	assert.Equal(t, []string{"a1"}, resolver.calls)
}

func TestResolverFunc(t *testing.T) {
	boom := errors.New("boom")
	resolver := ResolverFunc(func(ref string) (string, error) {
		if ref == "a1" {
			return "4", nil
		}
		return "", boom
	})

	got, err := Evaluate(tok.Tokenize("a1 a1 *"), resolver)
	assert.NoError(t, err)
	assert.Equal(t, "16", got)

	_, err = Evaluate(tok.Tokenize("a2"), resolver)
	assert.IsError(t, err, boom)
}
