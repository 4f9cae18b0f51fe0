// Package tokenizer classifies and splits the text of a postfix cell.
package tokenizer

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	numericPattern   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	referencePattern = regexp.MustCompile(`^[a-z]+[0-9]+$`)
)

// IsNumeric reports whether s is an optionally negative decimal literal.
// Exponents, a leading '+' and embedded whitespace are rejected.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsCellReference reports whether s is lowercase letters followed by digits.
func IsCellReference(s string) bool {
	return referencePattern.MatchString(s)
}

// IsOperator reports whether s is exactly one of + - * /.
func IsOperator(s string) bool {
	switch s {
	case "+", "-", "*", "/":
		return true
	}

	return false
}

// Classify returns the token type of a single token.
func Classify(s string) TokenType {
	switch {
	case IsCellReference(s):
		return REFERENCE
	case IsOperator(s):
		return OPERATOR
	case IsNumeric(s):
		return NUMBER
	default:
		return INVALID
	}
}

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[int, Token]

// Tokenizer splits a cell's text into classified tokens
type Tokenizer struct {
	input string
}

// NewTokenizer creates a Tokenizer. The input is lower-cased so that
// references are case-insensitive.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: cases.Lower(language.Und).String(input)}
}

// Tokens returns an iterator of (index, token) pairs. Tokens are separated
// by exactly one ASCII space; consecutive spaces produce empty INVALID tokens.
// Other whitespace around a token (tabs) is trimmed.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(int, Token) bool) {
		offset := 0
		column := 1

		for i, part := range strings.Split(t.input, " ") {
			value := strings.TrimSpace(part)
			token := Token{
				Type:     Classify(value),
				Value:    value,
				Position: Position{Column: column, Offset: offset},
			}
			if !yield(i, token) {
				return
			}

			offset += len(part) + 1
			column += utf8.RuneCountInString(part) + 1
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *Tokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 8)
	for _, token := range t.Tokens() {
		tokens = append(tokens, token)
	}

	return tokens
}

// Tokenize is a shorthand for NewTokenizer(input).AllTokens().
func Tokenize(input string) []Token {
	return NewTokenizer(input).AllTokens()
}
