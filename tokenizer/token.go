package tokenizer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	INVALID   TokenType = iota // anything that fails every classification
	NUMBER                     // numeric literals: -?\d+(\.\d+)?
	REFERENCE                  // cell references: [a-z]+[0-9]+
	OPERATOR                   // + - * /
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case INVALID:
		return "INVALID"
	case NUMBER:
		return "NUMBER"
	case REFERENCE:
		return "REFERENCE"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position inside one cell's text
type Position struct {
	Column int // 1-based
	Offset int // byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("column %d", p.Column)
}

// Token represents a single space-separated unit of a postfix expression
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
