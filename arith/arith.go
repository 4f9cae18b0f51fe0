// Package arith applies the four binary operators to numeric cell text.
package arith

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shibukawa/rpnsheet"
)

// Apply parses both operands as float64, applies op and formats the result.
// Division by zero is not trapped: it yields ±Inf or NaN, which Format renders.
func Apply(left, right, op string) (string, error) {
	a, err := parseOperand(left)
	if err != nil {
		return "", err
	}

	b, err := parseOperand(right)
	if err != nil {
		return "", err
	}

	var result float64

	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		result = a / b
	default:
		return "", fmt.Errorf("%w: %q", rpnsheet.ErrUnknownOperator, op)
	}

	return Format(result), nil
}

// Format renders v without a decimal point when it is integral and with its
// shortest exact decimal digits otherwise. Non-finite values render as
// "Infinity", "-Infinity" and "NaN".
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	return decimal.NewFromFloat(v).String()
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", rpnsheet.ErrInvalidNumber, s)
	}

	return v, nil
}
