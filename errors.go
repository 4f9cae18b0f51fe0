package rpnsheet

import "errors"

// Sentinel is the text rendered in place of any cell that fails to resolve.
const Sentinel = "#ERR"

// Common errors used throughout the rpnsheet packages.
// Every evaluation error renders to Sentinel; the distinct values exist so
// callers and tests can tell failure causes apart.
var (
	// Evaluation errors

	// ErrMalformedToken is returned when a token is not a number, a cell reference or an operator.
	ErrMalformedToken = errors.New("malformed token")
	// ErrMissingOperands indicates an operator without two preceding operands.
	ErrMissingOperands = errors.New("operator requires two operands")
	// ErrLeftoverOperands indicates the expression did not reduce to a single value.
	ErrLeftoverOperands = errors.New("expression did not reduce to a single value")
	// ErrUnknownOperator indicates an operator outside + - * /.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrInvalidNumber indicates an operand that could not be parsed as a number.
	ErrInvalidNumber = errors.New("invalid number")

	// Reference errors

	// ErrInvalidReference is returned for text that is not a well-formed cell reference.
	ErrInvalidReference = errors.New("invalid cell reference")
	// ErrOutOfRange indicates a reference outside the grid.
	ErrOutOfRange = errors.New("cell reference out of range")
	// ErrErrorValue indicates a reference to a cell that already holds the error sentinel.
	ErrErrorValue = errors.New("referenced cell holds an error")
	// ErrBudgetExceeded indicates too many dereferences while resolving one cell.
	ErrBudgetExceeded = errors.New("dereference budget exceeded")
	// ErrDepthExceeded indicates the reference chain is nested too deeply.
	ErrDepthExceeded = errors.New("reference depth exceeded")

	// Configuration errors

	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
