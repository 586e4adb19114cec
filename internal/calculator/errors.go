package calculator

import "errors"

var (
	// ErrInvalidInput marks inputs outside the valid domain: empty day data,
	// a fee tier outside (0,1), negative decimals, unparsable numeric text,
	// or non-positive prices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateRange marks zero-width ranges and other zero denominators
	// that would otherwise produce NaN or infinity.
	ErrDegenerateRange = errors.New("degenerate range")
)
