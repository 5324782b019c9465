package design

import "errors"

// Domain errors - centralized error definitions
var (
	// ErrUnknownDesign is returned when a design name is not in the
	// supported set.
	ErrUnknownDesign = errors.New("unknown design")

	// ErrUnknownVariable is returned when a solve-variable name is not
	// in the supported set.
	ErrUnknownVariable = errors.New("unknown solve variable")

	// ErrDegenerateModel is returned when a parameter configuration
	// produces a division by zero in the noncentrality or
	// degrees-of-freedom formulas (e.g. all noise terms zero, or a
	// sample size of 1).
	ErrDegenerateModel = errors.New("degenerate model configuration")

	// ErrInvalidParams is returned when parameter values fall outside
	// their documented domains.
	ErrInvalidParams = errors.New("invalid design parameters")
)
