package harness

import "errors"

var (
	ErrMissingInput    = errors.New("harness: missing input argument")
	ErrMissingVariable = errors.New("harness: missing environment variable")
	ErrShortInput      = errors.New("harness: input shorter than requested length")
	ErrNegativeLength  = errors.New("harness: length must be >= 0")
	ErrNotScalar       = errors.New("harness: argument is not a scalar")
	ErrUnknownOracle   = errors.New("harness: unknown oracle")
)
