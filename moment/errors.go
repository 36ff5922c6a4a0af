package moment

import "errors"

var (
	// ErrBadWeights reports a weight vector with a negative entry or a total
	// different from 1.0. The sum is tested with exact equality.
	ErrBadWeights = errors.New("moment: weights must be non-negative and sum to 1")

	// ErrWeightLength reports a weight vector that is neither the length-1
	// uniform sentinel nor one entry per row.
	ErrWeightLength = errors.New("moment: weight vector must have length 1 or one entry per row")

	ErrBadShape      = errors.New("moment: rows and cols must be positive")
	ErrShortInput    = errors.New("moment: input matrix shorter than rows*cols")
	ErrShortOutput   = errors.New("moment: output buffer too short")
	ErrUnknownMethod = errors.New("moment: unknown estimator method")
	ErrTooFewRows    = errors.New("moment: correlation requires at least two rows")
)
