package scoring

import "errors"

// ErrShapeMismatch is returned when the match table's row count does not
// match the source matrix's row count. The shape of match_scores is not
// checked by the scorers.
var ErrShapeMismatch = errors.New("scoring: match table shape mismatch")

// ErrInvalidThreshold is returned for an inlier threshold <= 0. NaN and
// infinite thresholds are not rejected.
var ErrInvalidThreshold = errors.New("scoring: invalid threshold")
