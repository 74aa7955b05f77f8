package stereoglue

import "github.com/stereoglue/stereoglue/geom"

// Status classifies how an Estimate call concluded.
type Status int

const (
	// StatusSuccess means at least one valid model was found and scored.
	StatusSuccess Status = iota
	// StatusNoModelFound means the loop ran to its iteration bound without
	// ever producing a valid candidate (e.g. every sample was degenerate).
	StatusNoModelFound
	// StatusCancelled means ctx was cancelled or its deadline expired
	// before a usable model could be confirmed.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusNoModelFound:
		return "NoModelFound"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Result is what a successful Estimate call returns: the best model found,
// its quality score, its deduplicated inlier set, and bookkeeping about the
// run.
type Result struct {
	Model      geom.Model
	Score      geom.Score
	Inliers    geom.InlierSet
	Iterations int
	Status     Status
}
