package stereoglue

import (
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/localopt"
	"github.com/stereoglue/stereoglue/sampler"
	"github.com/stereoglue/stereoglue/scoring"
	"github.com/stereoglue/stereoglue/termination"
)

// Settings configures one Estimate call. Build it with DefaultSettings and
// functional options rather than constructing it directly, so future
// fields get sane zero-cost defaults.
type Settings struct {
	ProblemType geom.ProblemType

	SamplerKind        sampler.Kind
	ScorerKind         scoring.Kind
	OptimizerKind      localopt.Kind // local_optimization: run during the main loop
	FinalOptimizerKind localopt.Kind // final_optimization: run once on the winner before returning
	TerminationKind    termination.Kind

	// LocalOptimizationSettings configures NestedRANSAC's inner resampling,
	// shared by both OptimizerKind and FinalOptimizerKind when either names
	// NestedRANSAC.
	LocalOptimizationSettings localopt.Settings

	Threshold     float64 // inlier distance threshold; the scorer compares its square to the residual
	Confidence    float64 // desired probability of finding an all-inlier sample
	MinIterations int
	MaxIterations int

	Seed       int64
	CoreNumber int // parallel scoring workers; <= 1 runs single-threaded

	GridDivisions int // grid side count for NeighborhoodGuided sampling
}

// Option mutates a Settings value. Constructors validate and panic on
// meaningless inputs (a malformed option is a programmer error caught at
// setup time); Estimate itself never panics on caller data.
type Option func(*Settings)

// DefaultSettings returns the baseline configuration: homography fitting,
// uniform sampling, MSAC (Truncated) scoring, nested-RANSAC local
// optimization during the loop with an IRLS final polish, the standard
// RANSAC termination bound, a 0.99 confidence target, single-threaded
// execution, 1000/5000 iteration bounds, and a 3-pixel inlier threshold.
// The scorer squares Threshold internally before comparing it against a
// residual, so Threshold is always a plain distance in the estimator's
// native units (pixels for Homography; Fundamental/Essential callers
// should override via WithThreshold for Sampson-distance units).
func DefaultSettings() Settings {
	return Settings{
		ProblemType:               geom.Homography,
		SamplerKind:               sampler.UniformKind,
		ScorerKind:                scoring.TruncatedKind,
		OptimizerKind:             localopt.NestedRANSACKind,
		FinalOptimizerKind:        localopt.IRLSKind,
		TerminationKind:           termination.StandardKind,
		LocalOptimizationSettings: localopt.DefaultSettings(),
		Threshold:                 3, // pixels; squared internally by the scorer
		Confidence:                0.99,
		MinIterations:             1000,
		MaxIterations:             5000,
		Seed:                      0,
		CoreNumber:                1,
		GridDivisions:             16,
	}
}

// WithProblemType selects which geometry to fit.
func WithProblemType(kind geom.ProblemType) Option {
	return func(s *Settings) { s.ProblemType = kind }
}

// WithSampler selects the minimal-sample drawing strategy.
func WithSampler(kind sampler.Kind) Option {
	return func(s *Settings) { s.SamplerKind = kind }
}

// WithScorer selects the scoring cost function.
func WithScorer(kind scoring.Kind) Option {
	return func(s *Settings) { s.ScorerKind = kind }
}

// WithOptimizer selects the local-optimization strategy.
func WithOptimizer(kind localopt.Kind) Option {
	return func(s *Settings) { s.OptimizerKind = kind }
}

// WithTermination selects the termination criterion.
func WithTermination(kind termination.Kind) Option {
	return func(s *Settings) { s.TerminationKind = kind }
}

// WithFinalOptimizer selects the optimizer run exactly once on the winning
// model's inlier set before Estimate returns, independent of OptimizerKind.
func WithFinalOptimizer(kind localopt.Kind) Option {
	return func(s *Settings) { s.FinalOptimizerKind = kind }
}

// WithLocalOptimizationSettings overrides NestedRANSAC's inner-resampling
// tuning (max_iterations, sample_size_multiplier), shared by OptimizerKind
// and FinalOptimizerKind when either names NestedRANSAC.
func WithLocalOptimizationSettings(settings localopt.Settings) Option {
	return func(s *Settings) { s.LocalOptimizationSettings = settings }
}

// WithThreshold sets the inlier threshold as a plain distance; the scorer
// squares it before comparing it against the chosen estimator's residual.
// Panics if threshold is not strictly positive.
func WithThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic("stereoglue: WithThreshold requires threshold > 0")
	}
	return func(s *Settings) { s.Threshold = threshold }
}

// WithConfidence sets the target confidence for the termination bound.
// Panics if confidence is outside (0, 1).
func WithConfidence(confidence float64) Option {
	if confidence <= 0 || confidence >= 1 {
		panic("stereoglue: WithConfidence requires 0 < confidence < 1")
	}
	return func(s *Settings) { s.Confidence = confidence }
}

// WithIterationBounds sets the [min, max] iteration clamp. Panics if min is
// negative or exceeds max.
func WithIterationBounds(minIterations, maxIterations int) Option {
	if minIterations < 0 || minIterations > maxIterations {
		panic("stereoglue: WithIterationBounds requires 0 <= min <= max")
	}
	return func(s *Settings) {
		s.MinIterations = minIterations
		s.MaxIterations = maxIterations
	}
}

// WithSeed fixes the base RNG seed every sampler and worker stream derives
// from, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(s *Settings) { s.Seed = seed }
}

// WithCoreNumber sets the number of parallel scoring workers. Values <= 0
// are treated as 1.
func WithCoreNumber(cores int) Option {
	return func(s *Settings) {
		if cores <= 0 {
			cores = 1
		}
		s.CoreNumber = cores
	}
}

// WithGridDivisions sets the grid side count NeighborhoodGuided sampling
// partitions the source point cloud into. Panics if divisions <= 0.
func WithGridDivisions(divisions int) Option {
	if divisions <= 0 {
		panic("stereoglue: WithGridDivisions requires divisions > 0")
	}
	return func(s *Settings) { s.GridDivisions = divisions }
}

// NewSettings applies opts over DefaultSettings and returns the result.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
