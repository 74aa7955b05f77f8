package termination

// Standard implements the classical RANSAC confidence bound, clamped to
// [MinIterations, MaxIterations].
type Standard struct {
	MinIterations int
	MaxIterations int
}

func (Standard) Kind() Kind { return StandardKind }

func (s *Standard) RequiredIterations(inlierRatio float64, sampleSize int, confidence float64) int {
	return clampIterations(ransacBound(inlierRatio, sampleSize, confidence), s.MinIterations, s.MaxIterations)
}

func (s *Standard) ShouldTerminate(iterationsRun, requiredIterations int) bool {
	return iterationsRun >= requiredIterations
}
