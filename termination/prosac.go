package termination

// PROSAC wraps Standard with the non-randomized termination extension: the
// caller reports the progressive sampler's current window size each
// iteration via NotifyWindow, and once that window has grown to cover the
// whole correspondence pool, termination falls back to exactly the Standard
// bound (PROSAC's progressive-sampling advantage has been exhausted, so
// there is nothing left to special-case).
type PROSAC struct {
	Standard
	windowFull bool
}

func (PROSAC) Kind() Kind { return PROSACKind }

// NotifyWindow records the progressive sampler's current window size
// relative to the pool size. Once window reaches poolSize the wrapped
// Standard bound takes over unconditionally.
func (p *PROSAC) NotifyWindow(window, poolSize int) {
	if window >= poolSize {
		p.windowFull = true
	}
}

func (p *PROSAC) RequiredIterations(inlierRatio float64, sampleSize int, confidence float64) int {
	return p.Standard.RequiredIterations(inlierRatio, sampleSize, confidence)
}

// ShouldTerminate withholds termination until the progressive window has
// grown to the full pool: early iterations only ever sample the
// highest-quality subset, so the Standard confidence bound (which assumes
// uniform sampling over the whole pool) cannot yet be trusted as an early
// exit.
func (p *PROSAC) ShouldTerminate(iterationsRun, requiredIterations int) bool {
	return p.windowFull && p.Standard.ShouldTerminate(iterationsRun, requiredIterations)
}
