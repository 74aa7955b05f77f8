package stereoglue

import (
	"context"
	"math"
	"sync"

	"github.com/stereoglue/stereoglue/estimator"
	"github.com/stereoglue/stereoglue/geom"
	"github.com/stereoglue/stereoglue/grid"
	"github.com/stereoglue/stereoglue/localopt"
	"github.com/stereoglue/stereoglue/sampler"
	"github.com/stereoglue/stereoglue/scoring"
	"github.com/stereoglue/stereoglue/termination"
)

// Estimate fits a geometric model from src/dst point clouds and an optional
// multi-match correspondence table, per Settings. matches and matchScores
// may both be nil, in which case 1-to-1 matching (geom.Identity) with
// uniform scores is assumed. intrinsicsSrc and intrinsicsDst are required
// when settings.ProblemType is geom.Essential (nil otherwise); Estimate
// normalizes both point clouds through them before any epipolar-constraint
// algebra runs, and returns an InvalidInput/ErrMissingIntrinsics error if
// either is nil for an Essential fit.
//
// Minimal samples are always drawn on a single goroutine, in a fixed order
// determined only by Settings.Seed and the iteration index — never by
// Settings.CoreNumber or goroutine scheduling — so the sequence of models
// considered is identical for any CoreNumber; see DESIGN.md for why the
// final Result can still differ across CoreNumber once local optimization
// is seeded per iteration index.
func Estimate(ctx context.Context, src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable, intrinsicsSrc, intrinsicsDst *geom.Intrinsics, settings Settings) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	est := estimator.New(settings.ProblemType)

	if src == nil || dst == nil {
		return Result{}, newError(InvalidInput, ErrShapeMismatch)
	}
	if !src.Finite() || !dst.Finite() {
		return Result{}, newError(InvalidInput, ErrNonFinite)
	}
	if src.Rows() < est.SampleSize() {
		return Result{}, newError(InsufficientData, ErrTooFewPoints)
	}

	estSrc, estDst := src, dst
	if settings.ProblemType == geom.Essential {
		if intrinsicsSrc == nil || intrinsicsDst == nil {
			return Result{}, newError(InvalidInput, ErrMissingIntrinsics)
		}
		var err error
		estSrc, err = geom.NormalizeByIntrinsics(src, *intrinsicsSrc)
		if err != nil {
			return Result{}, newError(InvalidInput, err)
		}
		estDst, err = geom.NormalizeByIntrinsics(dst, *intrinsicsDst)
		if err != nil {
			return Result{}, newError(InvalidInput, err)
		}
	}

	if matches == nil {
		m, err := geom.Identity(src.Rows())
		if err != nil {
			return Result{}, newError(InvalidInput, err)
		}
		matches = m
	}
	if matches.Rows() != src.Rows() {
		return Result{}, newError(InvalidInput, ErrShapeMismatch)
	}
	if matchScores == nil {
		sc, err := geom.UniformScores(matches)
		if err != nil {
			return Result{}, newError(InvalidInput, err)
		}
		matchScores = sc
	}
	if matchScores.Rows() != matches.Rows() || matchScores.K() != matches.K() {
		return Result{}, newError(InvalidInput, ErrShapeMismatch)
	}

	smp, err := buildSampler(settings, src, dst, matches, matchScores)
	if err != nil {
		return Result{}, err
	}
	smp.Initialize(src.Rows())

	scorer := scoring.New(settings.ScorerKind)
	optimizer := localopt.New(settings.OptimizerKind, settings.LocalOptimizationSettings)
	finalOptimizer := localopt.New(settings.FinalOptimizerKind, settings.LocalOptimizationSettings)
	criterion := termination.New(settings.TerminationKind, settings.MinIterations, settings.MaxIterations)
	workerRNG := sampler.RNGFromSeed(settings.Seed)

	cores := settings.CoreNumber
	if cores <= 0 {
		cores = 1
	}

	bestScore := geom.InvalidScore
	var bestModel geom.Model
	var bestInliers geom.InlierSet

	requiredIterations := settings.MaxIterations
	iterationsRun := 0
	scratch := make([]int, 0, est.SampleSize())

	for iterationsRun < requiredIterations {
		select {
		case <-ctx.Done():
			return partialResult(bestModel, bestScore, bestInliers, iterationsRun, StatusCancelled), newError(Cancelled, ctx.Err())
		default:
		}

		batch := requiredIterations - iterationsRun
		if batch > cores {
			batch = cores
		}

		type candidate struct {
			model geom.Model
		}
		var candidates []candidate

		for j := 0; j < batch; j++ {
			idx, ok := smp.Sample(src.Rows(), est.SampleSize(), scratch)
			scratch = idx
			if !ok {
				continue
			}
			corr, ok := buildMinimalCorrespondences(estSrc, estDst, matches, matchScores, idx)
			if !ok {
				continue
			}
			models, err := est.EstimateMinimal(corr)
			if err != nil {
				continue
			}
			for _, m := range models {
				candidates = append(candidates, candidate{model: m})
			}
		}
		iterationsRun += batch

		if len(candidates) == 0 {
			continue
		}

		type scored struct {
			score   geom.Score
			inliers geom.InlierSet
			model   geom.Model
			ok      bool
		}
		results := make([]scored, len(candidates))
		sem := make(chan struct{}, cores)
		var wg sync.WaitGroup
		for i, c := range candidates {
			if !est.IsValidModel(c.model) {
				continue
			}
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, model geom.Model) {
				defer wg.Done()
				defer func() { <-sem }()
				score, inliers, err := scorer.Score(estSrc, estDst, matches, matchScores, model, est, settings.Threshold)
				if err != nil || !score.Valid {
					return
				}
				results[i] = scored{score: score, inliers: inliers, model: model, ok: true}
			}(i, c.model)
		}
		wg.Wait()

		for _, r := range results {
			if !r.ok {
				continue
			}
			if !bestScore.Less(r.score) {
				continue
			}
			bestScore, bestModel, bestInliers = r.score, r.model, r.inliers

			optModel, optScore, optInliers := optimizer.Optimize(
				estSrc, estDst, matches, matchScores, bestModel, bestScore, bestInliers,
				est, scorer, settings.Threshold, sampler.DeriveRNG(workerRNG, uint64(iterationsRun)),
			)
			if bestScore.Less(optScore) {
				bestModel, bestScore, bestInliers = optModel, optScore, optInliers
			}

			ratio := 0.0
			if src.Rows() > 0 {
				ratio = float64(bestScore.Inliers) / float64(src.Rows())
			}
			requiredIterations = criterion.RequiredIterations(ratio, est.SampleSize(), settings.Confidence)
			if p, ok := criterion.(*termination.PROSAC); ok {
				p.NotifyWindow(iterationsRun, src.Rows())
			}
		}

		if criterion.ShouldTerminate(iterationsRun, requiredIterations) {
			break
		}
	}

	if bestScore.Valid {
		finalModel, finalScore, finalInliers := finalOptimizer.Optimize(
			estSrc, estDst, matches, matchScores, bestModel, bestScore, bestInliers,
			est, scorer, settings.Threshold, sampler.DeriveRNG(workerRNG, uint64(iterationsRun)),
		)
		if bestScore.Less(finalScore) {
			bestModel, bestScore, bestInliers = finalModel, finalScore, finalInliers
		}
	}

	status := StatusNoModelFound
	if bestScore.Valid {
		status = StatusSuccess
	}
	return Result{Model: bestModel, Score: bestScore, Inliers: bestInliers, Iterations: iterationsRun, Status: status}, nil
}

func partialResult(model geom.Model, score geom.Score, inliers geom.InlierSet, iterations int, status Status) Result {
	return Result{Model: model, Score: score, Inliers: inliers, Iterations: iterations, Status: status}
}

// buildSampler constructs the Sampler named by settings.SamplerKind,
// wiring a grid.Graph for NeighborhoodGuided and a PROSAC-ordering quality
// vector from matchScores for PROSAC.
func buildSampler(settings Settings, src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable) (sampler.Sampler, error) {
	switch settings.SamplerKind {
	case sampler.PROSACKind:
		quality := make([]float64, src.Rows())
		for row := 0; row < src.Rows(); row++ {
			quality[row] = rowQuality(matches, matchScores, row, dst.Rows())
		}
		return sampler.NewPROSAC(settings.Seed, quality), nil
	case sampler.NeighborhoodGuidedKind:
		g, err := grid.Build(src, dst, settings.GridDivisions)
		if err != nil {
			return nil, newError(InvalidInput, err)
		}
		return sampler.NewNeighborhoodGuided(settings.Seed, g), nil
	default:
		return sampler.NewUniform(settings.Seed), nil
	}
}

// rowQuality returns the best (lowest) match score for row across its
// valid candidate columns, or +Inf if no candidate names a destination in
// [0, dstRows).
func rowQuality(matches *geom.MatchTable, matchScores *geom.ScoreTable, row, dstRows int) float64 {
	best := math.Inf(1)
	for col := 0; col < matches.K(); col++ {
		if !matches.Valid(row, col, dstRows) {
			continue
		}
		if v := matchScores.At(row, col); v < best {
			best = v
		}
	}
	return best
}

// buildMinimalCorrespondences resolves each sampled source row to its
// best-scoring candidate destination and assembles the Correspondence
// slice a minimal solve needs. ok is false if any sampled row has no valid
// candidate, in which case the whole sample is unusable.
func buildMinimalCorrespondences(src, dst *geom.DataMatrix, matches *geom.MatchTable, matchScores *geom.ScoreTable, rows []int) ([]estimator.Correspondence, bool) {
	corr := make([]estimator.Correspondence, 0, len(rows))
	for _, row := range rows {
		bestCol := -1
		best := math.Inf(1)
		for col := 0; col < matches.K(); col++ {
			if !matches.Valid(row, col, dst.Rows()) {
				continue
			}
			if v := matchScores.At(row, col); v < best {
				best = v
				bestCol = col
			}
		}
		if bestCol == -1 {
			return nil, false
		}
		dstIdx := matches.At(row, bestCol)
		sx, sy := src.XY(row)
		dx, dy := dst.XY(dstIdx)
		corr = append(corr, estimator.Correspondence{SrcX: sx, SrcY: sy, DstX: dx, DstY: dy})
	}
	return corr, true
}
