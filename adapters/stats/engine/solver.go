package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"mixedpower/domain/design"
)

// sampleSizeFloor is the smallest sample size the solver will
// consider; below 2 the degrees-of-freedom denominators vanish.
const sampleSizeFloor = 2.0

// costPenalty replaces the objective when the engine reports a
// degenerate evaluation mid-search, steering the optimizer away.
const costPenalty = 1e10

// SolveOptions bounds the inverse search.
type SolveOptions struct {
	// MaxIterations caps the optimizer's major iterations.
	MaxIterations int
	// PowerSlack is the tolerance applied when checking that the
	// rounded-up answer actually reaches the target power.
	PowerSlack float64
}

// DefaultSolveOptions returns the solver limits used when the caller
// does not override them.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		MaxIterations: 200,
		PowerSlack:    1e-9,
	}
}

// SolveCCC finds the smallest integer value of the given sample-size
// variable reaching targetPower, holding every other parameter in p
// fixed. One routine serves both variables; which count is free is
// selected through design.Params.With.
//
// The search minimizes (power(n) - target)^2 with quasi-Newton LBFGS
// over the unconstrained reparameterization n = 2 + u^2, which bakes
// in the lower bound of 2. The real-valued minimizer is rounded up so
// the returned count achieves at least the requested power.
//
// Optimizer non-convergence and unreachable targets are reported as a
// structured SolveOutcome with Found=false and full diagnostics, not
// as an error; errors are reserved for invalid or degenerate inputs.
func (e *Engine) SolveCCC(variable design.Variable, targetPower float64, p design.Params, opts SolveOptions) (design.SolveOutcome, error) {
	outcome := design.SolveOutcome{Variable: variable, TargetPower: targetPower}

	if targetPower <= 0 || targetPower >= 1 {
		return outcome, fmt.Errorf("%w: target power must be in (0, 1), got %v",
			design.ErrInvalidParams, targetPower)
	}
	if opts.MaxIterations <= 0 {
		opts = DefaultSolveOptions()
	}

	// Degeneracy in the fixed parameters does not depend on the free
	// count, so one evaluation at the floor catches it up front.
	if _, err := e.PowerCCC(p.With(variable, sampleSizeFloor)); err != nil {
		return outcome, err
	}

	cost := func(u []float64) float64 {
		n := sampleSizeFloor + u[0]*u[0]
		res, err := e.PowerCCC(p.With(variable, n))
		if err != nil {
			return costPenalty
		}
		diff := res.Power - targetPower
		return diff * diff
	}

	// LBFGS requires a gradient and Minimize does not supply one on
	// its own; approximate it by central finite differences.
	problem := optimize.Problem{
		Func: cost,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, cost, x, nil)
		},
	}
	settings := &optimize.Settings{MajorIterations: opts.MaxIterations}

	// Start off the u=0 stationary point of the reparameterization;
	// u=1 corresponds to n=3.
	result, optErr := optimize.Minimize(problem, []float64{1.0}, settings, &optimize.LBFGS{})
	if result == nil {
		outcome.FailureReason = fmt.Sprintf("optimizer produced no result: %v", optErr)
		return outcome, nil
	}

	minimizer := sampleSizeFloor + result.X[0]*result.X[0]
	converged := optErr == nil && convergedStatus(result.Status)
	outcome.Diagnostics = design.SolveDiagnostics{
		Iterations:      result.Stats.MajorIterations,
		FuncEvaluations: result.Stats.FuncEvaluations,
		FinalObjective:  result.F,
		Minimizer:       minimizer,
		Converged:       converged,
		Status:          result.Status.String(),
	}

	if !converged {
		if optErr != nil {
			outcome.FailureReason = fmt.Sprintf("optimizer did not converge: %v", optErr)
		} else {
			outcome.FailureReason = fmt.Sprintf("optimizer did not converge: %s", result.Status)
		}
		return outcome, nil
	}

	// Counts are integers; rounding up is the conservative direction.
	// The tiny shift keeps optimizer noise a hair above an integer
	// crossing from inflating the answer by one.
	n := int(math.Ceil(minimizer - 1e-6))
	for attempt := 0; attempt < 2; attempt++ {
		achieved, err := e.PowerCCC(p.With(variable, float64(n)))
		if err != nil {
			outcome.FailureReason = fmt.Sprintf("power evaluation at %s=%d failed: %v", variable, n, err)
			return outcome, nil
		}
		outcome.AchievedPower = achieved.Power
		if achieved.Power+opts.PowerSlack >= targetPower {
			outcome.N = n
			outcome.Found = true
			return outcome, nil
		}
		// Rounding may land one short when the real minimizer sits a
		// shade under the crossing; a single bump settles it.
		n++
	}

	outcome.FailureReason = fmt.Sprintf("target power %v unreachable: best %s yields power %v",
		targetPower, variable, outcome.AchievedPower)
	return outcome, nil
}

// convergedStatus reports whether the optimizer status represents a
// genuine convergence rather than a resource limit or failure.
func convergedStatus(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	default:
		return false
	}
}
