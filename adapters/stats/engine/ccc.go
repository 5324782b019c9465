package engine

import (
	"fmt"
	"math"

	"mixedpower/domain/design"
)

// PowerCCC computes two-tailed power for the CCC design.
//
// The test statistic follows a noncentral t-distribution whose
// noncentrality is driven by the effect size and the design-induced
// variance, with Satterthwaite-approximated degrees of freedom
// combining the participant-level and target-level mean squares.
// Critical values come from the central t-distribution at alpha/2.
//
// Degenerate configurations (zero noncentrality denominator,
// non-positive degrees of freedom) return design.ErrDegenerateModel
// instead of propagating NaN. The one sanctioned exception: when the
// Satterthwaite denominator is exactly zero, df falls back to 1.0.
func (e *Engine) PowerCCC(p design.Params) (design.PowerResult, error) {
	code2 := p.Code * p.Code

	// Noncentrality parameter
	ncpDenom := math.Sqrt(2.0 * (p.Resid/(p.NParticipants*p.NTargets) +
		2.0*code2*p.TargetSlope/p.NTargets +
		2.0*code2*p.ParticipantXTarget/p.NParticipants))
	if ncpDenom == 0 || math.IsNaN(ncpDenom) || math.IsInf(ncpDenom, 0) {
		return design.PowerResult{}, fmt.Errorf("%w: noncentrality denominator is %v (resid, target_slope and participant_x_target cannot all vanish)",
			design.ErrDegenerateModel, ncpDenom)
	}
	ncp := p.CohensD / ncpDenom

	// Satterthwaite degrees of freedom from the mean squares
	msE := p.Resid
	msSC := p.Resid + p.NParticipants*p.TargetSlope*code2
	msPC := p.Resid + p.NTargets*p.ParticipantSlope*code2
	dofNumer := (msPC + msSC - msE) * (msPC + msSC - msE)
	dofDenom := msE*msE/((p.NParticipants-1.0)*(p.NTargets-1.0)) +
		msSC*msSC/(p.NTargets-1.0) +
		msPC*msPC/(p.NParticipants-1.0)

	// Exactly-zero denominator keeps the documented df=1.0 fallback.
	df := 1.0
	if dofDenom != 0 {
		df = dofNumer / dofDenom
	}
	if df <= 0 || math.IsNaN(df) || math.IsInf(df, 0) {
		return design.PowerResult{}, fmt.Errorf("%w: degrees of freedom %v (sample sizes must exceed 1)",
			design.ErrDegenerateModel, df)
	}

	// Critical values from the *central* t-distribution
	alphaHalf := p.Alpha / 2.0
	tCritUpper := e.dist.StudentTQuantile(1.0-alphaHalf, df)
	tCritLower := e.dist.StudentTQuantile(alphaHalf, df)

	cdfUpper := e.dist.NoncentralTCDF(tCritUpper, df, ncp)
	cdfLower := e.dist.NoncentralTCDF(tCritLower, df, ncp)

	power := (1.0 - cdfUpper) + cdfLower
	if math.IsNaN(power) {
		return design.PowerResult{}, fmt.Errorf("%w: power evaluated to NaN (df=%v, ncp=%v)",
			design.ErrDegenerateModel, df, ncp)
	}

	v := p.Resid + p.ParticipantXTarget +
		p.TargetIntercept + p.ParticipantIntercept +
		code2*p.TargetSlope + code2*p.ParticipantSlope

	return design.PowerResult{
		Power:         power,
		NCP:           ncp,
		DF:            df,
		TCritUpper:    tCritUpper,
		TCritLower:    tCritLower,
		CDFUpper:      cdfUpper,
		CDFLower:      cdfLower,
		TotalVariance: v,
		StandardizedD: p.CohensD / math.Sqrt(v),
	}, nil
}
