package design

import "fmt"

// Params holds the full parameter set of a CCC power computation.
//
// Sample sizes are carried as float64 so the inverse solver can relax
// them to real values during its search; callers supplying counts
// should pass whole numbers.
//
// INVARIANTS:
//   - NParticipants and NTargets > 1 (the Satterthwaite denominators
//     divide by n-1)
//   - Resid and all variance components >= 0
//   - Alpha in (0, 1)
type Params struct {
	CohensD              float64 `json:"cohens_d"`
	Resid                float64 `json:"resid"`
	TargetIntercept      float64 `json:"target_intercept"`
	ParticipantIntercept float64 `json:"participant_intercept"`
	ParticipantXTarget   float64 `json:"participant_x_target"`
	TargetSlope          float64 `json:"target_slope"`
	ParticipantSlope     float64 `json:"participant_slope"`
	NParticipants        float64 `json:"n_participants"`
	NTargets             float64 `json:"n_targets"`
	Code                 float64 `json:"code"`
	Alpha                float64 `json:"alpha"`
}

// DefaultParams returns the documented default parameter set.
func DefaultParams() Params {
	return Params{
		CohensD:              0.5,
		Resid:                1.0,
		TargetIntercept:      0.05,
		ParticipantIntercept: 0.05,
		ParticipantXTarget:   0.05,
		TargetSlope:          0.05,
		ParticipantSlope:     0.05,
		NParticipants:        100,
		NTargets:             100,
		Code:                 1.0,
		Alpha:                0.05,
	}
}

// Validate checks the documented parameter domains. It is applied at
// the service boundary; the engine itself reports degenerate
// configurations through ErrDegenerateModel.
func (p Params) Validate() error {
	if p.NParticipants <= 1 {
		return fmt.Errorf("%w: n_participants must be greater than 1, got %v", ErrInvalidParams, p.NParticipants)
	}
	if p.NTargets <= 1 {
		return fmt.Errorf("%w: n_targets must be greater than 1, got %v", ErrInvalidParams, p.NTargets)
	}
	if p.Resid < 0 {
		return fmt.Errorf("%w: resid must be non-negative, got %v", ErrInvalidParams, p.Resid)
	}
	components := map[string]float64{
		"target_intercept":      p.TargetIntercept,
		"participant_intercept": p.ParticipantIntercept,
		"participant_x_target":  p.ParticipantXTarget,
		"target_slope":          p.TargetSlope,
		"participant_slope":     p.ParticipantSlope,
	}
	for name, value := range components {
		if value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidParams, name, value)
		}
	}
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1), got %v", ErrInvalidParams, p.Alpha)
	}
	return nil
}

// Get returns the value of the given sample-size variable.
func (p Params) Get(v Variable) float64 {
	if v == NTargets {
		return p.NTargets
	}
	return p.NParticipants
}

// With returns a copy of the params with the given sample-size
// variable replaced. The generic solver uses it to hold one count free
// while everything else stays fixed.
func (p Params) With(v Variable, value float64) Params {
	switch v {
	case NTargets:
		p.NTargets = value
	default:
		p.NParticipants = value
	}
	return p
}
