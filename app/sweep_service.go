package app

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"mixedpower/domain/design"
	apperrors "mixedpower/internal/errors"
)

// SweepRequest defines a power curve over one sample-size variable.
type SweepRequest struct {
	Design      string        `json:"design"`
	Variable    string        `json:"variable"`
	From        int           `json:"from"`
	To          int           `json:"to"`
	Step        int           `json:"step"`
	TargetPower float64       `json:"target_power"` // optional threshold reported in the summary
	Params      design.Params `json:"params"`
}

// SweepPoint is one evaluated point on the power curve.
type SweepPoint struct {
	N     int     `json:"n"`
	Power float64 `json:"power"`
	NCP   float64 `json:"ncp"`
	DF    float64 `json:"dof"`
}

// SweepSummary aggregates the curve.
type SweepSummary struct {
	MinPower       float64 `json:"min_power"`
	MaxPower       float64 `json:"max_power"`
	MeanPower      float64 `json:"mean_power"`
	MedianPower    float64 `json:"median_power"`
	TargetPower    float64 `json:"target_power,omitempty"`
	FirstNReaching int     `json:"first_n_reaching,omitempty"` // 0 when the target is never reached
}

// SweepResult contains the complete output of a power-curve sweep.
type SweepResult struct {
	Design   design.Design   `json:"design"`
	Variable design.Variable `json:"variable"`
	Params   design.Params   `json:"params"`
	Points   []SweepPoint    `json:"points"`
	Summary  SweepSummary    `json:"summary"`
}

// Sweep evaluates power across an inclusive integer range of one
// sample-size variable and summarizes the resulting curve.
func (s *PowerService) Sweep(req SweepRequest) (*SweepResult, error) {
	d, err := design.ParseDesign(req.Design)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}
	v, err := design.ParseVariable(req.Variable)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}
	if req.Step <= 0 {
		req.Step = 1
	}
	if req.From < 2 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("sweep range must start at 2 or above, got %d", req.From))
	}
	if req.To < req.From {
		return nil, apperrors.InvalidInput(fmt.Sprintf("sweep range is empty: from=%d to=%d", req.From, req.To))
	}
	if req.TargetPower < 0 || req.TargetPower >= 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("target power must be in [0, 1), got %v", req.TargetPower))
	}
	if err := req.Params.With(v, 2).Validate(); err != nil {
		return nil, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}

	result := &SweepResult{
		Design:   d,
		Variable: v,
		Params:   req.Params,
		Points:   make([]SweepPoint, 0, (req.To-req.From)/req.Step+1),
	}

	powers := make([]float64, 0, cap(result.Points))
	firstN := 0
	for n := req.From; n <= req.To; n += req.Step {
		pr, err := s.engine.PowerCCC(req.Params.With(v, float64(n)))
		if err != nil {
			return nil, classifyEngineError(err)
		}
		result.Points = append(result.Points, SweepPoint{
			N:     n,
			Power: pr.Power,
			NCP:   pr.NCP,
			DF:    pr.DF,
		})
		powers = append(powers, pr.Power)
		if firstN == 0 && req.TargetPower > 0 && pr.Power >= req.TargetPower {
			firstN = n
		}
	}

	minP, _ := stats.Min(powers)
	maxP, _ := stats.Max(powers)
	meanP, _ := stats.Mean(powers)
	medianP, _ := stats.Median(powers)
	result.Summary = SweepSummary{
		MinPower:       minP,
		MaxPower:       maxP,
		MeanPower:      meanP,
		MedianPower:    medianP,
		TargetPower:    req.TargetPower,
		FirstNReaching: firstN,
	}
	return result, nil
}
