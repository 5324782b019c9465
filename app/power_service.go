package app

import (
	"errors"
	"fmt"

	"mixedpower/adapters/stats/engine"
	"mixedpower/domain/design"
	apperrors "mixedpower/internal/errors"
)

// PowerService is the dispatch and validation layer in front of the
// power engine and the inverse solver. Design and variable names are
// rejected at this boundary; the engine below assumes parsed inputs.
type PowerService struct {
	engine    *engine.Engine
	solveOpts engine.SolveOptions
}

// DefaultTargetPower is the target used by Solve when the caller
// passes a non-positive value.
const DefaultTargetPower = 0.8

// NewPowerService creates a power service with default solver limits
func NewPowerService() *PowerService {
	return NewPowerServiceWithOptions(engine.DefaultSolveOptions())
}

// NewPowerServiceWithOptions creates a power service with custom
// solver limits (iteration cap, power tolerance).
func NewPowerServiceWithOptions(opts engine.SolveOptions) *PowerService {
	return &PowerService{
		engine:    engine.New(),
		solveOpts: opts,
	}
}

// Power validates the design name and parameters and computes power.
func (s *PowerService) Power(designName string, p design.Params) (design.PowerResult, error) {
	d, err := design.ParseDesign(designName)
	if err != nil {
		return design.PowerResult{}, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}
	if err := p.Validate(); err != nil {
		return design.PowerResult{}, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}

	switch d {
	case design.CCC:
		result, err := s.engine.PowerCCC(p)
		if err != nil {
			return design.PowerResult{}, classifyEngineError(err)
		}
		return result, nil
	default:
		return design.PowerResult{}, apperrors.InvalidInput(fmt.Sprintf("design %q has no engine", d))
	}
}

// Solve validates the variable name and searches for the smallest
// integer sample size reaching targetPower. A targetPower <= 0 selects
// the default of 0.8. Non-convergence is reported inside the outcome,
// not as an error.
func (s *PowerService) Solve(variableName string, targetPower float64, p design.Params) (design.SolveOutcome, error) {
	v, err := design.ParseVariable(variableName)
	if err != nil {
		return design.SolveOutcome{}, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}
	if targetPower <= 0 {
		targetPower = DefaultTargetPower
	}

	// The free count is replaced during the search; pin it to a valid
	// value so validation judges only the fixed parameters.
	if err := p.With(v, 2).Validate(); err != nil {
		return design.SolveOutcome{}, apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}

	outcome, err := s.engine.SolveCCC(v, targetPower, p, s.solveOpts)
	if err != nil {
		return outcome, classifyEngineError(err)
	}
	return outcome, nil
}

// classifyEngineError maps domain sentinels onto structured app codes.
func classifyEngineError(err error) error {
	switch {
	case errors.Is(err, design.ErrDegenerateModel):
		return apperrors.DegenerateModel(err)
	case errors.Is(err, design.ErrInvalidParams):
		return apperrors.WithCode(apperrors.CodeInvalidInput, err)
	default:
		return apperrors.Wrap(err, "power engine failed")
	}
}
