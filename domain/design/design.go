package design

import (
	"fmt"
	"strings"
)

// Design identifies a supported experimental design.
type Design string

const (
	// CCC is the crossed participants-by-targets design with a
	// covariate contrast code.
	CCC Design = "CCC"
)

// Variable identifies a sample-size quantity the inverse solver can
// search over.
type Variable string

const (
	NParticipants Variable = "n_participants"
	NTargets      Variable = "n_targets"
)

// SupportedDesigns returns the fixed set of designs the engine knows.
func SupportedDesigns() []Design {
	return []Design{CCC}
}

// SupportedVariables returns the fixed set of solvable variables.
func SupportedVariables() []Variable {
	return []Variable{NParticipants, NTargets}
}

// ParseDesign resolves a design name case-insensitively. Unknown names
// are rejected with an error naming the allowed set.
func ParseDesign(name string) (Design, error) {
	for _, d := range SupportedDesigns() {
		if strings.EqualFold(name, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownDesign, name, SupportedDesigns())
}

// ParseVariable resolves a solve-variable name case-insensitively.
func ParseVariable(name string) (Variable, error) {
	for _, v := range SupportedVariables() {
		if strings.EqualFold(name, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownVariable, name, SupportedVariables())
}
