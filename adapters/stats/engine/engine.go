package engine

import (
	"mixedpower/adapters/stats/distributions"
)

// Engine computes statistical power for crossed mixed-effects designs
// and solves inversely for sample sizes. It is stateless; a single
// instance is safe for concurrent use.
type Engine struct {
	dist *distributions.Distributions
}

// New creates a new power engine
func New() *Engine {
	return &Engine{
		dist: distributions.NewDistributions(),
	}
}
