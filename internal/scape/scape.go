// Package scape defines the fitness environments a population is scored
// against. A scape maps one genome to a scalar cost, lower is better.
package scape

import (
	"context"

	"evosim/internal/model"
)

// Trace carries per-individual outcome metadata alongside the fitness.
type Trace map[string]any

// Scape is the polymorphic fitness strategy. Implementations hold no
// per-genome state and are safe to call concurrently from evaluation
// workers.
type Scape interface {
	Name() string
	Evaluate(ctx context.Context, genome model.Genome) (float64, Trace, error)
}

// Stopper is implemented by scapes that accept an external halt signal,
// such as a human operator aborting a live robot run.
type Stopper interface {
	Stop()
}
