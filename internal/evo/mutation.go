package evo

import (
	"math/rand"

	"evosim/internal/model"
)

// MutationOperator perturbs a genome, returning a new value; the input is
// never modified in place.
type MutationOperator interface {
	Name() string
	Apply(rng *rand.Rand, g model.Genome) model.Genome
}

// GaussianMutation independently perturbs each gene by normal noise with a
// fixed per-gene probability.
type GaussianMutation struct {
	Probability float64
	Sigma       float64
}

func (GaussianMutation) Name() string {
	return "gaussian"
}

func (m GaussianMutation) Apply(rng *rand.Rand, g model.Genome) model.Genome {
	genes := make([]float64, len(g.Genes))
	copy(genes, g.Genes)
	for i := range genes {
		if rng.Float64() < m.Probability {
			genes[i] += rng.NormFloat64() * m.Sigma
		}
	}
	return model.Genome{ID: g.ID, Genes: genes}
}

// ResetMutation replaces a gene with a fresh uniform draw from [Min, Max)
// with a fixed per-gene probability.
type ResetMutation struct {
	Probability float64
	Min         float64
	Max         float64
}

func (ResetMutation) Name() string {
	return "reset"
}

func (m ResetMutation) Apply(rng *rand.Rand, g model.Genome) model.Genome {
	genes := make([]float64, len(g.Genes))
	copy(genes, g.Genes)
	for i := range genes {
		if rng.Float64() < m.Probability {
			genes[i] = m.Min + rng.Float64()*(m.Max-m.Min)
		}
	}
	return model.Genome{ID: g.ID, Genes: genes}
}
