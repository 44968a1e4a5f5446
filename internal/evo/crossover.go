package evo

import (
	"math/rand"

	"evosim/internal/model"
)

// CrossoverOperator produces one child from two parents. The child's ID is
// left empty; the driver assigns identity.
type CrossoverOperator interface {
	Name() string
	Apply(rng *rand.Rand, a, b model.Genome) model.Genome
}

// TwoPointCrossover copies parent a and replaces the gene span between two
// random cut points with parent b's span.
type TwoPointCrossover struct{}

func (TwoPointCrossover) Name() string {
	return "two_point"
}

func (TwoPointCrossover) Apply(rng *rand.Rand, a, b model.Genome) model.Genome {
	n := len(a.Genes)
	genes := make([]float64, n)
	copy(genes, a.Genes)
	if n == 0 || len(b.Genes) != n {
		return model.Genome{Genes: genes}
	}

	lo := rng.Intn(n)
	hi := rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}
	copy(genes[lo:hi+1], b.Genes[lo:hi+1])
	return model.Genome{Genes: genes}
}

// UniformCrossover picks each gene from either parent with equal
// probability.
type UniformCrossover struct{}

func (UniformCrossover) Name() string {
	return "uniform"
}

func (UniformCrossover) Apply(rng *rand.Rand, a, b model.Genome) model.Genome {
	n := len(a.Genes)
	genes := make([]float64, n)
	copy(genes, a.Genes)
	if len(b.Genes) != n {
		return model.Genome{Genes: genes}
	}
	for i := range genes {
		if rng.Float64() < 0.5 {
			genes[i] = b.Genes[i]
		}
	}
	return model.Genome{Genes: genes}
}
