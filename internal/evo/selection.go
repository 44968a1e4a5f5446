// Package evo implements the generational loop: selection, crossover,
// mutation, refill, and the population monitor driving them.
package evo

import (
	"fmt"
	"math/rand"
	"sort"

	"evosim/internal/model"

	"gonum.org/v1/gonum/floats"
)

// Selector produces the next generation's seed pool from an evaluated
// population. Fitness is a cost: lower is better.
type Selector interface {
	Name() string
	Select(rng *rand.Rand, scored []model.ScoredGenome) ([]model.Genome, error)
	// PoolSize is the exact number of genomes Select returns, checked
	// against the population size before a run starts.
	PoolSize() int
}

// RouletteSelector combines elitism with reciprocal-weighted roulette
// draws. Individuals are sorted descending by cost; the EliteCount
// smallest-cost individuals are copied unchanged, then SelectCount draws
// are made with replacement, each individual weighted by 1/cost.
type RouletteSelector struct {
	EliteCount  int
	SelectCount int
}

func (RouletteSelector) Name() string {
	return "roulette"
}

func (s RouletteSelector) PoolSize() int {
	return s.EliteCount + s.SelectCount
}

func (s RouletteSelector) Select(rng *rand.Rand, scored []model.ScoredGenome) ([]model.Genome, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if len(scored) == 0 {
		return nil, fmt.Errorf("population is empty")
	}
	if s.EliteCount < 0 || s.EliteCount > len(scored) {
		return nil, fmt.Errorf("invalid elite count: %d", s.EliteCount)
	}
	if s.SelectCount < 0 {
		return nil, fmt.Errorf("invalid select count: %d", s.SelectCount)
	}

	// Descending by cost, worst first; ties keep their order of
	// appearance so elitism is deterministic.
	ranked := make([]model.ScoredGenome, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})

	pool := make([]model.Genome, 0, s.PoolSize())

	// Elites sit at the low-cost end of the descending order.
	for i := 1; i <= s.EliteCount; i++ {
		pool = append(pool, ranked[len(ranked)-i].Genome)
	}

	weights := make([]float64, len(ranked))
	for i, item := range ranked {
		if item.Fitness <= 0 {
			return nil, fmt.Errorf("non-positive fitness %v for genome %s reached selection", item.Fitness, item.Genome.ID)
		}
		weights[i] = 1 / item.Fitness
	}
	floats.Scale(1/floats.Sum(weights), weights)

	for i := 0; i < s.SelectCount; i++ {
		pool = append(pool, ranked[weightedIndex(rng, weights)].Genome)
	}
	return pool, nil
}

// weightedIndex draws an index with probability proportional to weights,
// which are normalized to sum to 1.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return i
		}
	}
	return len(weights) - 1
}
