// Package stats aggregates per-generation fitness statistics and exports
// them for external recording sinks.
package stats

import (
	"sort"

	"evosim/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reduces an evaluated population to one snapshot. Diversity is
// the mean absolute difference between consecutive fitness values in
// sorted order, a population-spread indicator.
func Summarize(generation int, scored []model.ScoredGenome) model.GenerationSnapshot {
	if len(scored) == 0 {
		return model.GenerationSnapshot{Generation: generation}
	}

	fitness := make([]float64, len(scored))
	for i, item := range scored {
		fitness[i] = item.Fitness
	}

	snapshot := model.GenerationSnapshot{
		Generation:  generation,
		AvgFitness:  stat.Mean(fitness, nil),
		BestFitness: floats.Min(fitness),
		Evaluations: len(scored),
	}

	if len(fitness) > 1 {
		sort.Float64s(fitness)
		total := 0.0
		for i := 1; i < len(fitness); i++ {
			total += fitness[i] - fitness[i-1]
		}
		snapshot.Diversity = total / float64(len(fitness)-1)
	}
	return snapshot
}
