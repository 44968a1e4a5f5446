// Package genotype creates and transforms genomes.
package genotype

import (
	"fmt"
	"math/rand"

	"evosim/internal/model"
)

// NewRandom builds a genome with count genes drawn uniformly from
// [min, max).
func NewRandom(rng *rand.Rand, id string, count int, min, max float64) model.Genome {
	genes := make([]float64, count)
	for i := range genes {
		genes[i] = min + rng.Float64()*(max-min)
	}
	return model.Genome{ID: id, Genes: genes}
}

// Clone copies a genome under a new identity. The gene slice is copied so
// later transforms cannot alias the source.
func Clone(g model.Genome, id string) model.Genome {
	genes := make([]float64, len(g.Genes))
	copy(genes, g.Genes)
	return model.Genome{ID: id, Genes: genes}
}

// Decode maps a genome to the coordinate vector a benchmark cost function
// consumes. Genes are real-valued and decode directly.
func Decode(g model.Genome) []float64 {
	coords := make([]float64, len(g.Genes))
	copy(coords, g.Genes)
	return coords
}

// Validate checks the fixed-length invariant against an expected count.
func Validate(g model.Genome, count int) error {
	if len(g.Genes) != count {
		return fmt.Errorf("genome %s: gene count mismatch: got=%d want=%d", g.ID, len(g.Genes), count)
	}
	return nil
}
