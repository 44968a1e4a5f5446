// Package model holds the plain serializable types shared across the
// evolutionary loop, fitness strategies, statistics, and storage.
package model

// MinFitness is the clamp applied to an exactly-zero cost before selection.
// Reciprocal weighting is undefined at zero; this is the one documented
// exception to fail-fast precondition handling.
const MinFitness = 1e-8

// Genome is one candidate solution before evaluation: an ordered,
// fixed-length sequence of real-valued genes. Genomes are value-like; two
// genomes with identical genes are interchangeable.
type Genome struct {
	ID    string    `json:"id"`
	Genes []float64 `json:"genes"`
}

// ScoredGenome is the evaluated phase of a genome. Fitness is a cost:
// lower is better, and it is strictly positive by the time selection runs.
type ScoredGenome struct {
	Genome  Genome  `json:"genome"`
	Fitness float64 `json:"fitness"`
}

// Population is the full set of genomes for one generation. It is
// superseded, not mutated, each generation.
type Population struct {
	ID         string   `json:"id"`
	Generation int      `json:"generation"`
	Members    []Genome `json:"members"`
}

// GenerationSnapshot is the per-generation aggregate pushed to the
// recording sink. Diversity is the mean absolute difference between
// consecutive sorted fitness values.
type GenerationSnapshot struct {
	Generation  int     `json:"generation" csv:"generation"`
	AvgFitness  float64 `json:"avg_fitness" csv:"avg_fitness"`
	BestFitness float64 `json:"best_fitness" csv:"best_fitness"`
	Diversity   float64 `json:"diversity" csv:"diversity"`
	Evaluations int     `json:"evaluations" csv:"evaluations"`
}

// RunRecord identifies one completed (or stopped) run for persistence.
type RunRecord struct {
	ID             string `json:"id"`
	ScapeName      string `json:"scape_name"`
	Seed           int64  `json:"seed"`
	Generations    int    `json:"generations"`
	PopulationSize int    `json:"population_size"`
	Completed      int    `json:"completed"`
	Stopped        bool   `json:"stopped"`
}
