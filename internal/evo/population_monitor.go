package evo

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"evosim/internal/genotype"
	"evosim/internal/model"
	"evosim/internal/scape"
	"evosim/internal/stats"
)

// SnapshotFunc receives one generation's aggregate statistics. It is
// invoked synchronously, at most once per generation, and must treat the
// snapshot as read-only.
type SnapshotFunc func(model.GenerationSnapshot)

type MonitorConfig struct {
	Scape     scape.Scape
	Selector  Selector
	Crossover CrossoverOperator
	Mutation  MutationOperator

	PopulationSize int
	Generations    int
	// ChildCount is how many crossover+mutation offspring are appended
	// to the seed pool each generation; the rest of the population is
	// refilled with random immigrants.
	ChildCount int

	GeneCount int
	GeneMin   float64
	GeneMax   float64

	Workers int
	Seed    int64

	Snapshot SnapshotFunc
}

// RunResult carries the statistics and final state of the generations that
// actually completed.
type RunResult struct {
	Snapshots []model.GenerationSnapshot
	Final     []model.ScoredGenome
	Best      model.ScoredGenome
	Completed int
	Stopped   bool
}

// PopulationMonitor owns the current population and drives one run:
// evaluate, record, select, vary, refill, repeat. All stochastic draws go
// through a single seeded source on the driver goroutine, so a fixed seed
// reproduces every statistic.
type PopulationMonitor struct {
	cfg  MonitorConfig
	rng  *rand.Rand
	stop atomic.Bool
}

func NewPopulationMonitor(cfg MonitorConfig) (*PopulationMonitor, error) {
	if cfg.Scape == nil {
		return nil, fmt.Errorf("scape is required")
	}
	if cfg.Selector == nil {
		return nil, fmt.Errorf("selector is required")
	}
	if cfg.Crossover == nil {
		return nil, fmt.Errorf("crossover operator is required")
	}
	if cfg.Mutation == nil {
		return nil, fmt.Errorf("mutation operator is required")
	}
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be > 0")
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be > 0")
	}
	if cfg.ChildCount < 0 {
		return nil, fmt.Errorf("child count must be >= 0")
	}
	if cfg.GeneCount <= 0 {
		return nil, fmt.Errorf("gene count must be > 0")
	}
	if cfg.GeneMax <= cfg.GeneMin {
		return nil, fmt.Errorf("gene bounds are inverted: [%v, %v]", cfg.GeneMin, cfg.GeneMax)
	}
	if total := cfg.Selector.PoolSize() + cfg.ChildCount; total > cfg.PopulationSize {
		return nil, fmt.Errorf("seed pool plus offspring exceed population size: %d > %d", total, cfg.PopulationSize)
	}
	if cfg.ChildCount > 0 && cfg.Selector.PoolSize() == 0 {
		return nil, fmt.Errorf("offspring require parents: child count %d with an empty seed pool", cfg.ChildCount)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &PopulationMonitor{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Stop requests termination at the next generation boundary. It is safe to
// call from any goroutine; the in-flight generation still completes.
func (m *PopulationMonitor) Stop() {
	m.stop.Store(true)
}

// SeedPopulation draws the initial random population from the monitor's
// own source, keeping the whole run reproducible from one seed.
func (m *PopulationMonitor) SeedPopulation() []model.Genome {
	members := make([]model.Genome, m.cfg.PopulationSize)
	for i := range members {
		members[i] = genotype.NewRandom(m.rng, fmt.Sprintf("seed-%d", i), m.cfg.GeneCount, m.cfg.GeneMin, m.cfg.GeneMax)
	}
	return members
}

func (m *PopulationMonitor) Run(ctx context.Context, initial []model.Genome) (RunResult, error) {
	if len(initial) != m.cfg.PopulationSize {
		return RunResult{}, fmt.Errorf("initial population mismatch: got=%d want=%d", len(initial), m.cfg.PopulationSize)
	}
	for _, g := range initial {
		if err := genotype.Validate(g, m.cfg.GeneCount); err != nil {
			return RunResult{}, err
		}
	}

	population := make([]model.Genome, len(initial))
	copy(population, initial)

	result := RunResult{
		Snapshots: make([]model.GenerationSnapshot, 0, m.cfg.Generations),
	}

	for gen := 0; gen < m.cfg.Generations; gen++ {
		if m.stop.Load() {
			result.Stopped = true
			break
		}
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}

		scored, err := m.evaluatePopulation(ctx, population)
		if err != nil {
			return RunResult{}, err
		}

		snapshot := stats.Summarize(gen+1, scored)
		result.Snapshots = append(result.Snapshots, snapshot)
		if m.cfg.Snapshot != nil {
			m.cfg.Snapshot(snapshot)
		}

		result.Final = scored
		result.Completed = gen + 1
		for _, item := range scored {
			if result.Best.Genome.ID == "" || item.Fitness < result.Best.Fitness {
				result.Best = item
			}
		}

		population, err = m.nextGeneration(scored, gen)
		if err != nil {
			return RunResult{}, err
		}
	}

	return result, nil
}

// nextGeneration builds the successor population: seed pool from the
// selector, crossover+mutation offspring, then random immigrants up to the
// exact population size.
func (m *PopulationMonitor) nextGeneration(scored []model.ScoredGenome, generation int) ([]model.Genome, error) {
	pool, err := m.cfg.Selector.Select(m.rng, scored)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m.cfg.ChildCount; i++ {
		a := pool[m.rng.Intn(len(pool))]
		b := pool[m.rng.Intn(len(pool))]
		child := m.cfg.Crossover.Apply(m.rng, a, b)
		child = m.cfg.Mutation.Apply(m.rng, child)
		child.ID = fmt.Sprintf("g%d-c%d", generation+1, i)
		pool = append(pool, child)
	}

	if len(pool) > m.cfg.PopulationSize {
		return nil, fmt.Errorf("seed pool overflow: %d > %d", len(pool), m.cfg.PopulationSize)
	}
	for i := 0; len(pool) < m.cfg.PopulationSize; i++ {
		pool = append(pool, genotype.NewRandom(m.rng, fmt.Sprintf("g%d-r%d", generation+1, i), m.cfg.GeneCount, m.cfg.GeneMin, m.cfg.GeneMax))
	}
	return pool, nil
}

// evaluatePopulation scores every genome, fanning out across workers and
// reassembling results in original index order so selection's tie-breaking
// stays deterministic. An exactly-zero cost is clamped to model.MinFitness
// to keep reciprocal weighting defined; negative costs are a precondition
// violation.
func (m *PopulationMonitor) evaluatePopulation(ctx context.Context, population []model.Genome) ([]model.ScoredGenome, error) {
	type job struct {
		idx    int
		genome model.Genome
	}
	type result struct {
		idx    int
		scored model.ScoredGenome
		err    error
	}

	jobs := make(chan job)
	results := make(chan result, len(population))

	workerCount := m.cfg.Workers
	if workerCount > len(population) {
		workerCount = len(population)
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results <- result{idx: j.idx, err: err}
					continue
				}

				fitness, _, err := m.cfg.Scape.Evaluate(ctx, j.genome)
				if err != nil {
					results <- result{idx: j.idx, err: err}
					continue
				}
				if fitness < 0 {
					results <- result{idx: j.idx, err: fmt.Errorf("scape %s returned negative cost %v for genome %s", m.cfg.Scape.Name(), fitness, j.genome.ID)}
					continue
				}
				if fitness == 0 {
					fitness = model.MinFitness
				}
				results <- result{idx: j.idx, scored: model.ScoredGenome{Genome: j.genome, Fitness: fitness}}
			}
		}()
	}

	for i := range population {
		jobs <- job{idx: i, genome: population[i]}
	}
	close(jobs)

	wg.Wait()
	close(results)

	scored := make([]model.ScoredGenome, len(population))
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		scored[res.idx] = res.scored
	}
	return scored, nil
}
