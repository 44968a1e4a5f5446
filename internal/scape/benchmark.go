package scape

import (
	"context"
	"fmt"
	"math"

	"evosim/internal/genotype"
	"evosim/internal/model"
)

// CostFunc is an opaque benchmark function: coordinates in, cost out,
// lower is better.
type CostFunc func(coords []float64) float64

// DecodeFunc maps a genome to the coordinates a cost function consumes.
type DecodeFunc func(genome model.Genome) []float64

// BenchmarkScape scores genomes against a mathematical cost function.
type BenchmarkScape struct {
	name   string
	decode DecodeFunc
	cost   CostFunc
}

func NewBenchmarkScape(name string, decode DecodeFunc, cost CostFunc) (*BenchmarkScape, error) {
	if name == "" {
		return nil, fmt.Errorf("benchmark scape name is required")
	}
	if cost == nil {
		return nil, fmt.Errorf("cost function is required")
	}
	if decode == nil {
		decode = genotype.Decode
	}
	return &BenchmarkScape{name: name, decode: decode, cost: cost}, nil
}

func (s *BenchmarkScape) Name() string {
	return s.name
}

func (s *BenchmarkScape) Evaluate(ctx context.Context, genome model.Genome) (float64, Trace, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	coords := s.decode(genome)
	cost := s.cost(coords)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, nil, fmt.Errorf("benchmark %s: non-finite cost for genome %s", s.name, genome.ID)
	}
	return cost, Trace{"coords": coords, "cost": cost}, nil
}

// Sphere has its global minimum 0 at the origin.
func Sphere(x []float64) float64 {
	total := 0.0
	for _, v := range x {
		total += v * v
	}
	return total
}

// Rosenbrock has its global minimum 0 at (1, ..., 1).
func Rosenbrock(x []float64) float64 {
	total := 0.0
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		total += 100*a*a + b*b
	}
	return total
}

// Rastrigin has its global minimum 0 at the origin.
func Rastrigin(x []float64) float64 {
	total := 10 * float64(len(x))
	for _, v := range x {
		total += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return total
}
