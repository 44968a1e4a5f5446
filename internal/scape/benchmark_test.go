package scape

import (
	"context"
	"math"
	"testing"

	"evosim/internal/model"
)

func TestBenchmarkCostFunctionsAtKnownMinima(t *testing.T) {
	cases := []struct {
		name string
		cost CostFunc
		at   []float64
	}{
		{"sphere", Sphere, []float64{0, 0}},
		{"rosenbrock", Rosenbrock, []float64{1, 1}},
		{"rastrigin", Rastrigin, []float64{0, 0}},
	}
	for _, tc := range cases {
		if got := tc.cost(tc.at); math.Abs(got) > 1e-9 {
			t.Fatalf("%s at its minimum: got %v want 0", tc.name, got)
		}
	}
}

func TestRosenbrockAwayFromMinimum(t *testing.T) {
	if got := Rosenbrock([]float64{0, 0}); math.Abs(got-1) > 1e-9 {
		t.Fatalf("rosenbrock(0,0): got %v want 1", got)
	}
}

func TestBenchmarkScapeEvaluate(t *testing.T) {
	s, err := NewBenchmarkScape("benchmark:test-sphere", nil, Sphere)
	if err != nil {
		t.Fatalf("new scape: %v", err)
	}

	fitness, trace, err := s.Evaluate(context.Background(), model.Genome{ID: "g", Genes: []float64{3, 4}})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if math.Abs(fitness-25) > 1e-9 {
		t.Fatalf("fitness: got %v want 25", fitness)
	}
	if trace["cost"].(float64) != fitness {
		t.Fatalf("trace cost mismatch: %v", trace)
	}
}

func TestBenchmarkScapeRejectsNonFiniteCost(t *testing.T) {
	s, err := NewBenchmarkScape("benchmark:bad", nil, func([]float64) float64 {
		return math.NaN()
	})
	if err != nil {
		t.Fatalf("new scape: %v", err)
	}
	if _, _, err := s.Evaluate(context.Background(), model.Genome{ID: "g", Genes: []float64{0}}); err == nil {
		t.Fatal("expected error for NaN cost")
	}
}

func TestNewBenchmarkScapeValidation(t *testing.T) {
	if _, err := NewBenchmarkScape("", nil, Sphere); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := NewBenchmarkScape("x", nil, nil); err == nil {
		t.Fatal("expected error for nil cost function")
	}
}

func TestRegistryResolvesBuiltins(t *testing.T) {
	for _, name := range []string{"benchmark:sphere", "benchmark:rosenbrock", "benchmark:rastrigin"} {
		s, err := Resolve(name)
		if err != nil {
			t.Fatalf("resolve %s: %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("name mismatch: %s vs %s", s.Name(), name)
		}
	}
	if _, err := Resolve("benchmark:unknown"); err == nil {
		t.Fatal("expected error for unknown scape")
	}
	names := List()
	if len(names) < 3 {
		t.Fatalf("expected at least 3 registered scapes, got %v", names)
	}
}
