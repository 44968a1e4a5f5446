package evo

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrOperatorExists   = errors.New("operator already registered")
	ErrOperatorNotFound = errors.New("operator not found")
)

// Crossover and mutation strategies are resolved by configured name so the
// active pair is a configuration choice, not a hardwired one.

var crossoverRegistry = struct {
	mu sync.RWMutex
	m  map[string]func() CrossoverOperator
}{
	m: make(map[string]func() CrossoverOperator),
}

var mutationRegistry = struct {
	mu sync.RWMutex
	m  map[string]func(probability, sigma, min, max float64) MutationOperator
}{
	m: make(map[string]func(probability, sigma, min, max float64) MutationOperator),
}

func RegisterCrossover(name string, factory func() CrossoverOperator) error {
	if name == "" || factory == nil {
		return errors.New("crossover name and factory are required")
	}

	crossoverRegistry.mu.Lock()
	defer crossoverRegistry.mu.Unlock()

	if _, exists := crossoverRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrOperatorExists, name)
	}
	crossoverRegistry.m[name] = factory
	return nil
}

func ResolveCrossover(name string) (CrossoverOperator, error) {
	crossoverRegistry.mu.RLock()
	defer crossoverRegistry.mu.RUnlock()

	factory, ok := crossoverRegistry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: crossover %s", ErrOperatorNotFound, name)
	}
	return factory(), nil
}

func ListCrossovers() []string {
	crossoverRegistry.mu.RLock()
	defer crossoverRegistry.mu.RUnlock()

	names := make([]string, 0, len(crossoverRegistry.m))
	for name := range crossoverRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func RegisterMutation(name string, factory func(probability, sigma, min, max float64) MutationOperator) error {
	if name == "" || factory == nil {
		return errors.New("mutation name and factory are required")
	}

	mutationRegistry.mu.Lock()
	defer mutationRegistry.mu.Unlock()

	if _, exists := mutationRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrOperatorExists, name)
	}
	mutationRegistry.m[name] = factory
	return nil
}

func ResolveMutation(name string, probability, sigma, min, max float64) (MutationOperator, error) {
	mutationRegistry.mu.RLock()
	defer mutationRegistry.mu.RUnlock()

	factory, ok := mutationRegistry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: mutation %s", ErrOperatorNotFound, name)
	}
	return factory(probability, sigma, min, max), nil
}

func ListMutations() []string {
	mutationRegistry.mu.RLock()
	defer mutationRegistry.mu.RUnlock()

	names := make([]string, 0, len(mutationRegistry.m))
	for name := range mutationRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(RegisterCrossover("two_point", func() CrossoverOperator { return TwoPointCrossover{} }))
	must(RegisterCrossover("uniform", func() CrossoverOperator { return UniformCrossover{} }))
	must(RegisterMutation("gaussian", func(probability, sigma, _, _ float64) MutationOperator {
		return GaussianMutation{Probability: probability, Sigma: sigma}
	}))
	must(RegisterMutation("reset", func(probability, _, min, max float64) MutationOperator {
		return ResetMutation{Probability: probability, Min: min, Max: max}
	}))
}
