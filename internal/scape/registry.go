package scape

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrScapeExists   = errors.New("scape already registered")
	ErrScapeNotFound = errors.New("scape not found")
)

var scapeRegistry = struct {
	mu sync.RWMutex
	m  map[string]Scape
}{
	m: make(map[string]Scape),
}

func Register(name string, s Scape) error {
	if name == "" {
		return errors.New("scape name is required")
	}
	if s == nil {
		return errors.New("scape is required")
	}

	scapeRegistry.mu.Lock()
	defer scapeRegistry.mu.Unlock()

	if _, exists := scapeRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrScapeExists, name)
	}
	scapeRegistry.m[name] = s
	return nil
}

func Resolve(name string) (Scape, error) {
	scapeRegistry.mu.RLock()
	defer scapeRegistry.mu.RUnlock()

	s, ok := scapeRegistry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScapeNotFound, name)
	}
	return s, nil
}

func List() []string {
	scapeRegistry.mu.RLock()
	defer scapeRegistry.mu.RUnlock()

	names := make([]string, 0, len(scapeRegistry.m))
	for name := range scapeRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for name, cost := range map[string]CostFunc{
		"benchmark:sphere":     Sphere,
		"benchmark:rosenbrock": Rosenbrock,
		"benchmark:rastrigin":  Rastrigin,
	} {
		s, err := NewBenchmarkScape(name, nil, cost)
		if err != nil {
			panic(err)
		}
		if err := Register(name, s); err != nil {
			panic(err)
		}
	}
}
