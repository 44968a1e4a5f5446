package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"evosim/internal/model"
)

type MemoryStore struct {
	mu        sync.RWMutex
	runs      map[string]model.RunRecord
	snapshots map[string][]model.GenerationSnapshot
	best      map[string]model.ScoredGenome
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]model.RunRecord)
	s.snapshots = make(map[string][]model.GenerationSnapshot)
	s.best = make(map[string]model.ScoredGenome)
	return nil
}

func (s *MemoryStore) checkInit() error {
	if s.runs == nil {
		return errors.New("store is not initialized")
	}
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInit(); err != nil {
		return err
	}
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
	return runs, nil
}

func (s *MemoryStore) SaveSnapshots(_ context.Context, runID string, snapshots []model.GenerationSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInit(); err != nil {
		return err
	}
	copied := make([]model.GenerationSnapshot, len(snapshots))
	copy(copied, snapshots)
	s.snapshots[runID] = copied
	return nil
}

func (s *MemoryStore) GetSnapshots(_ context.Context, runID string) ([]model.GenerationSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots, ok := s.snapshots[runID]
	if !ok {
		return nil, false, nil
	}
	out := make([]model.GenerationSnapshot, len(snapshots))
	copy(out, snapshots)
	return out, true, nil
}

func (s *MemoryStore) SaveBestGenome(_ context.Context, runID string, best model.ScoredGenome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInit(); err != nil {
		return err
	}
	s.best[runID] = best
	return nil
}

func (s *MemoryStore) GetBestGenome(_ context.Context, runID string) (model.ScoredGenome, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best, ok := s.best[runID]
	return best, ok, nil
}
