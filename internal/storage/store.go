// Package storage persists run records, generation statistics, and best
// genomes across backends.
package storage

import (
	"context"

	"evosim/internal/model"
)

// Store defines the persistence operations for run artifacts.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SaveSnapshots(ctx context.Context, runID string, snapshots []model.GenerationSnapshot) error
	GetSnapshots(ctx context.Context, runID string) ([]model.GenerationSnapshot, bool, error)
	SaveBestGenome(ctx context.Context, runID string, best model.ScoredGenome) error
	GetBestGenome(ctx context.Context, runID string) (model.ScoredGenome, bool, error)
}
