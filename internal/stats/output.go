package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"evosim/internal/model"

	"github.com/gocarina/gocsv"
)

// CSVWriter appends generation snapshots to a CSV file, header first. A
// nil writer is a no-op, so callers can leave output disabled.
type CSVWriter struct {
	file          *os.File
	headerWritten bool
}

// NewCSVWriter creates dir if needed and truncates generations.csv inside
// it. An empty dir disables output and returns a nil writer.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	return &CSVWriter{file: f}, nil
}

func (w *CSVWriter) Write(snapshot model.GenerationSnapshot) error {
	if w == nil {
		return nil
	}
	records := []model.GenerationSnapshot{snapshot}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func (w *CSVWriter) Close() error {
	if w == nil {
		return nil
	}
	return w.file.Close()
}
