package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Run.Scape != "benchmark:rosenbrock" {
		t.Fatalf("unexpected default scape: %s", cfg.Run.Scape)
	}
	if cfg.Run.Population != 30 {
		t.Fatalf("unexpected default population: %d", cfg.Run.Population)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	overlay := []byte("run:\n  scape: \"benchmark:sphere\"\n  seed: 7\n")
	if err := os.WriteFile(path, overlay, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Run.Scape != "benchmark:sphere" || cfg.Run.Seed != 7 {
		t.Fatalf("overlay not applied: %+v", cfg.Run)
	}
	// Untouched fields keep their embedded defaults.
	if cfg.Run.Generations != 100 || cfg.Genetic.Crossover != "two_point" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Run.Scape != "benchmark:rosenbrock" {
		t.Fatalf("unexpected scape: %s", cfg.Run.Scape)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("run: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty scape", func(c *Config) { c.Run.Scape = "" }},
		{"zero generations", func(c *Config) { c.Run.Generations = 0 }},
		{"zero population", func(c *Config) { c.Run.Population = 0 }},
		{"negative workers", func(c *Config) { c.Run.Workers = -1 }},
		{"elitism above one", func(c *Config) { c.Genetic.ElitismPercentage = 1.5 }},
		{"negative select", func(c *Config) { c.Genetic.SelectPercentage = -0.1 }},
		{"percentages exceed population", func(c *Config) {
			c.Genetic.ElitismPercentage = 0.4
			c.Genetic.SelectPercentage = 0.4
			c.Genetic.CrossoverMutationPercentage = 0.4
		}},
		{"negative sigma", func(c *Config) { c.Genetic.MutationSigma = -1 }},
		{"empty crossover", func(c *Config) { c.Genetic.Crossover = "" }},
		{"empty mutation", func(c *Config) { c.Genetic.Mutation = "" }},
		{"zero gene count", func(c *Config) { c.Genetic.GeneCount = 0 }},
		{"inverted gene bounds", func(c *Config) { c.Genetic.GeneMin = 5; c.Genetic.GeneMax = -5 }},
		{"zero room width", func(c *Config) { c.Robot.Width = 0 }},
		{"zero radius", func(c *Config) { c.Robot.Radius = 0 }},
		{"zero steps", func(c *Config) { c.Robot.Steps = 0 }},
		{"zero max speed", func(c *Config) { c.Robot.MaxSpeed = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Default()
			if err != nil {
				t.Fatalf("default: %v", err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDerivedCounts(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	// Population 30 with 0.1 / 0.3 / 0.5.
	if got := cfg.EliteCount(); got != 3 {
		t.Fatalf("elite count = %d, want 3", got)
	}
	if got := cfg.SelectCount(); got != 9 {
		t.Fatalf("select count = %d, want 9", got)
	}
	if got := cfg.ChildCount(); got != 15 {
		t.Fatalf("child count = %d, want 15", got)
	}

	// Fractional products: elitism rounds up, the others round down.
	cfg.Run.Population = 25
	if got := cfg.EliteCount(); got != 3 {
		t.Fatalf("elite count = %d, want ceil(2.5) = 3", got)
	}
	if got := cfg.SelectCount(); got != 7 {
		t.Fatalf("select count = %d, want floor(7.5) = 7", got)
	}
	if got := cfg.ChildCount(); got != 12 {
		t.Fatalf("child count = %d, want floor(12.5) = 12", got)
	}
}
