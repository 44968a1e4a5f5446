// Package config loads and validates run configuration.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds everything one run needs. Fields are loaded from YAML on
// top of the embedded defaults.
type Config struct {
	Run     RunConfig     `yaml:"run"`
	Genetic GeneticConfig `yaml:"genetic"`
	Robot   RobotConfig   `yaml:"robot"`
	Storage StorageConfig `yaml:"storage"`
	Output  OutputConfig  `yaml:"output"`
}

// RunConfig selects the fitness strategy and loop dimensions.
type RunConfig struct {
	Scape       string `yaml:"scape"`
	Generations int    `yaml:"generations"`
	Population  int    `yaml:"population"`
	Workers     int    `yaml:"workers"`
	Seed        int64  `yaml:"seed"`
}

// GeneticConfig holds the variation parameters. The three percentages are
// fractions of the population size and together must not exceed 1; any
// shortfall is refilled with random immigrants.
type GeneticConfig struct {
	ElitismPercentage           float64 `yaml:"elitism_percentage"`
	SelectPercentage            float64 `yaml:"select_percentage"`
	CrossoverMutationPercentage float64 `yaml:"crossover_mutation_percentage"`
	MutationProbability         float64 `yaml:"mutation_probability"`
	MutationSigma               float64 `yaml:"mutation_sigma"`
	Crossover                   string  `yaml:"crossover"`
	Mutation                    string  `yaml:"mutation"`
	GeneCount                   int     `yaml:"gene_count"`
	GeneMin                     float64 `yaml:"gene_min"`
	GeneMax                     float64 `yaml:"gene_max"`
}

// RobotConfig parameterizes the robot simulation scape.
type RobotConfig struct {
	Room             string  `yaml:"room"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Radius           float64 `yaml:"radius"`
	Steps            int     `yaml:"steps"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MaxTurn          float64 `yaml:"max_turn"`
	CollisionPenalty float64 `yaml:"collision_penalty"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load reads path on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate fails fast on precondition violations instead of clamping.
func (c *Config) Validate() error {
	if c.Run.Scape == "" {
		return fmt.Errorf("run.scape is required")
	}
	if c.Run.Generations <= 0 {
		return fmt.Errorf("run.generations must be > 0")
	}
	if c.Run.Population <= 0 {
		return fmt.Errorf("run.population must be > 0")
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("run.workers must be >= 0")
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"genetic.elitism_percentage", c.Genetic.ElitismPercentage},
		{"genetic.select_percentage", c.Genetic.SelectPercentage},
		{"genetic.crossover_mutation_percentage", c.Genetic.CrossoverMutationPercentage},
		{"genetic.mutation_probability", c.Genetic.MutationProbability},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be a fraction in [0, 1], got %v", p.name, p.value)
		}
	}
	if sum := c.Genetic.ElitismPercentage + c.Genetic.SelectPercentage + c.Genetic.CrossoverMutationPercentage; sum > 1 {
		return fmt.Errorf("elitism, select, and crossover-mutation percentages sum to %v; the pool would exceed the population before refill", sum)
	}
	if c.Genetic.MutationSigma < 0 {
		return fmt.Errorf("genetic.mutation_sigma must be >= 0")
	}
	if c.Genetic.Crossover == "" {
		return fmt.Errorf("genetic.crossover strategy is required")
	}
	if c.Genetic.Mutation == "" {
		return fmt.Errorf("genetic.mutation strategy is required")
	}
	if c.Genetic.GeneCount <= 0 {
		return fmt.Errorf("genetic.gene_count must be > 0")
	}
	if c.Genetic.GeneMax <= c.Genetic.GeneMin {
		return fmt.Errorf("genetic gene bounds are inverted: [%v, %v]", c.Genetic.GeneMin, c.Genetic.GeneMax)
	}

	if c.Robot.Width <= 0 || c.Robot.Height <= 0 {
		return fmt.Errorf("robot room dimensions must be > 0")
	}
	if c.Robot.Radius <= 0 {
		return fmt.Errorf("robot.radius must be > 0")
	}
	if c.Robot.Steps <= 0 {
		return fmt.Errorf("robot.steps must be > 0")
	}
	if c.Robot.MaxSpeed <= 0 {
		return fmt.Errorf("robot.max_speed must be > 0")
	}
	return nil
}

// countEpsilon keeps binary rounding of exact decimal products (for
// example 30 * 0.3) from shifting a derived count by one.
const countEpsilon = 1e-9

// EliteCount is the ceiling of population times elitism percentage.
func (c *Config) EliteCount() int {
	return int(math.Ceil(float64(c.Run.Population)*c.Genetic.ElitismPercentage - countEpsilon))
}

// SelectCount is the floor of population times select percentage.
func (c *Config) SelectCount() int {
	return int(float64(c.Run.Population)*c.Genetic.SelectPercentage + countEpsilon)
}

// ChildCount is the floor of population times crossover-mutation
// percentage.
func (c *Config) ChildCount() int {
	return int(float64(c.Run.Population)*c.Genetic.CrossoverMutationPercentage + countEpsilon)
}
