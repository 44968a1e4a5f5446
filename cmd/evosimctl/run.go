package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"evosim/internal/config"
	"evosim/internal/evo"
	"evosim/internal/model"
	"evosim/internal/scape"
	"evosim/internal/stats"
	"evosim/internal/storage"
	"evosim/internal/world"
)

var (
	flagScape       string
	flagGenerations int
	flagPopulation  int
	flagSeed        int64
	flagOut         string
	flagStore       string
	flagDB          string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one evolutionary optimization",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runOnce(cmd.Context(), cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&flagScape, "scape", "", "fitness environment, e.g. benchmark:sphere or robot:default")
	runCmd.Flags().IntVar(&flagGenerations, "generations", 0, "number of generations")
	runCmd.Flags().IntVar(&flagPopulation, "population", 0, "population size")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed; a fixed seed reproduces the run")
	runCmd.Flags().StringVar(&flagOut, "out", "", "directory for generations.csv; empty disables CSV output")
	runCmd.Flags().StringVar(&flagStore, "store", "", "storage backend: memory or sqlite")
	runCmd.Flags().StringVar(&flagDB, "db", "", "sqlite database path")
	rootCmd.AddCommand(runCmd)
}

// applyOverrides layers explicitly-set flags on top of the loaded config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("scape") {
		cfg.Run.Scape = flagScape
	}
	if cmd.Flags().Changed("generations") {
		cfg.Run.Generations = flagGenerations
	}
	if cmd.Flags().Changed("population") {
		cfg.Run.Population = flagPopulation
	}
	if cmd.Flags().Changed("seed") {
		cfg.Run.Seed = flagSeed
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = flagOut
	}
	if cmd.Flags().Changed("store") {
		cfg.Storage.Backend = flagStore
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.SQLitePath = flagDB
	}
}

func runOnce(ctx context.Context, cfg *config.Config) error {
	env, err := buildScape(cfg)
	if err != nil {
		return err
	}

	crossover, err := evo.ResolveCrossover(cfg.Genetic.Crossover)
	if err != nil {
		return err
	}
	mutation, err := evo.ResolveMutation(cfg.Genetic.Mutation,
		cfg.Genetic.MutationProbability, cfg.Genetic.MutationSigma,
		cfg.Genetic.GeneMin, cfg.Genetic.GeneMax)
	if err != nil {
		return err
	}

	csv, err := stats.NewCSVWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer csv.Close()

	monitor, err := evo.NewPopulationMonitor(evo.MonitorConfig{
		Scape: env,
		Selector: evo.RouletteSelector{
			EliteCount:  cfg.EliteCount(),
			SelectCount: cfg.SelectCount(),
		},
		Crossover:      crossover,
		Mutation:       mutation,
		PopulationSize: cfg.Run.Population,
		Generations:    cfg.Run.Generations,
		ChildCount:     cfg.ChildCount(),
		GeneCount:      cfg.Genetic.GeneCount,
		GeneMin:        cfg.Genetic.GeneMin,
		GeneMax:        cfg.Genetic.GeneMax,
		Workers:        cfg.Run.Workers,
		Seed:           cfg.Run.Seed,
		Snapshot: func(s model.GenerationSnapshot) {
			if err := csv.Write(s); err != nil {
				slog.Warn("csv write failed", "generation", s.Generation, "error", err)
			}
			slog.Debug("generation complete",
				"generation", s.Generation,
				"avg", s.AvgFitness,
				"best", s.BestFitness,
				"diversity", s.Diversity)
		},
	})
	if err != nil {
		return err
	}

	// SIGINT finishes the in-flight generation, then stops at the next
	// boundary so statistics and storage stay consistent.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			slog.Info("stop requested, finishing current generation")
			monitor.Stop()
			if stopper, ok := env.(scape.Stopper); ok {
				stopper.Stop()
			}
		case <-ctx.Done():
		}
	}()

	runID := uuid.NewString()
	slog.Info("starting run",
		"run_id", runID,
		"scape", env.Name(),
		"generations", cfg.Run.Generations,
		"population", cfg.Run.Population,
		"workers", cfg.Run.Workers,
		"seed", cfg.Run.Seed)

	started := time.Now()
	result, err := monitor.Run(ctx, monitor.SeedPopulation())
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	if err := persistRun(ctx, cfg, runID, env.Name(), result); err != nil {
		return err
	}

	evaluations := int64(result.Completed) * int64(cfg.Run.Population)
	fmt.Printf("run %s: %d/%d generations, %s evaluations in %s\n",
		runID, result.Completed, cfg.Run.Generations,
		humanize.Comma(evaluations), elapsed.Round(time.Millisecond))
	if result.Stopped {
		fmt.Println("stopped early by request")
	}
	if result.Completed > 0 {
		fmt.Printf("best genome %s: cost %.6g, genes %v\n",
			result.Best.Genome.ID, result.Best.Fitness, result.Best.Genome.Genes)
	}
	return nil
}

// buildScape resolves benchmark scapes from the registry and constructs
// robot scapes from the config's room parameters.
func buildScape(cfg *config.Config) (scape.Scape, error) {
	name := cfg.Run.Scape
	if name == "robot" {
		name = "robot:" + cfg.Robot.Room
	}
	if layout, ok := strings.CutPrefix(name, "robot:"); ok {
		room, err := world.BuildRoom(layout, cfg.Robot.Width, cfg.Robot.Height, cfg.Robot.Radius)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(cfg.Run.Seed))
		return scape.NewRobotScape(scape.RobotConfig{
			Room:             room,
			Radius:           cfg.Robot.Radius,
			Steps:            cfg.Robot.Steps,
			MaxSpeed:         cfg.Robot.MaxSpeed,
			MaxTurn:          cfg.Robot.MaxTurn,
			Start:            room.RandomStart(rng, cfg.Robot.Radius),
			CollisionPenalty: cfg.Robot.CollisionPenalty,
		})
	}
	return scape.Resolve(name)
}

func persistRun(ctx context.Context, cfg *config.Config, runID, scapeName string, result evo.RunResult) error {
	store, err := storage.NewStore(cfg.Storage.Backend, cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer storage.CloseIfSupported(store)

	record := model.RunRecord{
		ID:             runID,
		ScapeName:      scapeName,
		Seed:           cfg.Run.Seed,
		Generations:    cfg.Run.Generations,
		PopulationSize: cfg.Run.Population,
		Completed:      result.Completed,
		Stopped:        result.Stopped,
	}
	if err := store.SaveRun(ctx, record); err != nil {
		return fmt.Errorf("saving run record: %w", err)
	}
	if err := store.SaveSnapshots(ctx, runID, result.Snapshots); err != nil {
		return fmt.Errorf("saving snapshots: %w", err)
	}
	if result.Completed > 0 {
		if err := store.SaveBestGenome(ctx, runID, result.Best); err != nil {
			return fmt.Errorf("saving best genome: %w", err)
		}
	}
	return nil
}
