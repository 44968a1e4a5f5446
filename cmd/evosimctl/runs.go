package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"evosim/internal/config"
	"evosim/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored runs and their best genomes",
	Long: `Lists the runs recorded in the configured storage backend. Only a
persistent backend such as sqlite carries runs across processes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("store") {
			cfg.Storage.Backend = flagStore
		}
		if cmd.Flags().Changed("db") {
			cfg.Storage.SQLitePath = flagDB
		}

		ctx := cmd.Context()
		store, err := storage.NewStore(cfg.Storage.Backend, cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		if err := store.Init(ctx); err != nil {
			return err
		}
		defer storage.CloseIfSupported(store)

		runs, err := store.ListRuns(ctx)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}
		for _, run := range runs {
			status := "completed"
			if run.Stopped {
				status = "stopped"
			}
			fmt.Printf("%s  scape=%s seed=%d generations=%d/%d population=%d %s\n",
				run.ID, run.ScapeName, run.Seed, run.Completed, run.Generations,
				run.PopulationSize, status)
			if best, ok, err := store.GetBestGenome(ctx, run.ID); err == nil && ok {
				fmt.Printf("    best %s: cost %.6g\n", best.Genome.ID, best.Fitness)
			}
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&flagStore, "store", "", "storage backend: memory or sqlite")
	runsCmd.Flags().StringVar(&flagDB, "db", "", "sqlite database path")
	rootCmd.AddCommand(runsCmd)
}
