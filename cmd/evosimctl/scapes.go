package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"evosim/internal/evo"
	"evosim/internal/scape"
	"evosim/internal/world"
)

var scapesCmd = &cobra.Command{
	Use:   "scapes",
	Short: "List registered fitness environments and operators",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scapes:")
		for _, name := range scape.List() {
			fmt.Printf("  %s\n", name)
		}
		for _, layout := range world.Layouts() {
			fmt.Printf("  robot:%s\n", layout)
		}
		fmt.Println("crossover operators:")
		for _, name := range evo.ListCrossovers() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("mutation operators:")
		for _, name := range evo.ListMutations() {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(scapesCmd)
}
