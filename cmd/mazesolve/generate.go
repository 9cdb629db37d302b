package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/maze"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and write it out as a YAML scenario",
	}

	generateRows       = generateCmd.Flags().Int("rows", maze.DefaultRows, "Maze height")
	generateColumns    = generateCmd.Flags().Int("columns", maze.DefaultColumns, "Maze width")
	generateSparseness = generateCmd.Flags().Float64("sparseness", maze.DefaultSparseness, "Chance that a square is rock")
	generateSeed       = generateCmd.Flags().Int64("seed", 0, "Generator seed, 0 means the fixed default stream")
	generateOut        = generateCmd.Flags().StringP("out", "o", "", "Write the scenario to this path instead of stdout")
)

func init() {
	// RunE is wired here rather than in the literal: runGenerate reads the
	// flag variables, whose initializers refer back to generateCmd.
	generateCmd.RunE = runGenerate
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := maze.New(*generateRows, *generateColumns,
		maze.Location{}, maze.Location{Row: *generateRows - 1, Column: *generateColumns - 1},
		maze.WithSparseness(*generateSparseness), maze.WithSeed(*generateSeed))
	if err != nil {
		return err
	}

	if *generateOut == "" {
		data, err := maze.Encode(m)
		if err != nil {
			return err
		}
		fmt.Print(string(data))

		return nil
	}

	if err := maze.WriteFile(*generateOut, m); err != nil {
		return err
	}
	log.Info().
		Str("path", *generateOut).
		Int("rows", m.Rows()).
		Int("columns", m.Columns()).
		Msg("scenario written")

	return nil
}
