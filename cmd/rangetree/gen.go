package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TrevorS/rangetree/internal/problem"
)

var (
	genOpts   problem.GenerateOptions
	genOutput string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random problem",
	Long: `Generate a random problem with integer coordinates. Points are drawn from
[0, max-coord) and queries from [0, max-coord]. The output file is compressed
when its name ends in .zst or .lz4.

Example:
  rangetree gen --dims 4 --points 5000 --queries 500 -o case.txt.zst
  rangetree gen --max-coord 5 --seed 7     # many duplicate coordinates`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&genOpts.Dims, "dims", 2, "Dimensionality k (>= 2)")
	genCmd.Flags().IntVar(&genOpts.Points, "points", 1000, "Number of points")
	genCmd.Flags().IntVar(&genOpts.Queries, "queries", 100, "Number of queries")
	genCmd.Flags().IntVar(&genOpts.MaxCoord, "max-coord", problem.DefaultMaxCoord, "Exclusive upper bound of point coordinates")
	genCmd.Flags().Int64Var(&genOpts.Seed, "seed", 1, "Random seed")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", problem.Stdio, "Output file (- for stdout)")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	p, err := problem.Generate(genOpts)
	if err != nil {
		return err
	}

	var out io.WriteCloser
	if genOutput == problem.Stdio {
		out = nopCloser{cmd.OutOrStdout()}
	} else if out, err = problem.Create(genOutput); err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := problem.Write(out, p); err != nil {
		out.Close()
		return fmt.Errorf("failed to write problem: %w", err)
	}
	return out.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
