package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TrevorS/rangetree/internal/problem"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Build the index and print its shape",
	Long: `Build the index over the points of a problem and print its size and shape.
Queries in the input are ignored.

Example:
  rangetree stats --leaf-size 4 case.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in, err := problem.Open(inputPath(args))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	tree, _, err := loadTree(problem.NewReader(in), logger)
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	st := tree.Stats()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "dims\t%d\n", st.Dims)
	fmt.Fprintf(tw, "points\t%d\n", st.Points)
	fmt.Fprintf(tw, "leaf size\t%d\n", st.LeafSize)
	fmt.Fprintf(tw, "structures\t%d\n", st.Structures)
	fmt.Fprintf(tw, "nodes\t%d\n", st.Nodes)
	fmt.Fprintf(tw, "leaves\t%d\n", st.Leaves)
	fmt.Fprintf(tw, "cascade entries\t%d\n", st.CascadeEntries)
	fmt.Fprintf(tw, "height\t%d\n", st.Height)
	fmt.Fprintf(tw, "max height\t%d\n", st.MaxHeight)
	return tw.Flush()
}
