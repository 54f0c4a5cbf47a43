package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/TrevorS/rangetree"
	"github.com/TrevorS/rangetree/internal/problem"
)

var (
	logLevel  string
	logFormat string
	leafSize  int
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "rangetree",
	Short: "Count dominated points with a kd range tree",
	Long: `rangetree builds a kd range tree over a batch of k-dimensional points and
answers dominance queries: for each query point, how many stored points are
<= it in every coordinate.

Input format (whitespace separated, .zst/.lz4 files are decompressed):
  k n
  n lines of k coordinates (the points)
  any number of lines of k coordinates (the queries)

Example usage:
  rangetree gen --dims 3 --points 1000 --queries 100 -o case.txt
  rangetree query case.txt             # one count per query
  rangetree query --verify case.txt    # cross-check against brute force
  rangetree stats case.txt             # shape of the built index`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().IntVar(&leafSize, "leaf-size", rangetree.DefaultLeafSize, "Largest node scanned by brute force")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Goroutines used to build the index (0 = number of CPUs)")
}

// newLogger builds the logger selected by --log-level and --log-format.
func newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", logLevel)
	}
	switch logFormat {
	case "text":
		return rangetree.NewTextLogger(w, level), nil
	case "json":
		return rangetree.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", logFormat)
	}
}

func treeConfig(logger *slog.Logger) rangetree.Config {
	cfg := rangetree.DefaultConfig()
	cfg.LeafSize = leafSize
	cfg.Workers = workers
	cfg.Logger = logger
	return cfg
}

// inputPath returns the file argument, or stdin when there is none.
func inputPath(args []string) string {
	if len(args) == 0 {
		return problem.Stdio
	}
	return args[0]
}
