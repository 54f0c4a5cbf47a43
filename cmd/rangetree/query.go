package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/TrevorS/rangetree"
	"github.com/TrevorS/rangetree/internal/problem"
)

var (
	verify          bool
	report          bool
	checkInvariants bool
)

var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Answer the queries of a problem file",
	Long: `Build the index over the points of a problem and print, for each query in
input order, the number of points it dominates. Reads stdin when no file is
given.

With --report each line is "count: i j k ...", listing the 0-based input
positions of the dominated points.

Example:
  rangetree query case.txt
  rangetree gen --points 100000 | rangetree query --workers 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&verify, "verify", false, "Check every answer against a brute-force scan")
	queryCmd.Flags().BoolVar(&report, "report", false, "Also print the indices of the dominated points")
	queryCmd.Flags().BoolVar(&checkInvariants, "check-invariants", false, "Validate the index structure after building it")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in, err := problem.Open(inputPath(args))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	r := problem.NewReader(in)
	tree, points, err := loadTree(r, logger)
	if err != nil {
		return err
	}

	var oracle *rangetree.BruteForce
	if verify {
		if oracle, err = rangetree.NewBruteForce(points); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	start := time.Now()
	var q []float64
	var line []byte
	answered := 0
	for {
		q, err = r.ReadQuery(q)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("query %d: %w", answered, err)
		}

		n, ids, err := answer(tree, q)
		if err != nil {
			return fmt.Errorf("query %d: %w", answered, err)
		}
		if oracle != nil {
			if err := crossCheck(oracle, q, n, ids); err != nil {
				return fmt.Errorf("query %d: %w", answered, err)
			}
		}
		line = formatAnswer(line[:0], n, ids)
		if _, err := out.Write(line); err != nil {
			return err
		}
		answered++
	}

	logger.Info("queries answered", "queries", answered, "verified", verify, "elapsed", time.Since(start))
	return out.Flush()
}

// loadTree reads the header and points from r and builds the index.
func loadTree(r *problem.Reader, logger *slog.Logger) (*rangetree.Tree, [][]float64, error) {
	h, err := r.ReadHeader()
	if err != nil {
		return nil, nil, err
	}
	points, err := r.ReadPoints(h)
	if err != nil {
		return nil, nil, err
	}

	cfg := treeConfig(logger)
	cfg.CheckInvariants = checkInvariants
	start := time.Now()
	tree, err := rangetree.New(points, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build index: %w", err)
	}
	logger.Info("index built", "dims", h.Dims, "points", h.Points, "elapsed", time.Since(start))
	return tree, points, nil
}

// answer returns the count for q and, with --report, the dominated ids.
func answer(tree *rangetree.Tree, q []float64) (int, *roaring.Bitmap, error) {
	if !report {
		n, err := tree.Count(q)
		return n, nil, err
	}
	ids, err := tree.Report(q)
	if err != nil {
		return 0, nil, err
	}
	return int(ids.GetCardinality()), ids, nil
}

// formatAnswer appends the output line for one answer to dst: the count and,
// when ids is set, a colon followed by the ids.
func formatAnswer(dst []byte, n int, ids *roaring.Bitmap) []byte {
	dst = strconv.AppendInt(dst, int64(n), 10)
	if ids != nil {
		dst = append(dst, ':')
		it := ids.Iterator()
		for it.HasNext() {
			dst = append(dst, ' ')
			dst = strconv.AppendUint(dst, uint64(it.Next()), 10)
		}
	}
	return append(dst, '\n')
}

// crossCheck compares the answer about to be printed with the brute-force
// oracle. ids is checked too when it is set.
func crossCheck(oracle *rangetree.BruteForce, q []float64, n int, ids *roaring.Bitmap) error {
	want, err := oracle.Count(q)
	if err != nil {
		return err
	}
	if n != want {
		return fmt.Errorf("index counted %d, brute force counted %d", n, want)
	}
	if ids == nil {
		return nil
	}
	wantIDs, err := oracle.Report(q)
	if err != nil {
		return err
	}
	if !ids.Equals(wantIDs) {
		return fmt.Errorf("index reported %v, brute force reported %v", ids.ToArray(), wantIDs.ToArray())
	}
	return nil
}
