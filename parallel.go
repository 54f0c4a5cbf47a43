package rangetree

import (
	"fmt"
	"sync"
)

// CountBatch answers every query in queries and returns the counts in the
// same order. numWorkers controls the degree of parallelism; if <= 1, the
// queries run on the calling goroutine.
//
// All queries are validated before any is answered; on error no counts are
// returned.
func (t *Tree) CountBatch(queries [][]float64, numWorkers int) ([]int, error) {
	for i, q := range queries {
		if err := checkQuery(q, t.dims); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}

	result := make([]int, len(queries))
	n := len(queries)
	if numWorkers <= 1 || n <= 1 {
		for i, q := range queries {
			result[i] = t.count(q)
		}
		return result, nil
	}

	// Each worker owns a contiguous range of queries and writes only its own
	// result slots, so no synchronization is needed beyond the wait.
	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				result[i] = t.count(queries[i])
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result, nil
}
