package rangetree

import "github.com/RoaringBitmap/roaring/v2"

// tally accumulates the answer to one query. When ids is nil only the count
// is kept.
type tally struct {
	count int
	ids   *roaring.Bitmap
}

// scan is the brute-force leaf check: every point in pts is tested on all of
// its coordinates.
func (t *tally) scan(pts []Point, q []float64) {
	for i := range pts {
		if !pts[i].DominatedBy(q) {
			continue
		}
		t.count++
		if t.ids != nil {
			t.ids.Add(uint32(pts[i].Index))
		}
	}
}

// addPrefix counts entries[0..pos]. A pos of noEntry adds nothing.
func (t *tally) addPrefix(entries []cascadeEntry, pos int32) {
	if pos == noEntry {
		return
	}
	t.count += int(pos) + 1
	if t.ids != nil {
		for _, e := range entries[:pos+1] {
			t.ids.Add(uint32(e.index))
		}
	}
}

// countDominated returns how many points in pts are dominated by q.
func countDominated(pts []Point, q []float64) int {
	var t tally
	t.scan(pts, q)
	return t.count
}
