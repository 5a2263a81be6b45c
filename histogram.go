package dppmetrics

import "fmt"

// OperationTimeBounds are the duration histogram boundaries in seconds.
// They split recorded operation times into five buckets:
// <1, [1,10), [10,25), [25,39) and >=39 (the DPP timeout).
var OperationTimeBounds = []int64{1, 10, 25, 39}

// durationHistogram counts operation durations against a fixed set of
// ascending bucket boundaries. Not safe for concurrent use on its own;
// the aggregator's lock guards it.
type durationHistogram struct {
	bounds []int64
	counts []int64
}

func newDurationHistogram(bounds []int64) *durationHistogram {
	return &durationHistogram{
		bounds: bounds,
		counts: make([]int64, len(bounds)+1),
	}
}

// add records one occurrence of the given value (whole seconds).
// Bucket i covers [bounds[i-1], bounds[i]); the first bucket covers
// everything below bounds[0], the last everything at or above the
// final boundary.
func (h *durationHistogram) add(seconds int64) {
	i := 0
	for i < len(h.bounds) && seconds >= h.bounds[i] {
		i++
	}
	h.counts[i]++
}

func (h *durationHistogram) nonEmpty() bool {
	for _, c := range h.counts {
		if c > 0 {
			return true
		}
	}
	return false
}

func (h *durationHistogram) reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
}

// bucketCounts returns a copy of the per-bucket counts.
func (h *durationHistogram) bucketCounts() []int64 {
	out := make([]int64, len(h.counts))
	copy(out, h.counts)
	return out
}

// bucketLabel names bucket i for dumps, e.g. "<1s", "[1s,10s)", ">=39s".
func (h *durationHistogram) bucketLabel(i int) string {
	switch {
	case i == 0:
		return fmt.Sprintf("<%ds", h.bounds[0])
	case i == len(h.bounds):
		return fmt.Sprintf(">=%ds", h.bounds[len(h.bounds)-1])
	default:
		return fmt.Sprintf("[%ds,%ds)", h.bounds[i-1], h.bounds[i])
	}
}
