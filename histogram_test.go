package dppmetrics

import "testing"

func TestDurationHistogramBuckets(t *testing.T) {
	h := newDurationHistogram(OperationTimeBounds)

	if h.nonEmpty() {
		t.Error("Expected fresh histogram to be empty")
	}

	h.add(0)
	h.add(1)
	h.add(9)
	h.add(10)
	h.add(38)
	h.add(39)
	h.add(1000)

	expected := []int64{1, 2, 1, 1, 2}
	counts := h.bucketCounts()
	for i, c := range counts {
		if c != expected[i] {
			t.Errorf("Expected bucket %d count %d, got %d", i, expected[i], c)
		}
	}
	if !h.nonEmpty() {
		t.Error("Expected histogram to be non-empty after adds")
	}

	h.reset()
	for i, c := range h.bucketCounts() {
		if c != 0 {
			t.Errorf("Expected bucket %d to be 0 after reset, got %d", i, c)
		}
	}
}

func TestDurationHistogramLabels(t *testing.T) {
	h := newDurationHistogram(OperationTimeBounds)

	expected := []string{"<1s", "[1s,10s)", "[10s,25s)", "[25s,39s)", ">=39s"}
	for i, want := range expected {
		if got := h.bucketLabel(i); got != want {
			t.Errorf("Expected bucket %d label %q, got %q", i, want, got)
		}
	}
}

func TestDurationHistogramCountsAreACopy(t *testing.T) {
	h := newDurationHistogram(OperationTimeBounds)
	h.add(5)

	counts := h.bucketCounts()
	counts[1] = 42
	if h.counts[1] != 1 {
		t.Errorf("Expected internal count 1, got %d", h.counts[1])
	}
}
