package dppmetrics

import (
	"strings"
	"testing"
)

func TestDumpEmptyAggregator(t *testing.T) {
	a := New()

	var sb strings.Builder
	a.Dump(&sb)
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "---Easy Connect/DPP metrics---" {
		t.Errorf("Expected header line, got %q", lines[0])
	}
	if lines[len(lines)-1] != "---End of Easy Connect/DPP metrics---" {
		t.Errorf("Expected footer line, got %q", lines[len(lines)-1])
	}

	// Header + 8 counters + footer, no histogram sections when empty.
	if len(lines) != 10 {
		t.Errorf("Expected 10 lines for an empty aggregator, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "numDppConfiguratorInitiatorRequests=0\n") {
		t.Errorf("Expected zeroed counter line, got:\n%s", out)
	}
	if strings.Contains(out, "histogram") {
		t.Errorf("Expected no histogram sections in empty dump, got:\n%s", out)
	}
}

func TestDumpWithHistograms(t *testing.T) {
	a := New()
	a.RecordConfiguratorInitiatorRequest()
	a.RecordFailure(FailureTimeout)
	a.RecordFailure(FailureInvalidURI)
	a.RecordConfiguratorSuccess(SuccessConfigurationSent)
	a.RecordOperationDuration(15000)

	var sb strings.Builder
	a.Dump(&sb)
	out := sb.String()

	if !strings.Contains(out, "numDppConfiguratorInitiatorRequests=1\n") {
		t.Errorf("Expected counter line, got:\n%s", out)
	}
	if !strings.Contains(out, "histogramDppFailureCode:\n  INVALID_URI=1\n  TIMEOUT=1\n") {
		t.Errorf("Expected failure section in ascending code order, got:\n%s", out)
	}
	if !strings.Contains(out, "histogramDppConfiguratorSuccessCode:\n  CONFIGURATION_SENT=1\n") {
		t.Errorf("Expected success section, got:\n%s", out)
	}
	if !strings.Contains(out, "histogramDppOperationTime:\n  [10s,25s)=1\n") {
		t.Errorf("Expected operation time section, got:\n%s", out)
	}
}

func TestDumpStableAndNonMutating(t *testing.T) {
	a := New()
	a.RecordEnrolleeSuccess()
	a.RecordFailure(FailureAuthentication)
	a.RecordOperationDuration(500)

	before := a.Snapshot()

	var first, second strings.Builder
	a.Dump(&first)
	a.Dump(&second)
	if first.String() != second.String() {
		t.Errorf("Expected identical dumps:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}

	after := a.Snapshot()
	if before.EnrolleeSuccess != after.EnrolleeSuccess ||
		len(before.FailureCodes) != len(after.FailureCodes) {
		t.Errorf("Dump mutated aggregator state: before %+v, after %+v", before, after)
	}
}
