// Package dppmetrics aggregates Wi-Fi Easy Connect (DPP) provisioning
// events in memory: request and success counters, failure and success
// status-code histograms, and an operation-time histogram.
//
// An Aggregator is fed synchronously by the protocol engine through the
// Record* methods and read by a reporting path through Dump and
// Snapshot. Reads never reset anything; Clear is the only way to zero
// the state. All methods are safe for concurrent use.
package dppmetrics

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Aggregator accumulates DPP provisioning metrics. The zero value is
// not usable; create one with New. A single mutex guards all state:
// critical sections are O(1) arithmetic, so contention is not a
// concern at provisioning rates.
type Aggregator struct {
	mu sync.Mutex

	configuratorInitiatorRequests int64
	enrolleeInitiatorRequests     int64
	enrolleeResponderRequests     int64
	enrolleeResponderSuccess      int64
	enrolleeSuccess               int64
	r1CapableResponderDevices     int64
	r2CapableResponderDevices     int64
	r2IncompatibleConfiguration   int64

	failureCodes  map[FailureCode]int64
	successCodes  map[SuccessCode]int64
	operationTime *durationHistogram
}

// New creates an empty aggregator.
func New() *Aggregator {
	return &Aggregator{
		failureCodes:  make(map[FailureCode]int64),
		successCodes:  make(map[SuccessCode]int64),
		operationTime: newDurationHistogram(OperationTimeBounds),
	}
}

// RecordConfiguratorInitiatorRequest counts one configurator-initiator
// provisioning request.
func (a *Aggregator) RecordConfiguratorInitiatorRequest() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configuratorInitiatorRequests++
}

// RecordEnrolleeInitiatorRequest counts one enrollee-initiator
// provisioning request.
func (a *Aggregator) RecordEnrolleeInitiatorRequest() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enrolleeInitiatorRequests++
}

// RecordEnrolleeResponderRequest counts one enrollee-responder
// provisioning request.
func (a *Aggregator) RecordEnrolleeResponderRequest() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enrolleeResponderRequests++
}

// RecordEnrolleeResponderSuccess counts one successful
// enrollee-responder provisioning.
func (a *Aggregator) RecordEnrolleeResponderSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enrolleeResponderSuccess++
}

// RecordEnrolleeSuccess counts one successful enrollee provisioning.
func (a *Aggregator) RecordEnrolleeSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enrolleeSuccess++
}

// RecordR1CapableResponderDevice counts a responder device that
// supports DPP R1 only.
func (a *Aggregator) RecordR1CapableResponderDevice() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.r1CapableResponderDevices++
}

// RecordR2CapableResponderDevice counts a responder device that
// supports DPP R2.
func (a *Aggregator) RecordR2CapableResponderDevice() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.r2CapableResponderDevices++
}

// RecordR2IncompatibleConfiguration counts an R2 compatibility check
// that found the responder incompatible with the network.
func (a *Aggregator) RecordR2IncompatibleConfiguration() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.r2IncompatibleConfiguration++
}

// RecordConfiguratorSuccess counts a configurator success status.
// Codes this build does not recognize are dropped, so status codes
// added by future protocol revisions pass through harmlessly.
func (a *Aggregator) RecordConfiguratorSuccess(code SuccessCode) {
	if !code.known() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.successCodes[code]++
}

// RecordFailure counts a provisioning failure status. Unrecognized
// codes are dropped, same as RecordConfiguratorSuccess.
func (a *Aggregator) RecordFailure(code FailureCode) {
	if !code.known() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failureCodes[code]++
}

// RecordOperationDuration buckets the wall time of one completed DPP
// operation, given in milliseconds. Negative input is treated as 0
// rather than rejected; the metrics path must never fail the caller.
func (a *Aggregator) RecordOperationDuration(durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.operationTime.add(durationMs / 1000)
}

// Dump writes a human-readable report of every counter, plus each
// histogram that has at least one entry, to w. Histogram keys are
// listed in ascending code order. Dump does not modify the aggregator.
func (a *Aggregator) Dump(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	fmt.Fprintln(w, "---Easy Connect/DPP metrics---")
	fmt.Fprintf(w, "numDppConfiguratorInitiatorRequests=%d\n", a.configuratorInitiatorRequests)
	fmt.Fprintf(w, "numDppEnrolleeInitiatorRequests=%d\n", a.enrolleeInitiatorRequests)
	fmt.Fprintf(w, "numDppEnrolleeResponderRequests=%d\n", a.enrolleeResponderRequests)
	fmt.Fprintf(w, "numDppEnrolleeResponderSuccess=%d\n", a.enrolleeResponderSuccess)
	fmt.Fprintf(w, "numDppEnrolleeSuccess=%d\n", a.enrolleeSuccess)
	fmt.Fprintf(w, "numDppR1CapableResponderDevices=%d\n", a.r1CapableResponderDevices)
	fmt.Fprintf(w, "numDppR2CapableResponderDevices=%d\n", a.r2CapableResponderDevices)
	fmt.Fprintf(w, "numDppR2IncompatibleConfiguration=%d\n", a.r2IncompatibleConfiguration)

	if len(a.failureCodes) > 0 {
		fmt.Fprintln(w, "histogramDppFailureCode:")
		for _, sc := range sortedFailureCounts(a.failureCodes) {
			fmt.Fprintf(w, "  %s=%d\n", sc.Name, sc.Count)
		}
	}

	if len(a.successCodes) > 0 {
		fmt.Fprintln(w, "histogramDppConfiguratorSuccessCode:")
		for _, sc := range sortedSuccessCounts(a.successCodes) {
			fmt.Fprintf(w, "  %s=%d\n", sc.Name, sc.Count)
		}
	}

	if a.operationTime.nonEmpty() {
		fmt.Fprintln(w, "histogramDppOperationTime:")
		for i, count := range a.operationTime.counts {
			if count > 0 {
				fmt.Fprintf(w, "  %s=%d\n", a.operationTime.bucketLabel(i), count)
			}
		}
	}

	fmt.Fprintln(w, "---End of Easy Connect/DPP metrics---")
}

// Snapshot returns a copy of the current state for export. Only status
// codes that were actually recorded appear in the histogram slices,
// ordered by ascending code.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Snapshot{
		ConfiguratorInitiatorRequests: a.configuratorInitiatorRequests,
		EnrolleeInitiatorRequests:     a.enrolleeInitiatorRequests,
		EnrolleeResponderRequests:     a.enrolleeResponderRequests,
		EnrolleeResponderSuccess:      a.enrolleeResponderSuccess,
		EnrolleeSuccess:               a.enrolleeSuccess,
		R1CapableResponderDevices:     a.r1CapableResponderDevices,
		R2CapableResponderDevices:     a.r2CapableResponderDevices,
		R2IncompatibleConfiguration:   a.r2IncompatibleConfiguration,
		FailureCodes:                  sortedFailureCounts(a.failureCodes),
		ConfiguratorSuccessCodes:      sortedSuccessCounts(a.successCodes),
		OperationTime: DurationBuckets{
			BoundsSeconds: append([]int64(nil), a.operationTime.bounds...),
			Counts:        a.operationTime.bucketCounts(),
		},
	}
}

// Clear resets every counter to zero and empties every histogram.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.configuratorInitiatorRequests = 0
	a.enrolleeInitiatorRequests = 0
	a.enrolleeResponderRequests = 0
	a.enrolleeResponderSuccess = 0
	a.enrolleeSuccess = 0
	a.r1CapableResponderDevices = 0
	a.r2CapableResponderDevices = 0
	a.r2IncompatibleConfiguration = 0
	a.failureCodes = make(map[FailureCode]int64)
	a.successCodes = make(map[SuccessCode]int64)
	a.operationTime.reset()
}

func sortedFailureCounts(m map[FailureCode]int64) []StatusCount {
	if len(m) == 0 {
		return nil
	}
	out := make([]StatusCount, 0, len(m))
	for code, count := range m {
		out = append(out, StatusCount{Code: int(code), Name: code.String(), Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func sortedSuccessCounts(m map[SuccessCode]int64) []StatusCount {
	if len(m) == 0 {
		return nil
	}
	out := make([]StatusCount, 0, len(m))
	for code, count := range m {
		out = append(out, StatusCount{Code: int(code), Name: code.String(), Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
