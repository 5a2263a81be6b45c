package dppmetrics

// StatusCount is one sparse histogram entry: a status code and the
// number of times it was recorded. Only codes that were actually
// recorded appear in a snapshot.
type StatusCount struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DurationBuckets carries the operation-time histogram: the bucket
// boundaries in seconds and one count per bucket (len(Counts) ==
// len(BoundsSeconds)+1).
type DurationBuckets struct {
	BoundsSeconds []int64 `json:"bounds_seconds"`
	Counts        []int64 `json:"counts"`
}

// Snapshot is an immutable copy of the aggregator state, shaped for a
// telemetry pipeline. Taking a snapshot never resets the aggregator.
type Snapshot struct {
	ConfiguratorInitiatorRequests int64 `json:"configurator_initiator_requests"`
	EnrolleeInitiatorRequests     int64 `json:"enrollee_initiator_requests"`
	EnrolleeResponderRequests     int64 `json:"enrollee_responder_requests"`
	EnrolleeResponderSuccess      int64 `json:"enrollee_responder_success"`
	EnrolleeSuccess               int64 `json:"enrollee_success"`
	R1CapableResponderDevices     int64 `json:"r1_capable_responder_devices"`
	R2CapableResponderDevices     int64 `json:"r2_capable_responder_devices"`
	R2IncompatibleConfiguration   int64 `json:"r2_incompatible_configuration"`

	FailureCodes             []StatusCount   `json:"failure_codes,omitempty"`
	ConfiguratorSuccessCodes []StatusCount   `json:"configurator_success_codes,omitempty"`
	OperationTime            DurationBuckets `json:"operation_time"`
}
