package dppmetrics

// FailureCode identifies why an Easy Connect (DPP) exchange failed.
// The values mirror the Easy Connect failure status set.
type FailureCode int

const (
	FailureInvalidURI FailureCode = iota + 1
	FailureAuthentication
	FailureNotCompatible
	FailureConfiguration
	FailureBusy
	FailureTimeout
	FailureGeneric
	FailureNotSupported
	FailureInvalidNetwork
	FailureCannotFindNetwork
	FailureEnrolleeAuthentication
	FailureEnrolleeRejectedConfiguration
	FailureURIGeneration
	FailureEnrolleeFailedToScanNetworkChannel
)

// SuccessCode identifies how a configurator-side exchange succeeded.
type SuccessCode int

const (
	SuccessConfigurationSent SuccessCode = iota + 1
	SuccessConfigurationApplied
)

var failureNames = map[FailureCode]string{
	FailureInvalidURI:                         "INVALID_URI",
	FailureAuthentication:                     "AUTHENTICATION",
	FailureNotCompatible:                      "NOT_COMPATIBLE",
	FailureConfiguration:                      "CONFIGURATION",
	FailureBusy:                               "BUSY",
	FailureTimeout:                            "TIMEOUT",
	FailureGeneric:                            "GENERIC",
	FailureNotSupported:                       "NOT_SUPPORTED",
	FailureInvalidNetwork:                     "INVALID_NETWORK",
	FailureCannotFindNetwork:                  "CANNOT_FIND_NETWORK",
	FailureEnrolleeAuthentication:             "ENROLLEE_AUTHENTICATION",
	FailureEnrolleeRejectedConfiguration:      "ENROLLEE_REJECTED_CONFIGURATION",
	FailureURIGeneration:                      "URI_GENERATION",
	FailureEnrolleeFailedToScanNetworkChannel: "ENROLLEE_FAILED_TO_SCAN_NETWORK_CHANNEL",
}

var successNames = map[SuccessCode]string{
	SuccessConfigurationSent:    "CONFIGURATION_SENT",
	SuccessConfigurationApplied: "CONFIGURATION_APPLIED",
}

// String returns the status name, or "UNKNOWN" for codes this build
// does not recognize.
func (c FailureCode) String() string {
	if name, ok := failureNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// String returns the status name, or "UNKNOWN" for codes this build
// does not recognize.
func (c SuccessCode) String() string {
	if name, ok := successNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

func (c FailureCode) known() bool {
	_, ok := failureNames[c]
	return ok
}

func (c SuccessCode) known() bool {
	_, ok := successNames[c]
	return ok
}
