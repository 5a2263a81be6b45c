package dppmetrics

import "testing"

func TestFailureCodeNames(t *testing.T) {
	tests := []struct {
		code FailureCode
		name string
	}{
		{FailureInvalidURI, "INVALID_URI"},
		{FailureTimeout, "TIMEOUT"},
		{FailureEnrolleeFailedToScanNetworkChannel, "ENROLLEE_FAILED_TO_SCAN_NETWORK_CHANNEL"},
		{FailureCode(0), "UNKNOWN"},
		{FailureCode(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.name {
			t.Errorf("Expected FailureCode(%d).String() = %q, got %q", tt.code, tt.name, got)
		}
	}
}

func TestSuccessCodeNames(t *testing.T) {
	if got := SuccessConfigurationSent.String(); got != "CONFIGURATION_SENT" {
		t.Errorf("Expected CONFIGURATION_SENT, got %q", got)
	}
	if got := SuccessConfigurationApplied.String(); got != "CONFIGURATION_APPLIED" {
		t.Errorf("Expected CONFIGURATION_APPLIED, got %q", got)
	}
	if got := SuccessCode(7).String(); got != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN for unrecognized code, got %q", got)
	}
}

func TestAllFailureCodesKnown(t *testing.T) {
	for code := FailureInvalidURI; code <= FailureEnrolleeFailedToScanNetworkChannel; code++ {
		if !code.known() {
			t.Errorf("Expected code %d to be known", code)
		}
	}
}
