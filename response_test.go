package forge

import "testing"

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusSucceeded, true},
		{StatusFailed, true},
		{StatusCancelled, true},
		{StatusQueued, false},
		{StatusRunning, false},
		{StatusUnknown, false},
		{Status("something else"), false},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("Terminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestResponse_Predicates(t *testing.T) {
	tests := []struct {
		status        Status
		wantSucceeded bool
		wantFailed    bool
	}{
		{StatusSucceeded, true, false},
		{StatusFailed, false, true},
		{StatusCancelled, false, true},
		{StatusRunning, false, false},
		{StatusUnknown, false, false},
	}

	for _, tt := range tests {
		r := &Response{Status: tt.status}
		if r.Succeeded() != tt.wantSucceeded {
			t.Errorf("Succeeded(%q) = %v, want %v", tt.status, r.Succeeded(), tt.wantSucceeded)
		}
		if r.Failed() != tt.wantFailed {
			t.Errorf("Failed(%q) = %v, want %v", tt.status, r.Failed(), tt.wantFailed)
		}
	}
}

func TestReasoningSpeed_IsValid(t *testing.T) {
	for _, s := range []ReasoningSpeed{SpeedFast, SpeedMedium, SpeedSlow} {
		if !s.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	for _, s := range []ReasoningSpeed{"", "warp", "Fast "} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}
