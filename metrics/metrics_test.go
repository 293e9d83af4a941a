package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := New() // registers against the default registry, so New only once per test binary

	m.RecordPoll("pending")
	m.RecordPoll("pending")
	m.RecordPoll("succeeded")
	m.RecordPollRetry()
	m.RecordCompletion("succeeded", 2*time.Second)

	if got := testutil.ToFloat64(m.PollsTotal.WithLabelValues("pending")); got != 2 {
		t.Errorf("polls_total{pending} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.PollsTotal.WithLabelValues("succeeded")); got != 1 {
		t.Errorf("polls_total{succeeded} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.PollRetriesTotal); got != 1 {
		t.Errorf("poll_retries_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CompletionsTotal.WithLabelValues("succeeded")); got != 1 {
		t.Errorf("completions_total{succeeded} = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	if Handler() == nil {
		t.Error("Handler() returned nil")
	}
}
