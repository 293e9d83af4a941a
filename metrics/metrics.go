package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	CompletionsTotal   *prometheus.CounterVec
	CompletionDuration prometheus.Histogram

	PollsTotal       *prometheus.CounterVec
	PollRetriesTotal prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CompletionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_client_completions_total",
				Help: "Completion calls by final status",
			},
			[]string{"status"},
		),
		CompletionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forge_client_completion_duration_seconds",
				Help:    "Wall-clock time from submission to terminal status",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),

		PollsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_client_polls_total",
				Help: "Poll attempts by outcome",
			},
			[]string{"status"},
		),
		PollRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "forge_client_poll_retries_total",
				Help: "Transient poll failures that were retried",
			},
		),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordCompletion(status string, duration time.Duration) {
	m.CompletionsTotal.WithLabelValues(status).Inc()
	m.CompletionDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordPoll(status string) {
	m.PollsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordPollRetry() {
	m.PollRetriesTotal.Inc()
}
