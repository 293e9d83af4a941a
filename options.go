package forge

import (
	"strings"
	"time"
)

const (
	defaultTimeout      = 300 * time.Second
	defaultPollInterval = 5 * time.Second
	defaultMaxRetries   = 5

	// sleep between transient poll retries, distinct from PollInterval
	retrySleep = time.Second
)

// CompleteOptions tunes a single Complete call. Zero values mean defaults.
type CompleteOptions struct {
	ReasoningSpeed ReasoningSpeed // fast/medium/slow, default medium
	Track          bool           // request detailed trace information
	Timeout        time.Duration  // overall wall-clock budget, default 300s
	PollInterval   time.Duration  // sleep between polls, default 5s
	MaxRetries     int            // consecutive transport failures before giving up, default 5
}

func (o CompleteOptions) withDefaults() CompleteOptions {
	o.ReasoningSpeed = ReasoningSpeed(strings.ToLower(string(o.ReasoningSpeed)))
	if o.ReasoningSpeed == "" {
		o.ReasoningSpeed = SpeedMedium
	}
	if o.Timeout == 0 {
		o.Timeout = defaultTimeout
	}
	if o.PollInterval == 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetries
	}
	return o
}
