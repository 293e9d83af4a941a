package forge

import "time"

// ReasoningSpeed selects how much effort the planner spends on a prompt.
type ReasoningSpeed string

const (
	SpeedFast   ReasoningSpeed = "fast"
	SpeedMedium ReasoningSpeed = "medium"
	SpeedSlow   ReasoningSpeed = "slow"
)

func (s ReasoningSpeed) IsValid() bool {
	switch s {
	case SpeedFast, SpeedMedium, SpeedSlow:
		return true
	}
	return false
}

// Status is the task state reported in metadata.status.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusUnknown   Status = "unknown"
)

// Terminal reports whether polling can stop. "unknown" is never terminal.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Response is the outcome of a completion task. Result holds the raw
// response body as returned by the API; only metadata.status is interpreted.
type Response struct {
	TaskID         string
	Status         Status
	Result         map[string]any
	CompletionTime time.Duration
}

func (r *Response) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// Failed reports a remote failure or cancellation. This is not a client
// error: Complete returns such tasks as normal responses.
func (r *Response) Failed() bool {
	return r.Status == StatusFailed || r.Status == StatusCancelled
}
