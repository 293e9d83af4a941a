// Package forge is a client for the Forge asynchronous completion API.
// A completion is submitted as a task and polled until it reaches a
// terminal status (succeeded, failed, cancelled) or a timeout elapses.
package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nousresearch/forge-go/internal/cache/memory"
	"github.com/nousresearch/forge-go/metrics"
)

const (
	defaultBaseURL        = "https://forge-api.nousresearch.com/v1"
	defaultRequestTimeout = 10 * time.Second
	defaultStatusCacheTTL = time.Hour
)

type Config struct {
	APIKey         string           // falls back to the FORGE_API_KEY env var
	BaseURL        string           // default production API
	RequestTimeout time.Duration    // per-HTTP-call timeout, default 10s
	StatusCacheTTL time.Duration    // how long Status keeps terminal results, default 1h
	Metrics        *metrics.Metrics // optional
}

type Client struct {
	apiKey         string
	completionsURL string
	httpClient     *http.Client
	logger         *zap.Logger
	metrics        *metrics.Metrics

	statusCache *memory.Cache
	statusTTL   time.Duration
	inflight    singleflight.Group
}

// New builds a client. Construction fails with ErrAuthFailed when no API key
// is passed and FORGE_API_KEY is unset; no network call is made here.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("FORGE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no API key provided, set FORGE_API_KEY or pass Config.APIKey", ErrAuthFailed)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.StatusCacheTTL == 0 {
		cfg.StatusCacheTTL = defaultStatusCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:         apiKey,
		completionsURL: strings.TrimRight(cfg.BaseURL, "/") + "/asyncplanner/completions",
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		logger:         logger,
		metrics:        cfg.Metrics,
		statusCache:    memory.New(),
		statusTTL:      cfg.StatusCacheTTL,
	}, nil
}

// Close releases background resources. The client must not be used after.
func (c *Client) Close() {
	c.statusCache.Stop()
}

// Complete submits prompt with default options and waits for a terminal
// status. See CompleteWithOptions.
func (c *Client) Complete(ctx context.Context, prompt string) (*Response, error) {
	return c.CompleteWithOptions(ctx, prompt, CompleteOptions{})
}

// CompleteWithOptions submits prompt and polls until the task reaches a
// terminal status, opts.Timeout elapses, or opts.MaxRetries consecutive
// transport failures occur. A task that the server reports as failed or
// cancelled is returned as a normal Response with Failed() == true.
func (c *Client) CompleteWithOptions(ctx context.Context, prompt string, opts CompleteOptions) (*Response, error) {
	opts = opts.withDefaults()
	if !opts.ReasoningSpeed.IsValid() {
		return nil, fmt.Errorf("%w: invalid reasoning speed %q", ErrRequestFailed, opts.ReasoningSpeed)
	}

	c.logger.Info("starting completion",
		zap.String("prompt", prompt),
		zap.String("reasoning_speed", string(opts.ReasoningSpeed)),
		zap.Bool("track", opts.Track),
	)

	start := time.Now()

	taskID, err := c.startTask(ctx, prompt, opts)
	if err != nil {
		c.recordCompletion("submit_error", time.Since(start))
		return nil, fmt.Errorf("start completion: %w", err)
	}

	resp, err := c.waitForTask(ctx, taskID, opts)
	if err != nil {
		switch {
		case errors.Is(err, ErrTimeout):
			c.recordCompletion("timeout", time.Since(start))
		default:
			c.recordCompletion("poll_error", time.Since(start))
		}
		return nil, err
	}

	c.recordCompletion(string(resp.Status), resp.CompletionTime)
	return resp, nil
}

// waitForTask is the poll loop. Elapsed time is measured from loop start,
// not from submission.
func (c *Client) waitForTask(ctx context.Context, taskID string, opts CompleteOptions) (*Response, error) {
	start := time.Now()
	retries := 0

	for time.Since(start) < opts.Timeout {
		raw, status, err := c.pollTask(ctx, taskID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			retries++
			if c.metrics != nil {
				c.metrics.RecordPoll("transport_error")
				c.metrics.RecordPollRetry()
			}
			if retries >= opts.MaxRetries {
				return nil, fmt.Errorf("%w: polling failed after %d retries", ErrRequestFailed, opts.MaxRetries)
			}
			c.logger.Warn("poll failed, retrying",
				zap.String("task_id", taskID),
				zap.Int("retries", retries),
				zap.Error(err),
			)
			if err := sleepCtx(ctx, retrySleep); err != nil {
				return nil, err
			}
			continue
		}

		elapsed := time.Since(start)
		if status.Terminal() {
			if c.metrics != nil {
				c.metrics.RecordPoll(string(status))
			}
			return &Response{
				TaskID:         taskID,
				Status:         status,
				Result:         raw,
				CompletionTime: elapsed,
			}, nil
		}

		if c.metrics != nil {
			c.metrics.RecordPoll("pending")
		}
		c.logger.Info("task not finished",
			zap.String("task_id", taskID),
			zap.String("status", string(status)),
			zap.Duration("waited", elapsed),
		)
		if err := sleepCtx(ctx, opts.PollInterval); err != nil {
			return nil, err
		}
		retries = 0
	}

	return nil, fmt.Errorf("%w after %d seconds", ErrTimeout, int(opts.Timeout.Seconds()))
}

// Status fetches the current state of a task once, without waiting for it to
// finish. Terminal results never change server-side, so they are cached;
// concurrent lookups for the same task share a single request.
func (c *Client) Status(ctx context.Context, taskID string) (*Response, error) {
	if cached, ok := c.statusCache.Get(taskID); ok {
		if resp, ok := cached.(*Response); ok {
			return resp, nil
		}
	}

	v, err, _ := c.inflight.Do(taskID, func() (any, error) {
		start := time.Now()
		raw, status, err := c.pollTask(ctx, taskID)
		if err != nil {
			return nil, err
		}

		resp := &Response{
			TaskID:         taskID,
			Status:         status,
			Result:         raw,
			CompletionTime: time.Since(start),
		}
		if status.Terminal() {
			c.statusCache.Set(taskID, resp, c.statusTTL)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Response), nil
}

func (c *Client) recordCompletion(status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordCompletion(status, duration)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
