package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type startRequest struct {
	Prompt         string         `json:"prompt"`
	ReasoningSpeed ReasoningSpeed `json:"reasoning_speed"`
	Track          bool           `json:"track"`
}

type startResponse struct {
	TaskID string `json:"task_id"`
}

// startTask submits the completion and returns the server-assigned task id.
// Submission is never retried.
func (c *Client) startTask(ctx context.Context, prompt string, opts CompleteOptions) (string, error) {
	body, err := json.Marshal(startRequest{
		Prompt:         prompt,
		ReasoningSpeed: opts.ReasoningSpeed,
		Track:          opts.Track,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	respBody, statusCode, err := doRequest(c.httpClient, req)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusOK {
		return "", c.handleHTTPError(statusCode, respBody)
	}

	var sr startResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if sr.TaskID == "" {
		return "", fmt.Errorf("%w: no task_id in response", ErrRequestFailed)
	}
	return sr.TaskID, nil
}

// pollTask fetches the current task state. Any non-nil error is a transport
// level failure and may be retried by the caller; a successful call with a
// non-terminal status is not an error.
func (c *Client) pollTask(ctx context.Context, taskID string) (map[string]any, Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.completionsURL+"/"+taskID, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	respBody, statusCode, err := doRequest(c.httpClient, req)
	if err != nil {
		return nil, "", err
	}
	if statusCode != http.StatusOK {
		return nil, "", c.handleHTTPError(statusCode, respBody)
	}

	var raw map[string]any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, "", fmt.Errorf("unmarshal response: %w", err)
	}
	return raw, statusFrom(raw), nil
}

// statusFrom extracts metadata.status. A missing or malformed field means
// "unknown", which keeps the poll loop going.
func statusFrom(raw map[string]any) Status {
	meta, ok := raw["metadata"].(map[string]any)
	if !ok {
		return StatusUnknown
	}
	s, ok := meta["status"].(string)
	if !ok || s == "" {
		return StatusUnknown
	}
	return Status(s)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-Id", uuid.New().String())
}

func (c *Client) handleHTTPError(statusCode int, body []byte) error {
	if statusCode == http.StatusUnauthorized {
		return ErrAuthFailed
	}
	c.logger.Error("forge request failed",
		zap.Int("status", statusCode),
		zap.String("body", string(body)),
	)
	return fmt.Errorf("%w: status %d", ErrRequestFailed, statusCode)
}

func doRequest(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
