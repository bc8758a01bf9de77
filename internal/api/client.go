// Package api provides the typed HTTP client for the SalesLens backend.
// This file implements the client with per-request contexts and a
// client-level timeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is where the backend listens when run locally.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout bounds every request. The backend has no streaming
// endpoints, so a hung call is always an upstream problem.
const DefaultTimeout = 15 * time.Second

// Client talks to the SalesLens REST API. The zero value is not usable;
// construct with NewClient. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL; a non-positive timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateSession starts a new recording session. customerName and notes
// may be nil.
func (c *Client) CreateSession(ctx context.Context, customerName, notes *string) (*CreateSessionResponse, error) {
	body := CreateSessionRequest{CustomerName: customerName, Notes: notes}
	var resp CreateSessionResponse
	if err := c.postJSON(ctx, "/sessions", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSessions returns all sessions, newest first.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := c.getJSON(ctx, "/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession returns a single session by ID.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var s Session
	if err := c.getJSON(ctx, "/sessions/"+url.PathEscape(sessionID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// StopSession stops a recording session and triggers analysis.
func (c *Client) StopSession(ctx context.Context, sessionID string) (*StopSessionResponse, error) {
	var resp StopSessionResponse
	path := "/sessions/" + url.PathEscape(sessionID) + "/stop"
	if err := c.postJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Timeline returns the merged transcript+physiology timeline for a session.
func (c *Client) Timeline(ctx context.Context, sessionID string) ([]TimelineSegment, error) {
	var segments []TimelineSegment
	path := "/sessions/" + url.PathEscape(sessionID) + "/timeline"
	if err := c.getJSON(ctx, path, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}

// Insights returns the AI insights for a session.
func (c *Client) Insights(ctx context.Context, sessionID string) ([]Insight, error) {
	var insights []Insight
	path := "/sessions/" + url.PathEscape(sessionID) + "/insights"
	if err := c.getJSON(ctx, path, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

// Physiology returns the raw physiology samples for a session.
func (c *Client) Physiology(ctx context.Context, sessionID string) ([]PhysiologySample, error) {
	var samples []PhysiologySample
	path := "/sessions/" + url.PathEscape(sessionID) + "/physiology"
	if err := c.getJSON(ctx, path, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// Transcript returns the raw transcript payload without reshaping it.
func (c *Client) Transcript(ctx context.Context, sessionID string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := "/sessions/" + url.PathEscape(sessionID) + "/transcript"
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: building request for %s: %w", path, err)
	}
	return c.do(req, path, out)
}

// postJSON issues a POST request with an optional JSON body and decodes
// the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshalling request for %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: building request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, path, out)
}

// do executes the request and decodes a 200 response into out.
// Any non-200 status is an error; callers decide whether to degrade.
func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api: %s %s: unexpected status %s", req.Method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding response from %s: %w", path, err)
	}
	return nil
}
