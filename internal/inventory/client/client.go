// Package client talks to the inventory HTTP API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kiosk404/stockmind/internal/inventory"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

const defaultTimeout = 5 * time.Second

// StatusError carries the HTTP status and human readable detail for a
// failed inventory call. Unreachable or misbehaving servers are reported
// as 503 so callers can treat every failure uniformly.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inventory service returned %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Fetch returns the current stock counts.
func (c *Client) Fetch(ctx context.Context) (inventory.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/inventory", nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// Apply adjusts the count for item by change and returns the updated
// stock counts.
func (c *Client) Apply(ctx context.Context, item string, change int) (inventory.Snapshot, error) {
	body, err := json.Marshal(map[string]any{"item": item, "change": change})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inventory", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (inventory.Snapshot, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &StatusError{
			StatusCode: http.StatusServiceUnavailable,
			Detail:     fmt.Sprintf("could not connect to the inventory service: %v", err),
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &StatusError{
			StatusCode: http.StatusServiceUnavailable,
			Detail:     fmt.Sprintf("could not read inventory service response: %v", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     detailFrom(resp.StatusCode, data),
		}
	}

	var snapshot inventory.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, &StatusError{
			StatusCode: http.StatusServiceUnavailable,
			Detail:     fmt.Sprintf("inventory service returned a malformed body: %v", err),
		}
	}

	return snapshot, nil
}

// detailFrom pulls a readable message out of an error body. Business
// rejections carry a plain string detail while validation errors carry a
// list of per-field issues.
func detailFrom(status int, data []byte) string {
	var plain struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &plain); err == nil && plain.Detail != "" {
		return plain.Detail
	}

	var structured struct {
		Detail []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(data, &structured); err == nil && len(structured.Detail) > 0 {
		parts := make([]string, 0, len(structured.Detail))
		for _, issue := range structured.Detail {
			loc := make([]string, 0, len(issue.Loc))
			for _, l := range issue.Loc {
				loc = append(loc, fmt.Sprint(l))
			}
			parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(loc, "."), issue.Msg))
		}

		return strings.Join(parts, "; ")
	}

	return fmt.Sprintf("unexpected response with status %d: %s", status, strings.TrimSpace(string(data)))
}
