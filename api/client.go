package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// APIError is returned for non-2xx responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls a remote simulation server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL (e.g. "http://localhost:9095").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Policies lists the policies the server can run.
func (c *Client) Policies(ctx context.Context) (*PoliciesResponse, error) {
	var out PoliciesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/policies", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Simulate runs one policy remotely.
func (c *Client) Simulate(ctx context.Context, policy string, req *SimulateRequest) (*sim.Result, error) {
	var out sim.Result
	if err := c.do(ctx, http.MethodPost, "/api/v1/simulate/"+policy, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compare runs req.Policies (or every policy) remotely.
func (c *Client) Compare(ctx context.Context, req *SimulateRequest) (*CompareResponse, error) {
	var out CompareResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/compare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e ErrorResponse
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
