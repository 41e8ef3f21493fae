// Package renderer is the HTTP client for the headless-browser PDF service.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RenderRequest is the render service's request body
type RenderRequest struct {
	HTMLContent string        `json:"htmlContent"`
	Options     RenderOptions `json:"options"`
}

// RenderOptions control page setup and the download filename
type RenderOptions struct {
	Format   string `json:"format,omitempty"`   // paper size, default Letter
	Filename string `json:"filename,omitempty"` // Content-Disposition filename
}

// HealthResponse is the render service's health body
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client calls the PDF render service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption is a functional option for Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a render service client. Rendering spawns a browser tab
// per request, so the default timeout is generous.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RenderPDF submits HTML and returns the rendered PDF bytes
func (c *Client) RenderPDF(ctx context.Context, htmlContent string, opts RenderOptions) ([]byte, error) {
	body, err := json.Marshal(RenderRequest{HTMLContent: htmlContent, Options: opts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-pdf", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode, msg)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF body: %w", err)
	}
	return pdf, nil
}

// Health checks the render service
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("render service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("render service unhealthy: %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("bad health response: %w", err)
	}
	if health.Status != "OK" {
		return fmt.Errorf("render service status %q", health.Status)
	}
	return nil
}
