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

	"campus/internal/models"
)

// Client talks to the campus backend API. It owns no data: threads and
// content items live on the server, the client only fetches and mutates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates an API client for the given base URL.
// The token is sent as a bearer Authorization header when non-empty.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// ListThreads fetches all discussion threads visible to the caller
func (c *Client) ListThreads(ctx context.Context) ([]models.Thread, error) {
	var out struct {
		Threads []models.Thread `json:"threads"`
	}
	if err := c.do(ctx, "GET", "/api/v1/threads", nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return out.Threads, nil
}

// CreateThread submits a new thread and returns the server's record,
// which carries the assigned id, timestamps and counters.
func (c *Client) CreateThread(ctx context.Context, n models.NewThread) (*models.Thread, error) {
	var out models.Thread
	if err := c.do(ctx, "POST", "/api/v1/threads", n, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return &out, nil
}

// ListContent fetches all content items
func (c *Client) ListContent(ctx context.Context) ([]models.ContentItem, error) {
	var out struct {
		Content []models.ContentItem `json:"content"`
	}
	if err := c.do(ctx, "GET", "/api/v1/content", nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return out.Content, nil
}

// GetContent fetches a single content item by id
func (c *Client) GetContent(ctx context.Context, id string) (*models.ContentItem, error) {
	var out models.ContentItem
	if err := c.do(ctx, "GET", "/api/v1/content/"+id, nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("failed to get content %s: %w", id, err)
	}
	return &out, nil
}

// UpdateContent replaces an item's body and returns the updated record.
// The server increments the version counter on success.
func (c *Client) UpdateContent(ctx context.Context, id, body string) (*models.ContentItem, error) {
	in := struct {
		Body string `json:"body"`
	}{Body: body}

	var out models.ContentItem
	if err := c.do(ctx, "PUT", "/api/v1/content/"+id, in, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("failed to update content %s: %w", id, err)
	}
	return &out, nil
}

// DeleteContent removes a content item by id
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	if err := c.do(ctx, "DELETE", "/api/v1/content/"+id, nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, wantStatus int, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// apiErrorMessage pulls the backend's error field out of a failure body,
// falling back to the raw body for non-JSON responses.
func apiErrorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
