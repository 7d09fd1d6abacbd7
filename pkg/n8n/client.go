package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Client is the HTTP wrapper for the n8n REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu      sync.Mutex
	apiPath string // detected lazily: "/api/v1" or "/rest"
}

// NewClient creates a new n8n HTTP client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the n8n instance URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// detectAPIPath probes whether this n8n instance serves its API under
// /api/v1 or /rest. The result is cached for the client's lifetime.
func (c *Client) detectAPIPath(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.apiPath != "" {
		return c.apiPath
	}

	for _, path := range []string{"/api/v1", "/rest"} {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"/workflows", nil)
		if err != nil {
			continue
		}
		c.setAuth(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()

		// 401/403 still means the API exists at this path
		if resp.StatusCode == http.StatusOK ||
			resp.StatusCode == http.StatusUnauthorized ||
			resp.StatusCode == http.StatusForbidden {
			c.apiPath = path
			return c.apiPath
		}
	}

	c.apiPath = "/api/v1"
	return c.apiPath
}

// CreateWorkflow imports a workflow definition into n8n via POST /workflows.
func (c *Client) CreateWorkflow(ctx context.Context, definition map[string]interface{}, activate bool) (*Workflow, error) {
	apiPath := c.detectAPIPath(ctx)

	payload := make(map[string]interface{}, len(definition)+2)
	for k, v := range definition {
		payload[k] = v
	}
	if _, ok := payload["name"]; !ok {
		payload["name"] = "Imported Workflow"
	}
	payload["active"] = activate

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow definition: %w", err)
	}

	url := fmt.Sprintf("%s%s/workflows", c.baseURL, apiPath)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create workflow request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.setAuth(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call n8n create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("n8n API create error %d: %s", resp.StatusCode, string(raw))
	}

	var created createWorkflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode n8n create response: %w", err)
	}

	if created.Data != nil {
		return created.Data, nil
	}
	return &Workflow{ID: created.ID, Name: created.Name, Active: created.Active}, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-N8N-API-KEY", c.apiKey)
	}
}
