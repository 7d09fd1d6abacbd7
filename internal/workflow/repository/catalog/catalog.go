package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"workflow-automation-agent/internal/workflow"
)

// Client is the HTTP wrapper for an external template catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Search queries the catalog via GET /templates/search.
func (c *Client) Search(ctx context.Context, query string) ([]workflow.Candidate, error) {
	u := fmt.Sprintf("%s/templates/search?q=%s", c.baseURL, url.QueryEscape(query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog API search error %d: %s", resp.StatusCode, string(raw))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode catalog search response: %w", err)
	}
	if result.Templates == nil {
		return []workflow.Candidate{}, nil
	}
	return result.Templates, nil
}

// Fetch retrieves a full workflow definition via GET /templates/{id}.
func (c *Client) Fetch(ctx context.Context, id string) (workflow.Definition, error) {
	u := fmt.Sprintf("%s/templates/%s", c.baseURL, url.PathEscape(id))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog fetch API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", workflow.ErrTemplateNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog API fetch error %d: %s", resp.StatusCode, string(raw))
	}

	var result fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode catalog fetch response: %w", err)
	}
	if result.Definition == nil {
		return nil, fmt.Errorf("%w: %s", workflow.ErrNoDefinition, id)
	}
	return result.Definition, nil
}

type searchResponse struct {
	Templates []workflow.Candidate `json:"templates"`
}

type fetchResponse struct {
	ID         string              `json:"id"`
	Definition workflow.Definition `json:"definition"`
}
