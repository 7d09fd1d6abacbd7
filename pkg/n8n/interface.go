package n8n

import "context"

// IN8n defines the interface for the n8n workflow-execution API client.
type IN8n interface {
	// CreateWorkflow imports a workflow definition into n8n.
	CreateWorkflow(ctx context.Context, definition map[string]interface{}, activate bool) (*Workflow, error)

	// BaseURL returns the n8n instance URL (for building editor links).
	BaseURL() string
}
