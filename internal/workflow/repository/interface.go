package repository

import (
	"context"

	"workflow-automation-agent/internal/workflow"
)

// TemplateRepository is the interface for workflow template lookup.
type TemplateRepository interface {
	// Search returns candidate templates for a free-form query. An empty
	// result is not an error.
	Search(ctx context.Context, query string) ([]workflow.Candidate, error)

	// Fetch returns the full workflow definition for a template ID.
	Fetch(ctx context.Context, id string) (workflow.Definition, error)
}
