package workflow

import "context"

// UseCase defines the business logic interface for the workflow agent.
type UseCase interface {
	// Process runs one natural language request through the full agent
	// pipeline: intent extraction, template search, scoring, selection,
	// and import into the automation platform.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
