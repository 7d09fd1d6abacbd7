package workflow

// Final status values reported by the agent.
const (
	StatusCompleted               = "completed"
	StatusError                   = "error"
	StatusManualSelectionRequired = "manual_selection_required"
)

// Candidate is a workflow template returned by the repository search,
// scored for relevance against the user's intent.
type Candidate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Integrations []string `json:"integrations"`
	Category     string   `json:"category"`
	Score        float64  `json:"score"`
}

// Definition is a raw workflow definition as the automation platform
// expects it. It is passed through unmodified apart from name and
// activation defaults.
type Definition map[string]interface{}

// Created describes a workflow that was imported into the target platform.
type Created struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// ProcessInput is the input for one agent run.
type ProcessInput struct {
	Query    string // Natural language automation request
	Activate bool   // Activate the workflow right after import
}

// ProcessOutput is the result of one agent run.
type ProcessOutput struct {
	Success         bool
	UserResponse    string
	WorkflowCreated *Created
	ConfidenceScore *float64
	Err             string
	FinalStatus     string
}
