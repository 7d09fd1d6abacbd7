package n8n

// Workflow is the execution target's view of an imported workflow.
type Workflow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// createWorkflowResponse is the wire shape of the create endpoint response.
// Some n8n versions wrap the workflow in a data envelope.
type createWorkflowResponse struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
	Data   *Workflow `json:"data,omitempty"`
}
