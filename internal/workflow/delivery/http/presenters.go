package http

import (
	"workflow-automation-agent/internal/workflow"
)

// --- Request DTOs ---

type processReq struct {
	Message  string `json:"message"  binding:"required,min=1,max=2000"`
	Activate bool   `json:"activate"`
}

func (r processReq) toInput() workflow.ProcessInput {
	return workflow.ProcessInput{
		Query:    r.Message,
		Activate: r.Activate,
	}
}

// --- Response DTOs ---

type workflowResp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type processResp struct {
	RequestID       string        `json:"request_id"`
	Success         bool          `json:"success"`
	Response        string        `json:"response"`
	WorkflowCreated *workflowResp `json:"workflow_created,omitempty"`
	ConfidenceScore *float64      `json:"confidence_score,omitempty"`
	Error           string        `json:"error,omitempty"`
	FinalStatus     string        `json:"final_status"`
}

func (h *handler) newProcessResp(requestID string, out workflow.ProcessOutput) processResp {
	resp := processResp{
		RequestID:       requestID,
		Success:         out.Success,
		Response:        out.UserResponse,
		ConfidenceScore: out.ConfidenceScore,
		Error:           out.Err,
		FinalStatus:     out.FinalStatus,
	}
	if out.WorkflowCreated != nil {
		resp.WorkflowCreated = &workflowResp{
			ID:     out.WorkflowCreated.ID,
			Name:   out.WorkflowCreated.Name,
			URL:    out.WorkflowCreated.URL,
			Active: out.WorkflowCreated.Active,
		}
	}
	return resp
}
