package usecase

import (
	"workflow-automation-agent/internal/intent"
	"workflow-automation-agent/internal/workflow"
)

// Pipeline stages. The starred terminals in the transition diagram are
// generateResponse, manualFallback, and handleError; stageDone stops the
// loop after a terminal stage has produced its output.
const (
	stageParseIntent      = "parse_intent"
	stageSearchTemplates  = "search_templates"
	stageScoreCandidates  = "score_candidates"
	stageSelectBest       = "select_best"
	stageFetchTemplate    = "fetch_template"
	stageImportToTarget   = "import_to_target"
	stageGenerateResponse = "generate_response"
	stageManualFallback   = "manual_fallback"
	stageHandleError      = "handle_error"
	stageDone             = "done"
)

// State is the full pipeline state for one request. Stage transition
// functions take it by value and return the updated copy, so each
// transition is a pure function that can be tested in isolation.
type State struct {
	UserRequest string
	Activate    bool
	Stage       string

	Intent      intent.Intent
	Confidence  float64
	Corrections []string

	Candidates []workflow.Candidate
	Selected   *workflow.Candidate
	Definition workflow.Definition
	Created    *workflow.Created

	// RetryCount counts failed attempts of the current retry-capable
	// stage. It resets to zero when a stage completes.
	RetryCount int

	Err          string
	UserResponse string
	FinalStatus  string
}
