package usecase

import (
	"context"
	"strings"

	"workflow-automation-agent/internal/workflow"
)

// Process runs one natural language request through the agent pipeline.
// Pipeline failures never surface as Go errors: they terminate the state
// machine in an error or manual-fallback state and are reported through
// the output struct. Only invalid input returns an error.
func (uc *implUseCase) Process(ctx context.Context, input workflow.ProcessInput) (workflow.ProcessOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return workflow.ProcessOutput{}, workflow.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "Process: query_length=%d activate=%v", len(input.Query), input.Activate)

	st := State{
		UserRequest: input.Query,
		Activate:    input.Activate,
		Stage:       stageParseIntent,
	}

	for st.Stage != stageDone {
		uc.l.Debugf(ctx, "Process: entering stage %s (retries=%d)", st.Stage, st.RetryCount)

		switch st.Stage {
		case stageParseIntent:
			st = uc.parseIntent(ctx, st)
		case stageSearchTemplates:
			st = uc.searchTemplates(ctx, st)
		case stageScoreCandidates:
			st = uc.scoreCandidates(ctx, st)
		case stageSelectBest:
			st = uc.selectBest(ctx, st)
		case stageFetchTemplate:
			st = uc.fetchTemplate(ctx, st)
		case stageImportToTarget:
			st = uc.importToTarget(ctx, st)
		case stageGenerateResponse:
			st = uc.generateResponse(ctx, st)
		case stageManualFallback:
			st = uc.manualFallback(ctx, st)
		case stageHandleError:
			st = uc.handleError(ctx, st)
		default:
			st.Err = "unknown pipeline stage: " + st.Stage
			st.Stage = stageHandleError
		}
	}

	out := workflow.ProcessOutput{
		Success:         st.FinalStatus == workflow.StatusCompleted,
		UserResponse:    st.UserResponse,
		WorkflowCreated: st.Created,
		Err:             st.Err,
		FinalStatus:     st.FinalStatus,
	}
	if st.FinalStatus != workflow.StatusError {
		confidence := st.Confidence
		out.ConfidenceScore = &confidence
	}

	uc.l.Infof(ctx, "Process: finished status=%s success=%v", out.FinalStatus, out.Success)
	return out, nil
}
