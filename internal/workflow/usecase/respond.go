package usecase

import (
	"context"
	"fmt"
	"strings"

	"workflow-automation-agent/internal/workflow"
)

const responsePrompt = `Write a short, friendly message (2-3 sentences) telling the user their automation workflow was created successfully. No markdown, no greetings.

User request: %s
Workflow name: %s
Workflow URL: %s
Active: %v`

// generateResponse asks the LLM for a friendly success message. The
// workflow already exists at this point, so an LLM failure degrades to a
// deterministic message instead of failing the run.
func (uc *implUseCase) generateResponse(ctx context.Context, st State) State {
	msg, err := uc.llm.GenerateText(ctx, fmt.Sprintf(responsePrompt,
		st.UserRequest, st.Created.Name, st.Created.URL, st.Created.Active))
	if err != nil || strings.TrimSpace(msg) == "" {
		uc.l.Warnf(ctx, "generateResponse: falling back to template message: %v", err)
		msg = fmt.Sprintf("I've created the workflow %q for you. You can review it at %s.",
			st.Created.Name, st.Created.URL)
		if st.Created.Active {
			msg += " It is active and will start running on its trigger."
		} else {
			msg += " It is imported inactive so you can review it before turning it on."
		}
	}

	st.UserResponse = strings.TrimSpace(msg)
	st.FinalStatus = workflow.StatusCompleted
	st.Stage = stageDone
	return st
}

// manualFallback builds a message enumerating the top scored candidates,
// or alternative suggestions when the search came back empty.
func (uc *implUseCase) manualFallback(ctx context.Context, st State) State {
	var b strings.Builder

	if len(st.Candidates) > 0 {
		b.WriteString("I found some workflow templates that might match your request, but I'm not confident enough to pick one automatically. Here are the best matches:\n\n")
		for i, candidate := range st.Candidates {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "%d. %s (Score: %.1f%%)\n", i+1, candidate.Name, candidate.Score*100)
		}
		b.WriteString("\nPlease tell me which one to use, or describe your automation in more detail.")
	} else {
		b.WriteString("I couldn't find any existing workflow templates for your request. You could try:\n")
		b.WriteString("- Describing the automation with the specific services involved\n")
		b.WriteString("- Breaking the automation into smaller steps\n")
		b.WriteString("- Building the workflow manually in the editor")
	}

	st.UserResponse = b.String()
	st.FinalStatus = workflow.StatusManualSelectionRequired
	st.Stage = stageDone
	return st
}

// handleError produces the uniform user-facing apology with the raw error
// text embedded.
func (uc *implUseCase) handleError(ctx context.Context, st State) State {
	uc.l.Errorf(ctx, "handleError: %s", st.Err)

	st.UserResponse = fmt.Sprintf(
		"I'm sorry, something went wrong while setting up your automation: %s. Please try again or rephrase your request.",
		st.Err)
	st.FinalStatus = workflow.StatusError
	st.Stage = stageDone
	return st
}
