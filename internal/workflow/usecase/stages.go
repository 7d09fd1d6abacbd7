package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"workflow-automation-agent/internal/workflow"
)

// parseIntent runs the extraction pipeline. Malformed LLM output is already
// absorbed inside the extractor, so an error here is a transport failure.
func (uc *implUseCase) parseIntent(ctx context.Context, st State) State {
	res, err := uc.extractor.Extract(ctx, st.UserRequest)
	if err != nil {
		return toError(st, err.Error())
	}

	st.Intent = res.Intent
	st.Confidence = res.Confidence
	st.Corrections = res.Corrections
	st.Stage = stageSearchTemplates
	return st
}

// searchTemplates queries the template catalog with a query assembled from
// the corrected intent.
func (uc *implUseCase) searchTemplates(ctx context.Context, st State) State {
	query := strings.TrimSpace(st.Intent.Action + " " + strings.Join(st.Intent.Integrations, " "))

	candidates, err := uc.repo.Search(ctx, query)
	if err != nil {
		return toError(st, err.Error())
	}

	uc.l.Infof(ctx, "searchTemplates: %d candidates for query %q", len(candidates), query)

	if len(candidates) == 0 {
		st.Stage = stageManualFallback
		return st
	}

	st.Candidates = candidates
	st.Stage = stageScoreCandidates
	return st
}

// scoreCandidates rates every candidate against the intent, one LLM call
// each. An unparseable score falls back to a keyword-overlap heuristic
// instead of failing the stage. The top score becomes the pipeline's
// confidence for the routing decision.
func (uc *implUseCase) scoreCandidates(ctx context.Context, st State) State {
	scored := make([]workflow.Candidate, 0, len(st.Candidates))
	for _, candidate := range st.Candidates {
		score, err := uc.scoreCandidate(ctx, st, candidate)
		if err != nil {
			score = keywordOverlapScore(candidate, st.UserRequest+" "+st.Intent.Action+" "+strings.Join(st.Intent.Integrations, " "))
			uc.l.Warnf(ctx, "scoreCandidates: heuristic fallback for %s: %v (score=%.2f)", candidate.ID, err, score)
		}
		candidate.Score = score
		scored = append(scored, candidate)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	st.Candidates = scored
	st.Confidence = scored[0].Score

	if st.Confidence >= uc.confidenceThreshold {
		st.Stage = stageSelectBest
	} else {
		uc.l.Infof(ctx, "scoreCandidates: confidence %.2f below threshold %.2f", st.Confidence, uc.confidenceThreshold)
		st.Stage = stageManualFallback
	}
	return st
}

const scoringPrompt = `Rate how well this workflow template matches the user's automation request.
Respond with ONLY a number between 0.0 and 1.0, nothing else.

User request: %s
Extracted action: %s
Wanted integrations: %s

Template: %s
Description: %s
Template integrations: %s`

func (uc *implUseCase) scoreCandidate(ctx context.Context, st State, candidate workflow.Candidate) (float64, error) {
	prompt := fmt.Sprintf(scoringPrompt,
		st.UserRequest,
		st.Intent.Action,
		strings.Join(st.Intent.Integrations, ", "),
		candidate.Name,
		candidate.Description,
		strings.Join(candidate.Integrations, ", "),
	)

	raw, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseScore(raw)
}

// selectBest picks the top-ranked candidate. Scoring guarantees a non-empty
// sorted list, so an empty list here means a broken transition.
func (uc *implUseCase) selectBest(ctx context.Context, st State) State {
	if len(st.Candidates) == 0 {
		return toError(st, "no candidates available for selection")
	}

	selected := st.Candidates[0]
	st.Selected = &selected
	uc.l.Infof(ctx, "selectBest: %s (score=%.2f)", selected.ID, selected.Score)

	st.RetryCount = 0
	st.Stage = stageFetchTemplate
	return st
}

// fetchTemplate loads the selected template's workflow definition. Retryable.
func (uc *implUseCase) fetchTemplate(ctx context.Context, st State) State {
	definition, err := uc.repo.Fetch(ctx, st.Selected.ID)
	if err != nil {
		return uc.retryOrFail(ctx, st, "fetch_template", err)
	}

	st.Definition = definition
	st.RetryCount = 0
	st.Stage = stageImportToTarget
	return st
}

// importToTarget imports the definition into the automation platform.
// Retryable.
func (uc *implUseCase) importToTarget(ctx context.Context, st State) State {
	wf, err := uc.engine.CreateWorkflow(ctx, st.Definition, st.Activate)
	if err != nil {
		return uc.retryOrFail(ctx, st, "import_to_target", err)
	}

	st.Created = &workflow.Created{
		ID:     wf.ID,
		Name:   wf.Name,
		URL:    fmt.Sprintf("%s/workflow/%s", uc.engine.BaseURL(), wf.ID),
		Active: wf.Active,
	}
	st.RetryCount = 0
	st.Stage = stageGenerateResponse
	return st
}

// retryOrFail re-enters the current stage after a delay while attempts
// remain, otherwise routes to the error terminal with the attempt count.
func (uc *implUseCase) retryOrFail(ctx context.Context, st State, stage string, err error) State {
	if st.RetryCount < uc.maxRetries {
		st.RetryCount++
		uc.l.Warnf(ctx, "%s: attempt %d failed, retrying: %v", stage, st.RetryCount, err)

		select {
		case <-time.After(uc.retryDelay):
		case <-ctx.Done():
			return toError(st, ctx.Err().Error())
		}
		return st
	}
	return toError(st, fmt.Sprintf("%s failed after %d attempts: %v", stage, st.RetryCount+1, err))
}

func toError(st State, msg string) State {
	st.Err = msg
	st.Stage = stageHandleError
	return st
}

// parseScore parses a bare numeric LLM reply. Values on a 0-100 scale are
// normalized, everything is clamped to [0, 1].
func parseScore(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	var score float64
	if _, err := fmt.Sscanf(s, "%g", &score); err != nil {
		return 0, fmt.Errorf("unparseable score %q: %w", raw, err)
	}

	if score > 1 && score <= 100 {
		score = score / 100
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

// keywordOverlapScore is the deterministic fallback when the LLM does not
// return a usable score: the fraction of the candidate's keywords (its
// integrations plus significant name words) found in the combined intent
// text.
func keywordOverlapScore(candidate workflow.Candidate, intentText string) float64 {
	textLower := strings.ToLower(intentText)

	keywords := make([]string, 0, len(candidate.Integrations)+4)
	for _, integration := range candidate.Integrations {
		keywords = append(keywords, strings.ToLower(integration))
	}
	for _, word := range strings.Fields(strings.ToLower(candidate.Name)) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}

	if len(keywords) == 0 {
		return 0
	}

	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}
