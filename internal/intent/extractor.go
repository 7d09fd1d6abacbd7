package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"workflow-automation-agent/pkg/log"
)

// TextGenerator is the single LLM capability extraction needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Extractor turns free-form automation requests into structured intents
// using one LLM call followed by rule-based correction and scoring.
type Extractor struct {
	l   log.Logger
	llm TextGenerator
}

// NewExtractor creates a new intent extractor.
func NewExtractor(l log.Logger, llm TextGenerator) *Extractor {
	return &Extractor{
		l:   l,
		llm: llm,
	}
}

const extractionPrompt = `You are an intent extraction system for workflow automation. Analyze the user's request and extract structured information.

Respond with ONLY a JSON object, no explanation, no markdown fences:
{
  "integrations": ["list of services/tools mentioned, e.g. Gmail, Slack, Webhook"],
  "trigger_type": "one of: webhook, schedule, manual",
  "action": "short summary of what the workflow should do",
  "requirements": ["any specific requirements or conditions mentioned"]
}

Integration detection rules:
- Include "Webhook" when the request mentions webhooks, HTTP callbacks, incoming events or payloads.
- Include "Form" when the request mentions forms or submissions.
- Include "Schedule" when the request mentions schedules, cron, or recurring runs.
- Name explicit services as the user names them (Gmail, Slack, Discord, Notion, ...).

Trigger type rules:
- "webhook" when the workflow reacts to an external event.
- "schedule" when it runs on a timer or recurring interval.
- "manual" only when the user explicitly wants to start it by hand, or nothing else fits.

User request: %s`

// Extract runs the full extraction pipeline: one LLM call, tolerant JSON
// parsing with a default-intent fallback, rule-based correction, and
// confidence scoring. Only a transport-level LLM failure returns an error;
// malformed LLM output degrades to the default intent instead.
func (e *Extractor) Extract(ctx context.Context, userRequest string) (Result, error) {
	raw, err := e.llm.GenerateText(ctx, fmt.Sprintf(extractionPrompt, userRequest))
	if err != nil {
		e.l.Errorf(ctx, "intent.Extract: LLM call failed: %v", err)
		return Result{}, fmt.Errorf("intent extraction LLM call failed: %w", err)
	}

	parsed, ok := parseIntentJSON(stripCodeFence(raw))
	if !ok {
		e.l.Warnf(ctx, "intent.Extract: unparseable LLM output, using default intent: %.120s", raw)
		parsed = DefaultIntent(userRequest)
	}

	corrected, corrections := Correct(parsed, userRequest)
	confidence := Score(corrected, userRequest)

	if len(corrections) > 0 {
		e.l.Infof(ctx, "intent.Extract: applied %d corrections: %v", len(corrections), corrections)
	}
	e.l.Debugf(ctx, "intent.Extract: confidence=%.2f intent=%+v", confidence, corrected)

	return Result{
		Intent:      corrected,
		Confidence:  confidence,
		Corrections: corrections,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, from LLM output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line (e.g. "json")
		if !strings.Contains(s[:idx], "{") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// rawIntent tolerates common LLM shape mistakes: string lists emitted as a
// single string, missing fields, nulls.
type rawIntent struct {
	Integrations json.RawMessage `json:"integrations"`
	TriggerType  string          `json:"trigger_type"`
	Action       string          `json:"action"`
	Requirements json.RawMessage `json:"requirements"`
}

func parseIntentJSON(s string) (Intent, bool) {
	var raw rawIntent
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return Intent{}, false
	}
	triggerType := strings.ToLower(strings.TrimSpace(raw.TriggerType))
	if triggerType == "" {
		triggerType = TriggerManual
	}
	return Intent{
		Integrations: coerceStringList(raw.Integrations),
		TriggerType:  triggerType,
		Action:       strings.TrimSpace(raw.Action),
		Requirements: coerceStringList(raw.Requirements),
	}, true
}

func coerceStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{}
}
