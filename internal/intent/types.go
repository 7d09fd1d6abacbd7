package intent

// Trigger type values the corrector is allowed to produce.
const (
	TriggerWebhook   = "webhook"
	TriggerSchedule  = "schedule"
	TriggerManual    = "manual"
	TriggerTriggered = "triggered"
)

// Intent is the structured representation of the automation the user wants.
// It is produced by LLM extraction, corrected in place by the rule-based
// corrector, and treated as immutable afterwards.
type Intent struct {
	Integrations []string `json:"integrations"`
	TriggerType  string   `json:"trigger_type"`
	Action       string   `json:"action"`
	Requirements []string `json:"requirements"`
}

// DefaultIntent is the fallback when LLM extraction output is unparseable.
// The raw user text becomes the action so downstream search still has
// something to work with.
func DefaultIntent(userRequest string) Intent {
	return Intent{
		Integrations: []string{},
		TriggerType:  TriggerManual,
		Action:       userRequest,
		Requirements: []string{},
	}
}

// Result is the full output of one extraction pass.
type Result struct {
	Intent      Intent
	Confidence  float64
	Corrections []string
}
