package intent

import "regexp"

// Rule tables for detecting integration signals and trigger types in the raw
// request text. These compensate for systematic LLM misclassification:
// missing Webhook/Form/Schedule integrations and the default-to-manual
// trigger mistake. All tables are constant after init.

// integrationAliases maps service-specific names to canonical integration names.
var integrationAliases = map[string]string{
	// Email services
	"gmail":   "Email",
	"outlook": "Email",
	"email":   "Email",
	"mail":    "Email",

	// Database services
	"mysql":      "Database",
	"postgresql": "Database",
	"postgres":   "Database",
	"mongodb":    "Database",
	"sqlite":     "Database",

	// Storage services
	"dropbox":      "Storage",
	"google drive": "Storage",
	"onedrive":     "Storage",

	// Messaging services
	"teams":           "Teams",
	"microsoft teams": "Teams",

	// Sheet services
	"google sheets": "Sheets",
	"excel":         "Sheets",
	"spreadsheet":   "Sheets",
}

var webhookPatterns = compileAll(
	`\bwebhook\b`,
	`\bhook\b`,
	`\bhttp.*callback\b`,
	`\bevent.*trigger\b`,
	`\bpayload\b`,
	`\bpost.*endpoint\b`,
	`\bincoming.*data\b`,
	`\bapi.*call\b`,
)

var formPatterns = compileAll(
	`\bform\b`,
	`\bsubmission\b`,
	`\bsubmit\b`,
	`\bcontact.*form\b`,
	`\bform.*data\b`,
	`\buser.*input\b`,
)

var schedulePatterns = compileAll(
	`\bschedule\b`,
	`\bdaily\b`,
	`\bweekly\b`,
	`\bmonthly\b`,
	`\bhourly\b`,
	`\bevery\b`,
	`\bcron\b`,
	`\btimer\b`,
	`\bautomated?\b`,
	`\bregular\b`,
)

// triggerIndicators holds the evidence patterns per candidate trigger type.
// Iteration order matters for deterministic argmax tie-breaking.
var triggerIndicators = []struct {
	triggerType string
	patterns    []*regexp.Regexp
}{
	{TriggerWebhook, compileAll(
		`\bwhen\s+\w+\s+happens?\b`,
		`\bon\s+\w+\s+submission\b`,
		`\bwebhook\b`,
		`\bform.*submit\b`,
		`\bincoming\b`,
		`\breceive.*data\b`,
		`\bapi.*call\b`,
		`\bevent.*trigger\b`,
	)},
	{TriggerSchedule, compileAll(
		`\bevery\s+(day|hour|week|month)\b`,
		`\bdaily\b`,
		`\bweekly\b`,
		`\bmonthly\b`,
		`\bhourly\b`,
		`\bschedule\b`,
		`\bcron\b`,
		`\bautomatically\b`,
		`\bat\s+\d+:\d+\b`,
	)},
	{TriggerManual, compileAll(
		`\bmanually?\b`,
		`\blet\s+me\s+(run|start|trigger)\b`,
		`\bi\s+want\s+to\s+(run|start|trigger)\b`,
		`\bstart\s+manually?\b`,
		`\brun\s+on\s+demand\b`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return res
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func countMatching(patterns []*regexp.Regexp, text string) int {
	count := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			count++
		}
	}
	return count
}

// TriggerEvidence returns, for each trigger type with at least one pattern
// match, the number of matching indicator patterns.
func TriggerEvidence(text string) map[string]int {
	scores := make(map[string]int)
	for _, ti := range triggerIndicators {
		if n := countMatching(ti.patterns, text); n > 0 {
			scores[ti.triggerType] = n
		}
	}
	return scores
}

// triggerPatternCount returns the indicator match count for one trigger type,
// or 0 if the type has no indicator table (e.g. "triggered").
func triggerPatternCount(triggerType, text string) int {
	for _, ti := range triggerIndicators {
		if ti.triggerType == triggerType {
			return countMatching(ti.patterns, text)
		}
	}
	return 0
}

// resolveTriggerType applies the correction policy: overwrite the original
// trigger type only on strong evidence (score > 1), or on any evidence when
// the original is the "manual" fallback the LLM commonly defaults to.
// Returns the resolved type and whether it differs from the original.
func resolveTriggerType(original, text string) (string, bool) {
	best := ""
	bestScore := 0
	for _, ti := range triggerIndicators {
		if n := countMatching(ti.patterns, text); n > bestScore {
			best = ti.triggerType
			bestScore = n
		}
	}

	if bestScore == 0 {
		return original, false
	}

	if bestScore > 1 || (original == TriggerManual && bestScore >= 1) {
		if best != original {
			return best, true
		}
	}

	return original, false
}
