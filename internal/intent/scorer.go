package intent

import (
	"strings"
	"unicode/utf8"
)

// Confidence weights. They sum to 1.0 so the score stays in [0, 1].
const (
	weightStructural  = 0.3
	weightIntegration = 0.3
	weightTrigger     = 0.2
	weightAction      = 0.2
)

// Score computes a heuristic confidence in [0, 1] for a corrected intent.
// The value is a relative ranking signal for routing decisions, not a
// calibrated probability.
//
// Components:
//   - structural: integrations, trigger type, and action all non-empty (binary)
//   - integration evidence: fraction of claimed integrations mentioned in
//     the request text
//   - trigger evidence: indicator pattern matches for the claimed trigger,
//     saturating at two matches
//   - action quality: the action is a real summary, not empty or a verbatim
//     echo of the request
func Score(in Intent, userRequest string) float64 {
	score := 0.0
	requestLower := strings.ToLower(userRequest)

	if in.TriggerType != "" && in.Action != "" && len(in.Integrations) > 0 {
		score += weightStructural
	}

	if len(in.Integrations) > 0 {
		mentioned := 0
		for _, integration := range in.Integrations {
			if integrationMentioned(integration, requestLower) {
				mentioned++
			}
		}
		score += weightIntegration * float64(mentioned) / float64(len(in.Integrations))
	}

	matches := triggerPatternCount(in.TriggerType, requestLower)
	ratio := float64(matches) / 2.0
	if ratio > 1.0 {
		ratio = 1.0
	}
	score += weightTrigger * ratio

	if utf8.RuneCountInString(in.Action) > 10 && in.Action != userRequest {
		score += weightAction
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// integrationMentioned reports whether the lowercased request text contains
// the integration name literally, or its naive plural.
func integrationMentioned(integration, requestLower string) bool {
	nameLower := strings.ToLower(integration)
	return strings.Contains(requestLower, nameLower) ||
		strings.Contains(requestLower, nameLower+"s")
}
