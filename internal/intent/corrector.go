package intent

import (
	"fmt"
	"strings"
)

// Correct validates and corrects an LLM-extracted intent against the rule
// tables. It is a pure function of (intent, userRequest): no I/O, never
// fails, malformed fields are coerced to empty defaults.
//
// The pass order is fixed: signal injection must run before normalization
// so injected canonical names survive the alias pass, and trigger
// re-evaluation must see the normalized integration set. Deduplication runs
// last so it also catches duplicates produced by normalization.
//
// Returns the corrected intent and a human-readable record of every edit.
func Correct(in Intent, userRequest string) (Intent, []string) {
	corrections := []string{}
	requestLower := strings.ToLower(userRequest)

	// 1. Coerce integrations to a well-formed list.
	if in.Integrations == nil {
		in.Integrations = []string{}
	}
	if in.Requirements == nil {
		in.Requirements = []string{}
	}

	// 2-4. Inject integrations the LLM missed but the text clearly mentions.
	if matchesAny(webhookPatterns, requestLower) && !containsIntegration(in.Integrations, "Webhook") {
		in.Integrations = append(in.Integrations, "Webhook")
		corrections = append(corrections, "Added missing Webhook integration")
	}
	if matchesAny(formPatterns, requestLower) && !containsIntegration(in.Integrations, "Form") {
		in.Integrations = append(in.Integrations, "Form")
		corrections = append(corrections, "Added missing Form integration")
	}
	if matchesAny(schedulePatterns, requestLower) && !containsIntegration(in.Integrations, "Schedule") {
		in.Integrations = append(in.Integrations, "Schedule")
		corrections = append(corrections, "Added missing Schedule integration")
	}

	// 5. Normalize service-specific names to canonical integrations.
	for i, integration := range in.Integrations {
		canonical, ok := integrationAliases[strings.ToLower(integration)]
		if ok && canonical != integration {
			in.Integrations[i] = canonical
			corrections = append(corrections, fmt.Sprintf("Normalized '%s' to '%s'", integration, canonical))
		}
	}

	// 6. Re-evaluate the trigger type against the indicator tables.
	if resolved, changed := resolveTriggerType(in.TriggerType, requestLower); changed {
		corrections = append(corrections,
			fmt.Sprintf("Corrected trigger type from '%s' to '%s'", in.TriggerType, resolved))
		in.TriggerType = resolved
	}

	// 7. Deduplicate integrations.
	deduped := dedupe(in.Integrations)
	if len(deduped) < len(in.Integrations) {
		corrections = append(corrections, "Removed duplicate integrations")
	}
	in.Integrations = deduped

	return in, corrections
}

func containsIntegration(integrations []string, name string) bool {
	for _, integration := range integrations {
		if integration == name {
			return true
		}
	}
	return false
}

func dedupe(integrations []string) []string {
	seen := make(map[string]bool, len(integrations))
	out := make([]string, 0, len(integrations))
	for _, integration := range integrations {
		if seen[integration] {
			continue
		}
		seen[integration] = true
		out = append(out, integration)
	}
	return out
}
