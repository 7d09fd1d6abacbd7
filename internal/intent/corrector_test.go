package intent

import (
	"reflect"
	"testing"
)

func TestCorrect(t *testing.T) {
	t.Run("Nil Slices Coerced", func(t *testing.T) {
		out, _ := Correct(Intent{TriggerType: TriggerManual, Action: "do something"}, "do something")
		if out.Integrations == nil {
			t.Error("expected integrations to be coerced to empty slice")
		}
		if out.Requirements == nil {
			t.Error("expected requirements to be coerced to empty slice")
		}
	})

	t.Run("Webhook Injection", func(t *testing.T) {
		out, corrections := Correct(Intent{
			Integrations: []string{"Slack"},
			TriggerType:  TriggerManual,
			Action:       "post to slack",
		}, "Create a webhook that posts to Slack when triggered")

		if !containsIntegration(out.Integrations, "Webhook") {
			t.Errorf("expected Webhook to be injected, got %v", out.Integrations)
		}
		if !containsIntegration(out.Integrations, "Slack") {
			t.Errorf("expected Slack to be preserved, got %v", out.Integrations)
		}
		if out.TriggerType != TriggerWebhook {
			t.Errorf("expected trigger type webhook, got %s", out.TriggerType)
		}
		if len(corrections) < 2 {
			t.Errorf("expected at least 2 corrections, got %v", corrections)
		}
	})

	t.Run("Schedule Injection", func(t *testing.T) {
		out, _ := Correct(Intent{
			Integrations: []string{"Google Drive"},
			TriggerType:  TriggerManual,
			Action:       "back up files",
		}, "Back up my files to Google Drive every day at midnight")

		if !containsIntegration(out.Integrations, "Schedule") {
			t.Errorf("expected Schedule to be injected, got %v", out.Integrations)
		}
		if out.TriggerType != TriggerSchedule {
			t.Errorf("expected trigger type schedule, got %s", out.TriggerType)
		}
	})

	t.Run("Alias Normalization", func(t *testing.T) {
		out, corrections := Correct(Intent{
			Integrations: []string{"gmail", "Slack"},
			TriggerType:  TriggerManual,
			Action:       "forward mail",
		}, "forward important gmail messages to Slack")

		if !containsIntegration(out.Integrations, "Email") {
			t.Errorf("expected gmail normalized to Email, got %v", out.Integrations)
		}
		if containsIntegration(out.Integrations, "gmail") {
			t.Errorf("expected raw gmail removed, got %v", out.Integrations)
		}

		found := false
		for _, c := range corrections {
			if c == "Normalized 'gmail' to 'Email'" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected normalization correction, got %v", corrections)
		}
	})

	t.Run("Duplicates Removed", func(t *testing.T) {
		out, corrections := Correct(Intent{
			Integrations: []string{"gmail", "outlook", "Slack"},
			TriggerType:  TriggerManual,
			Action:       "merge inboxes",
		}, "merge my gmail and outlook inboxes into Slack")

		count := 0
		for _, integration := range out.Integrations {
			if integration == "Email" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected exactly one Email after dedupe, got %v", out.Integrations)
		}

		found := false
		for _, c := range corrections {
			if c == "Removed duplicate integrations" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected dedupe correction, got %v", corrections)
		}
	})

	t.Run("No Overwrite On Weak Evidence", func(t *testing.T) {
		// "automatically" matches exactly one schedule indicator. A
		// non-manual original trigger must survive single-pattern evidence.
		out, _ := Correct(Intent{
			Integrations: []string{},
			TriggerType:  TriggerWebhook,
			Action:       "sync new records",
		}, "automatically sync new records to the crm")

		if out.TriggerType != TriggerWebhook {
			t.Errorf("expected webhook to survive weak evidence, got %s", out.TriggerType)
		}
	})

	t.Run("No Evidence Leaves Trigger Untouched", func(t *testing.T) {
		out, corrections := Correct(Intent{
			Integrations: []string{"Notion"},
			TriggerType:  TriggerTriggered,
			Action:       "organize notes",
		}, "organize my notion notes")

		if out.TriggerType != TriggerTriggered {
			t.Errorf("expected unknown trigger preserved, got %s", out.TriggerType)
		}
		if len(corrections) != 0 {
			t.Errorf("expected no corrections, got %v", corrections)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		request := "Create a webhook that posts to Slack when triggered"
		once, _ := Correct(Intent{
			Integrations: []string{"Slack"},
			TriggerType:  TriggerManual,
			Action:       "post to slack",
		}, request)

		twice, corrections := Correct(once, request)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second pass changed the intent: %+v vs %+v", once, twice)
		}
		if len(corrections) != 0 {
			t.Errorf("expected no corrections on second pass, got %v", corrections)
		}
	})
}
