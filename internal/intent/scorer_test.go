package intent

import "testing"

func TestScore(t *testing.T) {
	t.Run("Well Grounded Intent Scores High", func(t *testing.T) {
		request := "Create a webhook that posts to Slack when triggered"
		in := Intent{
			Integrations: []string{"Slack", "Webhook"},
			TriggerType:  TriggerWebhook,
			Action:       "post a message to Slack on webhook events",
			Requirements: []string{},
		}
		score := Score(in, request)
		if score < 0.7 {
			t.Errorf("expected score >= 0.7, got %.2f", score)
		}
		if score > 1.0 {
			t.Errorf("score exceeds 1.0: %.2f", score)
		}
	})

	t.Run("Default Intent Scores Low", func(t *testing.T) {
		request := "Create a webhook that posts to Slack when triggered"
		score := Score(DefaultIntent(request), request)
		if score >= 0.7 {
			t.Errorf("expected low score for default intent, got %.2f", score)
		}
		if score < 0 {
			t.Errorf("score below 0: %.2f", score)
		}
	})

	t.Run("Empty Integrations Get No Structural Credit", func(t *testing.T) {
		score := Score(Intent{
			Integrations: []string{},
			TriggerType:  TriggerManual,
			Action:       "archive the quarterly reports",
		}, "xyzzy")
		if score > weightAction {
			t.Errorf("expected at most action-quality credit %.1f, got %.2f", weightAction, score)
		}
	})

	t.Run("Unmentioned Integrations Penalized", func(t *testing.T) {
		request := "send slack alerts"
		mentioned := Score(Intent{
			Integrations: []string{"Slack"},
			TriggerType:  TriggerManual,
			Action:       "send alert messages to slack",
		}, request)
		unmentioned := Score(Intent{
			Integrations: []string{"Jira"},
			TriggerType:  TriggerManual,
			Action:       "send alert messages to slack",
		}, request)
		if mentioned <= unmentioned {
			t.Errorf("expected mentioned integrations to score higher: %.2f vs %.2f", mentioned, unmentioned)
		}
	})

	t.Run("Naive Plural Counts As Mention", func(t *testing.T) {
		request := "collect webhooks into a log"
		score := Score(Intent{
			Integrations: []string{"Webhook"},
			TriggerType:  TriggerWebhook,
			Action:       "collect incoming webhook payloads",
		}, request)
		low := Score(Intent{
			Integrations: []string{"Teams"},
			TriggerType:  TriggerWebhook,
			Action:       "collect incoming webhook payloads",
		}, request)
		if score <= low {
			t.Errorf("expected plural mention to raise score: %.2f vs %.2f", score, low)
		}
	})

	t.Run("Echoed Action Gets No Quality Credit", func(t *testing.T) {
		request := "please do the thing with all the stuff"
		echoed := Score(Intent{
			Integrations: []string{},
			TriggerType:  TriggerManual,
			Action:       request,
		}, request)
		summarized := Score(Intent{
			Integrations: []string{},
			TriggerType:  TriggerManual,
			Action:       "run the stuff processing task",
		}, request)
		if summarized <= echoed {
			t.Errorf("expected summarized action to score higher: %.2f vs %.2f", summarized, echoed)
		}
	})

	t.Run("Always In Unit Range", func(t *testing.T) {
		intents := []Intent{
			{},
			{TriggerType: TriggerWebhook},
			{Integrations: []string{"A", "B", "C"}, TriggerType: TriggerSchedule, Action: "x"},
			{Integrations: []string{"Webhook", "Slack", "Email"}, TriggerType: TriggerWebhook,
				Action: "a very descriptive action summary"},
		}
		for _, in := range intents {
			score := Score(in, "daily webhook slack email form submit payload")
			if score < 0 || score > 1 {
				t.Errorf("score out of range for %+v: %.2f", in, score)
			}
		}
	})
}
