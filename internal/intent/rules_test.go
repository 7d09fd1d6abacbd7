package intent

import "testing"

func TestTriggerEvidence(t *testing.T) {
	t.Run("Webhook Signals", func(t *testing.T) {
		scores := TriggerEvidence("send a message when a form submit event comes in via webhook")
		if scores[TriggerWebhook] < 2 {
			t.Errorf("expected strong webhook evidence, got %v", scores)
		}
	})

	t.Run("Schedule Signals", func(t *testing.T) {
		scores := TriggerEvidence("run this daily and weekly on a schedule")
		if scores[TriggerSchedule] < 2 {
			t.Errorf("expected strong schedule evidence, got %v", scores)
		}
	})

	t.Run("No Signals", func(t *testing.T) {
		scores := TriggerEvidence("organize my notes")
		if len(scores) != 0 {
			t.Errorf("expected empty evidence map, got %v", scores)
		}
	})
}

func TestResolveTriggerType(t *testing.T) {
	tcs := []struct {
		name     string
		original string
		text     string
		want     string
		changed  bool
	}{
		{
			name:     "Manual Overwritten On Any Evidence",
			original: TriggerManual,
			text:     "post to slack via webhook",
			want:     TriggerWebhook,
			changed:  true,
		},
		{
			name:     "Non Manual Needs Strong Evidence",
			original: TriggerWebhook,
			text:     "automatically sync records",
			want:     TriggerWebhook,
			changed:  false,
		},
		{
			name:     "Non Manual Overwritten On Strong Evidence",
			original: TriggerWebhook,
			text:     "run daily on a schedule",
			want:     TriggerSchedule,
			changed:  true,
		},
		{
			name:     "No Evidence Keeps Original",
			original: TriggerTriggered,
			text:     "organize my notes",
			want:     TriggerTriggered,
			changed:  false,
		},
		{
			name:     "Matching Best Is Not A Change",
			original: TriggerSchedule,
			text:     "run daily on a schedule",
			want:     TriggerSchedule,
			changed:  false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := resolveTriggerType(tc.original, tc.text)
			if got != tc.want || changed != tc.changed {
				t.Errorf("resolveTriggerType(%q, %q) = (%q, %v), want (%q, %v)",
					tc.original, tc.text, got, changed, tc.want, tc.changed)
			}
		})
	}
}

func TestTriggerPatternCount(t *testing.T) {
	if n := triggerPatternCount(TriggerTriggered, "whatever text"); n != 0 {
		t.Errorf("expected 0 for unknown trigger type, got %d", n)
	}
	if n := triggerPatternCount(TriggerSchedule, "run daily at 9:00 on a cron schedule"); n < 3 {
		t.Errorf("expected at least 3 schedule matches, got %d", n)
	}
}
