package inmem

import (
	"context"
	"errors"
	"testing"

	"workflow-automation-agent/internal/workflow"
)

func TestSearch(t *testing.T) {
	repo := New()

	t.Run("Integration Match", func(t *testing.T) {
		candidates, err := repo.Search(context.Background(), "post to slack when gmail arrives")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) == 0 {
			t.Fatal("expected at least one candidate")
		}
		if candidates[0].ID != "gmail-slack-notify" {
			t.Errorf("expected gmail-slack-notify first, got %s", candidates[0].ID)
		}
	})

	t.Run("Webhook Match", func(t *testing.T) {
		candidates, err := repo.Search(context.Background(), "alert discord on webhook")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, c := range candidates {
			if c.ID == "webhook-discord-alert" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected webhook-discord-alert in %v", candidates)
		}
	})

	t.Run("No Match Falls Back To Generic Suggestions", func(t *testing.T) {
		candidates, err := repo.Search(context.Background(), "xyzzy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 2 {
			t.Errorf("expected 2 fallback candidates, got %d", len(candidates))
		}
	})
}

func TestFetch(t *testing.T) {
	repo := New()

	t.Run("Known Template", func(t *testing.T) {
		def, err := repo.Fetch(context.Background(), "webhook-discord-alert")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if def["name"] != "Webhook to Discord Alert" {
			t.Errorf("unexpected definition name: %v", def["name"])
		}
		if _, ok := def["nodes"]; !ok {
			t.Error("expected nodes in definition")
		}
	})

	t.Run("Unknown Template", func(t *testing.T) {
		_, err := repo.Fetch(context.Background(), "nope")
		if !errors.Is(err, workflow.ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}
