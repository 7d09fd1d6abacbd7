package intent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockTextGenerator struct {
	generateTextFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return m.generateTextFunc(ctx, prompt)
}

func TestExtract(t *testing.T) {
	request := "Create a webhook that posts to Slack when triggered"

	t.Run("Valid JSON Output", func(t *testing.T) {
		e := NewExtractor(&mockLogger{}, &mockTextGenerator{
			generateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, request) {
					t.Errorf("expected user request in prompt")
				}
				return `{"integrations": ["Slack"], "trigger_type": "manual", "action": "post to slack", "requirements": []}`, nil
			},
		})

		res, err := e.Extract(context.Background(), request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsIntegration(res.Intent.Integrations, "Webhook") {
			t.Errorf("expected Webhook injected, got %v", res.Intent.Integrations)
		}
		if res.Intent.TriggerType != TriggerWebhook {
			t.Errorf("expected trigger webhook, got %s", res.Intent.TriggerType)
		}
		if len(res.Corrections) < 2 {
			t.Errorf("expected at least 2 corrections, got %v", res.Corrections)
		}
		if res.Confidence <= 0 || res.Confidence > 1 {
			t.Errorf("confidence out of range: %.2f", res.Confidence)
		}
	})

	t.Run("Fenced JSON Output", func(t *testing.T) {
		e := NewExtractor(&mockLogger{}, &mockTextGenerator{
			generateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n{\"integrations\": [\"Slack\"], \"trigger_type\": \"webhook\", \"action\": \"post to slack channel\", \"requirements\": []}\n```", nil
			},
		})

		res, err := e.Extract(context.Background(), request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsIntegration(res.Intent.Integrations, "Slack") {
			t.Errorf("expected Slack parsed from fenced output, got %v", res.Intent.Integrations)
		}
	})

	t.Run("Garbage Output Falls Back To Default", func(t *testing.T) {
		e := NewExtractor(&mockLogger{}, &mockTextGenerator{
			generateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Sure! Here is what I think the user wants...", nil
			},
		})

		res, err := e.Extract(context.Background(), request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// default intent still goes through correction, so the webhook
		// signals in the request text are recovered
		if res.Intent.TriggerType != TriggerWebhook {
			t.Errorf("expected corrected trigger webhook, got %s", res.Intent.TriggerType)
		}
		if !containsIntegration(res.Intent.Integrations, "Webhook") {
			t.Errorf("expected Webhook injected into default intent, got %v", res.Intent.Integrations)
		}
	})

	t.Run("String Instead Of List Coerced", func(t *testing.T) {
		e := NewExtractor(&mockLogger{}, &mockTextGenerator{
			generateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"integrations": "Slack", "trigger_type": "webhook", "action": "post to slack channel"}`, nil
			},
		})

		res, err := e.Extract(context.Background(), request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsIntegration(res.Intent.Integrations, "Slack") {
			t.Errorf("expected single string coerced to list, got %v", res.Intent.Integrations)
		}
		if res.Intent.Requirements == nil {
			t.Error("expected requirements coerced to empty slice")
		}
	})

	t.Run("LLM Failure Propagates", func(t *testing.T) {
		llmErr := errors.New("all providers failed")
		e := NewExtractor(&mockLogger{}, &mockTextGenerator{
			generateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", llmErr
			},
		})

		_, err := e.Extract(context.Background(), request)
		if !errors.Is(err, llmErr) {
			t.Fatalf("expected wrapped LLM error, got %v", err)
		}
	})
}

func TestStripCodeFence(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		want string
	}{
		{"No Fence", `{"a": 1}`, `{"a": 1}`},
		{"Plain Fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Language Tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Surrounding Whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.in); got != tc.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
