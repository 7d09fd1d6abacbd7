package usecase

import (
	"context"
	"strings"

	"workflow-automation-agent/internal/workflow"
	"workflow-automation-agent/pkg/n8n"
)

// Mock logger for testing
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

// mockLLM routes by prompt shape so one mock can serve extraction, candidate
// scoring, and response generation in a single pipeline run.
type mockLLM struct {
	extractReply  string
	extractErr    error
	scoreReply    string
	scoreErr      error
	responseReply string
	responseErr   error
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "intent extraction system"):
		return m.extractReply, m.extractErr
	case strings.Contains(prompt, "Rate how well"):
		return m.scoreReply, m.scoreErr
	default:
		return m.responseReply, m.responseErr
	}
}

type mockRepo struct {
	searchFunc func(ctx context.Context, query string) ([]workflow.Candidate, error)
	fetchFunc  func(ctx context.Context, id string) (workflow.Definition, error)
}

func (m *mockRepo) Search(ctx context.Context, query string) ([]workflow.Candidate, error) {
	return m.searchFunc(ctx, query)
}

func (m *mockRepo) Fetch(ctx context.Context, id string) (workflow.Definition, error) {
	return m.fetchFunc(ctx, id)
}

type mockEngine struct {
	createFunc func(ctx context.Context, definition map[string]interface{}, activate bool) (*n8n.Workflow, error)
}

func (m *mockEngine) CreateWorkflow(ctx context.Context, definition map[string]interface{}, activate bool) (*n8n.Workflow, error) {
	return m.createFunc(ctx, definition, activate)
}

func (m *mockEngine) BaseURL() string {
	return "http://n8n.test:5678"
}
