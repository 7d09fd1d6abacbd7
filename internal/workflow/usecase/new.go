package usecase

import (
	"time"

	"workflow-automation-agent/internal/intent"
	"workflow-automation-agent/internal/workflow/repository"
	pkgLog "workflow-automation-agent/pkg/log"
	"workflow-automation-agent/pkg/n8n"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       intent.TextGenerator
	extractor *intent.Extractor
	repo      repository.TemplateRepository
	engine    n8n.IN8n

	confidenceThreshold float64
	maxRetries          int
	retryDelay          time.Duration
}

// New creates a new workflow agent UseCase instance.
func New(
	l pkgLog.Logger,
	llm intent.TextGenerator,
	extractor *intent.Extractor,
	repo repository.TemplateRepository,
	engine n8n.IN8n,
	confidenceThreshold float64,
	maxRetries int,
	retryDelay time.Duration,
) *implUseCase {
	return &implUseCase{
		l:                   l,
		llm:                 llm,
		extractor:           extractor,
		repo:                repo,
		engine:              engine,
		confidenceThreshold: confidenceThreshold,
		maxRetries:          maxRetries,
		retryDelay:          retryDelay,
	}
}
