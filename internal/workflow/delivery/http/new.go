package http

import (
	"workflow-automation-agent/internal/workflow"
	"workflow-automation-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the workflow agent domain.
func New(l log.Logger, uc workflow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
