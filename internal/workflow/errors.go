package workflow

import "errors"

// Domain-specific errors for the workflow package.
var (
	ErrEmptyQuery       = errors.New("query text is empty")
	ErrTemplateNotFound = errors.New("workflow template not found")
	ErrNoDefinition     = errors.New("template has no workflow definition")
)
