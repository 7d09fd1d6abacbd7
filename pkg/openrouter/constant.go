package openrouter

import "time"

const (
	// DefaultModel is the default OpenRouter model
	DefaultModel = "openai/gpt-4o-mini"

	// DefaultBaseURL is the OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// refererHeader is required by OpenRouter to identify the calling app
	refererHeader = "http://localhost:8080"

	// titleHeader shows up in the OpenRouter dashboard
	titleHeader = "Workflow Automation Agent"
)
