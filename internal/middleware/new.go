package middleware

import (
	"workflow-automation-agent/config"
	"workflow-automation-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cfg     config.RateLimitConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
