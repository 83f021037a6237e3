package middleware

import (
	pkgLog "portfolio-chatbot/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
