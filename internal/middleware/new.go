package middleware

import (
	"table-checkbox-sync/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
