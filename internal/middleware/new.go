package middleware

import (
	"golang.org/x/time/rate"

	pkgLog "rahalah/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerMin caps chat turns across all
// clients; zero disables rate limiting.
func New(l pkgLog.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
