package _routers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/limits"
)

// LimitAuthAttempts rejects the request when the client address has used up
// its login and registration allowance for the current window.
func LimitAuthAttempts(generator GeneratorFn) GeneratorFn {
	return func(r *http.Request, ctx rcontext.RequestContext) interface{} {
		limiter := limits.GetAuthLimiter()
		if limiter != nil {
			allowed, resetAt := limiter.Allow(r.RemoteAddr)
			if !allowed {
				ctx.Log.WithFields(logrus.Fields{"resetAt": resetAt}).Warn("Too many authentication attempts")
				return _responses.RateLimitReached()
			}
		}
		return generator(r, ctx)
	}
}
