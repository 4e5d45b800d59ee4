package middleware

import (
	"taskboard-api/pkg/log"
	"taskboard-api/pkg/scope"
)

// Config holds the credentials and limits the middleware enforces.
type Config struct {
	// APIUser and APIToken are the Basic credentials of the application
	// scope. An empty APIToken disables Basic auth.
	APIUser  string
	APIToken string

	// RequestsPerMin is the per-client budget; 0 disables limiting.
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	apiUser    string
	apiToken   string
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
		apiUser:    cfg.APIUser,
		apiToken:   cfg.APIToken,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
