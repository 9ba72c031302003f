package restapi

import (
	"net/http"
	"time"

	"covidstat.mindtree.org/internal/app"
)

// RestAPI serves read-only report endpoints over the loaded record collection.
type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
