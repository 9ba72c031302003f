package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"covidstat.mindtree.org/internal/appconf"
	"covidstat.mindtree.org/internal/webui"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every report endpoint on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/regions.json", validateAPIKey(api, api.regionsHandler))
	router.Handler(http.MethodGet, "/api/where/sub-regions/:code", validateAPIKey(api, api.subRegionsHandler))
	router.Handler(http.MethodGet, "/api/where/confirmed-by-date.json", validateAPIKey(api, api.confirmedByDateHandler))
	router.Handler(http.MethodGet, "/api/where/compare.json", validateAPIKey(api, api.compareHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Routes returns the router wrapped in request logging, security headers,
// compression and rate limiting. Debug pages are mounted outside production.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	if api.Config.Env != appconf.Production {
		webui.New(api.Application).SetWebUIRoutes(router)
	}

	var handler http.Handler = router
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
