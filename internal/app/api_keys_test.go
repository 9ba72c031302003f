package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"covidstat.mindtree.org/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	app := &Application{Config: appconf.Config{ApiKeys: []string{"alpha", "beta"}}}

	assert.False(t, app.IsInvalidAPIKey("beta"))
	assert.True(t, app.IsInvalidAPIKey("gamma"))
	assert.True(t, app.IsInvalidAPIKey("BETA"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{Config: appconf.Config{ApiKeys: []string{"test"}}}

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/regions.json?key=test", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/regions.json?key=nope", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/regions.json", nil)))
}
