package webui

import "covidstat.mindtree.org/internal/app"

// WebUI serves HTML debug views of the loaded dataset.
type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
