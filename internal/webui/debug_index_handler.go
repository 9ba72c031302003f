package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

// datasetSummary is the overview shown by default.
type datasetSummary struct {
	Records    int
	Regions    int
	FirstDate  string
	LatestDate string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "", "summary":
		data = webUI.summary()
		title = "Dataset - Summary"
	case "regions":
		data = webUI.Analyzer.Regions(webUI.Records)
		title = "Dataset - Regions"
	case "sub_regions":
		data = webUI.Analyzer.SubRegions(webUI.Records)
		title = "Dataset - Sub-regions"
	case "records":
		data = webUI.Records
		title = "Dataset - Records"
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = nil
		cfg.DBDSN = ""
		data = cfg
		title = "Runtime - Config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, regions, sub_regions, records, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func (webUI *WebUI) summary() datasetSummary {
	summary := datasetSummary{
		Records: len(webUI.Records),
		Regions: len(webUI.Analyzer.Regions(webUI.Records)),
	}
	for i, record := range webUI.Records {
		key := record.DateKey()
		if i == 0 || key < summary.FirstDate {
			summary.FirstDate = key
		}
		if key > summary.LatestDate {
			summary.LatestDate = key
		}
	}
	return summary
}
