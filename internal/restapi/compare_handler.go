package restapi

import (
	"net/http"

	"covidstat.mindtree.org/internal/models"
	"covidstat.mindtree.org/internal/utils"
)

// compareHandler lists both regions' confirmed totals side by side for each
// date in (start, end). Rows keep the comparison's key order.
func (api *RestAPI) compareHandler(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := utils.RequiredParams(r.URL.Query(), nil, "first", "second", "start", "end")
	for _, key := range []string{"first", "second"} {
		code, ok := params[key]
		if !ok {
			continue
		}
		if err := utils.ValidateRegionCode(code); err != nil {
			fieldErrors[key] = append(fieldErrors[key], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	start, end, err := api.Analyzer.ParseDateRange(params["start"], params["end"])
	if err != nil {
		api.reportFailureResponse(w, r, "compare_regions", err)
		return
	}

	comparison, err := api.Analyzer.CompareReport(api.Records, params["first"], params["second"], start, end)
	if err != nil {
		api.reportFailureResponse(w, r, "compare_regions", err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(comparison.Rows()))
}
