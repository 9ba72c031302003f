package restapi

import (
	"net/http"

	"covidstat.mindtree.org/internal/models"
	"covidstat.mindtree.org/internal/utils"
)

// confirmedByDateHandler sums confirmed cases per date and region for dates
// strictly between start and end.
func (api *RestAPI) confirmedByDateHandler(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := utils.RequiredParams(r.URL.Query(), nil, "start", "end")
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	start, end, err := api.Analyzer.ParseDateRange(params["start"], params["end"])
	if err != nil {
		api.reportFailureResponse(w, r, "confirmed_by_date", err)
		return
	}

	aggregate, err := api.Analyzer.DateRangeReport(api.Records, start, end)
	if err != nil {
		api.reportFailureResponse(w, r, "confirmed_by_date", err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(aggregate.Rows()))
}
