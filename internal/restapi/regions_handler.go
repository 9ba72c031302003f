package restapi

import (
	"net/http"

	"covidstat.mindtree.org/internal/models"
	"covidstat.mindtree.org/internal/utils"
)

func (api *RestAPI) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regions := api.Analyzer.Regions(api.Records)
	api.sendResponse(w, r, models.NewListResponse(regions))
}

func (api *RestAPI) subRegionsHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractCodeFromParams(r, "code")

	if err := utils.ValidateRegionCode(code); err != nil {
		fieldErrors := map[string][]string{
			"code": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	subRegions, err := api.Analyzer.SubRegionsFor(code, api.Records)
	if err != nil {
		api.reportFailureResponse(w, r, "sub_regions", err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.SubRegionListing{
		Region:     code,
		SubRegions: subRegions,
	}))
}
