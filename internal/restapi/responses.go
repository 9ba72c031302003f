package restapi

import (
	"encoding/json"
	"net/http"

	"covidstat.mindtree.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendNotFoundText(w, r, "resource not found")
}

// sendNotFoundText sends a 404 whose text explains what was missing.
func (api *RestAPI) sendNotFoundText(w http.ResponseWriter, r *http.Request, text string) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	err := json.NewEncoder(w).Encode(models.NewResponse(http.StatusNotFound, nil, text))
	if err != nil {
		api.Logger.Error("failed to encode not found response", "error", err)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
