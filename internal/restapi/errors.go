package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"covidstat.mindtree.org/internal/analysis"
	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/models"
)

// errorResponse is the envelope for failures that carry no data.
type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := errorResponse{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))

	response := errorResponse{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// reportFailureResponse answers a failed report pipeline. Malformed input is
// a 400 keyed by query parameter; an empty selection or result is a 404.
func (api *RestAPI) reportFailureResponse(w http.ResponseWriter, r *http.Request, report string, err error) {
	var validationErr *analysis.ValidationError
	if !errors.As(err, &validationErr) {
		api.serverErrorResponse(w, r, err)
		return
	}

	logging.LogReportAborted(logging.FromContext(r.Context()), report, err)

	switch {
	case errors.Is(err, analysis.ErrMalformedDate),
		errors.Is(err, analysis.ErrInvertedDateRange),
		errors.Is(err, analysis.ErrMalformedOption):
		api.validationErrorResponse(w, r, map[string][]string{
			queryParamFor(validationErr.Field): {validationErr.Message},
		})
	default:
		api.sendNotFoundText(w, r, validationErr.Message)
	}
}

func queryParamFor(field analysis.Field) string {
	switch field {
	case analysis.FieldRegion:
		return "code"
	case analysis.FieldFirstRegion:
		return "first"
	case analysis.FieldSecondRegion:
		return "second"
	case analysis.FieldStartDate:
		return "start"
	case analysis.FieldEndDate:
		return "end"
	case analysis.FieldDateRange:
		return "dateRange"
	default:
		return string(field)
	}
}
