package utils

import (
	"encoding/json"
	"net/http"

	"TRIPVANA_BACK-END/internal/core"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, detail string) {
	WriteJSONResponse(w, status, ErrorBody{Error: errMsg, Message: detail})
}

// WriteCoreError maps a tagged core error to an HTTP response. Unknown
// errors become 500s without leaking internals.
func WriteCoreError(w http.ResponseWriter, err error) {
	kind := core.KindOf(err)
	status, label := http.StatusInternalServerError, "Internal error"
	switch kind {
	case core.KindNotFound:
		status, label = http.StatusNotFound, "Not Found"
	case core.KindPermissionDenied:
		status, label = http.StatusForbidden, "Forbidden"
	case core.KindInvalidTransition, core.KindInvalidState,
		core.KindValidation, core.KindInsufficientCapacity,
		core.KindCapacityViolation:
		status, label = http.StatusBadRequest, "Validation error"
	case core.KindDuplicateRequest, core.KindConflict:
		status, label = http.StatusConflict, "Conflict"
	}
	if status == http.StatusInternalServerError {
		WriteErrorResponse(w, status, label, "unexpected error")
		return
	}
	WriteErrorResponse(w, status, label, err.Error())
}

// DecodeJSONRequest decodes the request body into dst, writing the
// error response itself on failure.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return err
	}
	return nil
}
