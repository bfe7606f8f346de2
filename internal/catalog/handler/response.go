package handler

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    errors.ErrorType `json:"code"`
	Message string           `json:"message"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of the probe endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// maxBodyBytes caps request bodies; items are small.
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, v interface{}, log interfaces.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal JSON response", interfaces.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Error("Failed to write JSON response", interfaces.Error(err))
	}
}

func respondError(w http.ResponseWriter, err error, log interfaces.Logger) {
	status := statusFor(err)
	errType := errors.TypeOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			interfaces.String("code", string(errType)),
			interfaces.Error(err))
	}
	respondJSON(w, status, ErrorResponse{
		Code:    errType,
		Message: errors.MessageOf(err),
	}, log)
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.ErrorTypeValidation, errors.ErrorTypeBadRequest:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeLookup:
		return http.StatusBadGateway
	case errors.ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads r's body into dst. Any failure is a BAD_REQUEST.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errors.BadRequest("could not read request body")
	}
	if len(body) == 0 {
		return errors.BadRequest("request body is required")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.BadRequest("malformed JSON body: " + err.Error())
	}
	return nil
}
