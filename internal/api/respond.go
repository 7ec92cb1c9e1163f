package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/mmynk/restapis/internal/middleware"
	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
	"github.com/mmynk/restapis/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid JSON body")

// responder writes JSON bodies and maps errors to statuses.
type responder struct {
	strict bool
}

// JSONResponse writes data as a JSON response.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a {"message"} body.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.MessageResponse{Message: message})
}

// decodeJSON reads the request body into v and validates it. Syntax errors
// return errInvalidJSON; rule violations return a *validation.RequestValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}

	if verr := validation.ValidateStruct(v); verr != nil {
		return verr
	}
	return nil
}

// status maps err to an HTTP status and a client-facing message.
func (rs responder) status(err error) (int, string) {
	var domainErr *service.Error
	var verr *validation.RequestValidationError

	switch {
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, "Invalid JSON"

	case errors.As(err, &domainErr):
		if !rs.strict {
			return http.StatusUnauthorized, domainErr.Message
		}
		switch domainErr.Kind {
		case service.KindNotFound:
			return http.StatusNotFound, domainErr.Message
		case service.KindConflict:
			return http.StatusConflict, domainErr.Message
		default:
			return http.StatusUnauthorized, domainErr.Message
		}

	case errors.As(err, &verr):
		if rs.strict {
			return http.StatusBadRequest, verr.Error()
		}
		return http.StatusNotImplemented, fmt.Sprintf("Database Exception: %v", verr)

	case service.IsStoreError(err):
		return http.StatusNotImplemented, fmt.Sprintf("Database Exception: %v", err)

	default:
		return http.StatusInternalServerError, fmt.Sprintf("Server Exception: %v", err)
	}
}

// writeError logs err and writes its mapped status and message.
func (rs responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := rs.status(err)
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", code,
		"error", err,
		"request_id", middleware.GetRequestID(r.Context()),
	}
	if code >= http.StatusInternalServerError {
		slog.Error("Request error", attrs...)
	} else {
		slog.Debug("Request error", attrs...)
	}
	ErrorResponse(w, code, message)
}
