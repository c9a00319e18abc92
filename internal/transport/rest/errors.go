package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeInvalidModule       = "INVALID_MODULE"
	CodeUnknownField        = "UNKNOWN_FIELD"
	CodeValidation          = "VALIDATION"
	CodeInvalidBody         = "INVALID_BODY"
	CodePayloadTooLarge     = "PAYLOAD_TOO_LARGE"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeNotFound            = "NOT_FOUND"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// handleError maps domain errors to status codes. Anything unrecognised is
// logged and answered with a generic 500 so no query text reaches the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve  *domain.ValidationError
		ufe *domain.UnknownFieldError
		ime *domain.InvalidModuleError
	)

	switch {
	case errors.As(err, &ime):
		writeError(w, http.StatusBadRequest, CodeInvalidModule, ime.Error(), nil)
	case errors.As(err, &ufe):
		writeError(w, http.StatusBadRequest, CodeUnknownField, ufe.Error(),
			[]domain.FieldError{{Field: ufe.Field, Message: "unknown field"}})
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, CodeValidation, ve.Error(), ve.Errors)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, "invalid value", nil)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "unauthorized", nil)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found", nil)
	case errors.Is(err, domain.ErrConstraintViolation):
		writeError(w, http.StatusConflict, CodeConstraintViolation, "constraint violation", nil)
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.LogAttrs(r.Context(), slog.LevelError, "storage unavailable",
			append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))...)
		writeError(w, http.StatusServiceUnavailable, CodeStorageUnavailable, "storage unavailable", nil)
	default:
		log.LogAttrs(r.Context(), slog.LevelError, "internal error",
			append(ctxutil.LogAttrs(r.Context()),
				slog.String("error", err.Error()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))...)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string, fields []domain.FieldError) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code, Fields: fields})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type successResponse struct {
	Success bool `json:"success"`
}

type idResponse struct {
	ID int64 `json:"id"`
}
