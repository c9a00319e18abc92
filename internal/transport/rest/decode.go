package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1 << 20

// errBodyTooLarge and errBadBody are answered directly by writeBodyError.
var (
	errBodyTooLarge = errors.New("request body too large")
	errBadBody      = errors.New("invalid request body")
)

// decodeJSON reads one JSON document into dst. Numbers are kept as
// json.Number so integers survive untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return errBodyTooLarge
		}
		return fmt.Errorf("%w: %v", errBadBody, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", errBadBody)
	}
	return nil
}

// decodeObject reads a JSON object body as a field mapping.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := decodeJSON(w, r, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", errBadBody)
	}
	return payload, nil
}

// writeBodyError reports decode failures. It returns false when err is not
// a body error and still needs handling.
func writeBodyError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, err.Error(), nil)
	case errors.Is(err, errBadBody):
		writeError(w, http.StatusBadRequest, CodeInvalidBody, err.Error(), nil)
	default:
		return false
	}
	return true
}

// pathID parses a positive integer path segment.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// parseListFilter reads the list query parameters.
func parseListFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()
	var (
		f    domain.ListFilter
		errs []domain.FieldError
	)

	f.Q = q.Get("q")
	if domain.ContainsNUL(f.Q) {
		errs = append(errs, domain.FieldError{Field: "q", Message: domain.MsgContainsNUL})
	}

	if s := q.Get("status"); s != "" {
		if domain.ContainsNUL(s) {
			errs = append(errs, domain.FieldError{Field: "status", Message: domain.MsgContainsNUL})
		} else {
			f.Status = &s
		}
	}

	if v := strings.TrimSpace(q.Get("owner_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "owner_id", Message: "must be an integer"})
		} else {
			f.OwnerID = &id
		}
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("is_deleted"))) {
	case "", "0", "false":
	case "1", "true":
		f.Deleted = true
	default:
		errs = append(errs, domain.FieldError{Field: "is_deleted", Message: "must be 0, 1, true or false"})
	}

	if len(errs) > 0 {
		return domain.ListFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}
