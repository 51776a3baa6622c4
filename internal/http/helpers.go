package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cakue/internal/core"
	applog "cakue/internal/log"
	mwauth "cakue/internal/middleware/auth"
	"cakue/internal/services"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 10 << 20

var (
	errBadJSON             = fmt.Errorf("%w: request body must be valid JSON", core.ErrValidation)
	errMissingTransactions = fmt.Errorf("%w: transactions must be an array", core.ErrValidation)
)

type errorResponse struct {
	Error   string            `json:"error"`
	Details []core.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the error taxonomy to a status code. Internal
// failures are logged and never echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr core.ValidationErrors
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: verr})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, core.ErrAccessDenied):
		writeError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, core.ErrConflict), errors.Is(err, core.ErrConstraintViolation):
		writeError(w, http.StatusConflict, clientMessage(err))
	default:
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldUserID, mwauth.UserIDFromContext(r.Context()),
			"error_type", applog.ErrorTypeInternal,
			applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// clientMessage capitalizes the error text for display.
func clientMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// decodeJSON reads a single JSON value into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request body too large", core.ErrValidation)
		}
		return errBadJSON
	}
	if _, err := dec.Token(); err != io.EOF {
		return errBadJSON
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", core.ErrValidation, name)
	}
	return id, nil
}

// parseRange reads the startDate and endDate query parameters.
func parseRange(r *http.Request) (core.Date, core.Date, error) {
	q := r.URL.Query()
	rawStart, rawEnd := q.Get("startDate"), q.Get("endDate")
	if rawStart == "" || rawEnd == "" {
		return core.Date{}, core.Date{}, fmt.Errorf("%w: start date and end date are required", core.ErrValidation)
	}
	start, err := core.ParseDate(rawStart)
	if err != nil {
		return core.Date{}, core.Date{}, fmt.Errorf("%w: invalid startDate", core.ErrValidation)
	}
	end, err := core.ParseDate(rawEnd)
	if err != nil {
		return core.Date{}, core.Date{}, fmt.Errorf("%w: invalid endDate", core.ErrValidation)
	}
	if start.After(end.Time) {
		return core.Date{}, core.Date{}, core.ErrInvalidRange
	}
	return start, end, nil
}
