package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
)

// Error kinds carried in the problem body so clients can branch without
// parsing detail text.
const (
	KindValidation  = "validation"
	KindNotFound    = "not_found"
	KindInvalidID   = "invalid_id"
	KindBadRequest  = "bad_request"
	KindUnavailable = "unavailable"
	KindInternal    = "internal"
	KindRateLimited = "rate_limited"
	KindTimeout     = "timeout"

	KindMethodNotAllowed = "method_not_allowed"
)

// ErrorResponse represents an RFC 9457 Problem Details response with a
// machine-readable kind extension member.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Kind     string        `json:"kind"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level error within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
// Errors outside the domain taxonomy get a generic detail so driver
// messages never reach the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, kind := classify(err)

	detail := err.Error()
	if kind == KindInternal || kind == KindUnavailable {
		detail = http.StatusText(status)
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     kind,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	var iderr *domain.InvalidIDError
	if errors.As(err, &iderr) {
		resp.Errors = []ErrorDetail{{
			Location: "path." + iderr.Field,
			Message:  "is not a well-formed identifier",
			Value:    iderr.Value,
		}}
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}

	writeProblem(w, r, resp)
}

// WriteStatusResponse writes a problem response for a condition raised by
// the HTTP layer itself, such as rate limiting, rather than by a domain error.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int, kind string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     kind,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify maps domain sentinel errors to an HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, KindValidation
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, KindInvalidID
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, KindBadRequest
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, KindUnavailable
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
