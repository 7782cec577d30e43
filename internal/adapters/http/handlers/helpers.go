package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
)

// Path parameter names shared with the router.
const (
	ParamListID = "id"
	ParamItemID = "item_id"
)

// maxJSONBodyBytes caps request bodies. Names and labels are short; 1 MiB
// leaves ample room.
const maxJSONBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response body",
			slog.Any("error", err),
		)
	}
}

// decodeRequest reads exactly one JSON value into dst and answers 400 when
// the body is not one. It reports whether the handler may proceed. Field
// contents are left to the service so the path id is judged first.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeBody(w, r, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	err := dec.Decode(dst)
	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is empty", domain.ErrBadRequest)
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrBadRequest, tooLarge.Limit)
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: field %q must be a %s", domain.ErrBadRequest, typeErr.Field, typeErr.Type)
	default:
		return fmt.Errorf("%w: invalid JSON body", domain.ErrBadRequest)
	}

	// Anything after the first value, even a stray brace, is rejected.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must hold a single JSON object", domain.ErrBadRequest)
	}
	return nil
}
