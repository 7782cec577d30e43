package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// requireProblem asserts a problem+json response with the given status and
// kind and returns the decoded body.
func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, status int, kind string) dto.ErrorResponse {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d", rec.Code, status)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("Content-Type = %q, want application/problem+json", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding problem body: %v", err)
	}
	if body.Status != status {
		t.Errorf("body.Status = %d, want %d", body.Status, status)
	}
	if body.Kind != kind {
		t.Errorf("body.Kind = %q, want %q", body.Kind, kind)
	}
	return body
}
