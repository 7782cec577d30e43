package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/middleware"
)

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lists", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != `{"id":"1"}` {
		t.Errorf("body = %q, want the handler's body", rec.Body.String())
	}
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "store exploded", "store exploded"},
		{"error", errors.New("nil list"), "nil list"},
		{"int", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lists/abc", http.NoBody))

			body := requireProblem(t, rec, http.StatusInternalServerError, dto.KindInternal)
			if strings.Contains(body.Detail, tt.want) {
				t.Errorf("detail = %q, panic value leaked to the client", body.Detail)
			}

			out := buf.String()
			for _, want := range []string{"panic recovered", tt.want, "stack=", "/api/lists/abc"} {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %q", want)
				}
			}
		})
	}
}

func TestRecovery_ResponseAlreadyStarted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("after header")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lists", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the already written %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "application/problem+json" {
		t.Error("problem body written after the response started")
	}
	if !strings.Contains(buf.String(), "response_started=true") {
		t.Errorf("log output = %q, want response_started=true", buf.String())
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler to propagate", v)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/lists", http.NoBody))
}
