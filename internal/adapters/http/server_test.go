package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/go-todolist-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todolist-service/internal/app"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"127.0.0.1", 9090, "127.0.0.1:9090"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

// startServer serves handler on an ephemeral loopback port and returns the
// base URL. The server is shut down when the test ends.
func startServer(t *testing.T, handler http.Handler) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}

	s := adapthttp.NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, handler, discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(l) }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
		if err := <-errCh; err != nil {
			t.Errorf("Serve() error after shutdown = %v", err)
		}
	})

	return "http://" + l.Addr().String()
}

func TestServer_ServesListAPIOverTCP(t *testing.T) {
	t.Parallel()

	svc := app.NewListService(newMemStore(), nil)
	router := adapthttp.NewRouter(handlers.NewListHandler(svc), handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)))
	base := startServer(t, router)

	body, _ := json.Marshal(map[string]string{"name": "Groceries"})
	resp, err := http.Post(base+"/api/lists", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/lists error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var created dto.CreateListResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}

	getResp, err := http.Get(base + "/api/lists/" + created.ID)
	if err != nil {
		t.Fatalf("GET list error = %v", err)
	}
	defer getResp.Body.Close()

	var list dto.ListResponse
	if err := json.NewDecoder(getResp.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if list.Name != "Groceries" || len(list.Items) != 0 {
		t.Errorf("GET list = %+v, want Groceries with no items", list)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(l) }()

	// Serve may not have entered its accept loop yet; Shutdown handles both.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Serve() error = %v, want nil after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after Shutdown")
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	port := l.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), nil)

	if err := s.Start(); err == nil {
		t.Fatal("Start() on a busy port error = nil, want error")
	}
}
