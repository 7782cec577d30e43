package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The panic value and stack are logged with the request's route;
// neither reaches the client. When the handler already started the response
// only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", sr.wroteHeader),
				)

				if !sr.wroteHeader {
					dto.WriteStatusResponse(sr, r, http.StatusInternalServerError, dto.KindInternal)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
