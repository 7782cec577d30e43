// Package middleware provides the inbound HTTP pipeline for the list API.
//
// Handlers are wrapped in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → RateLimit → OpenTelemetry → Logging → Timeout → Handler
//
// Every middleware is a func(http.Handler) http.Handler registered with the
// chi router, so route patterns are resolved by the time a middleware reads
// them after calling next.
package middleware

import "net/http"

// statusRecorder remembers the status code and body size of a response as it
// passes through. Recovery, OpenTelemetry and Logging each wrap the writer
// with one.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code and forwards it. Later calls are
// dropped, matching net/http's superfluous WriteHeader behavior.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.status = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
