package middleware

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
)

// RateLimit returns middleware that admits requests through a single token
// bucket shared by all clients. Rejected requests get a 429 problem response
// with a Retry-After hint. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteStatusResponse(w, r, http.StatusTooManyRequests, dto.KindRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
