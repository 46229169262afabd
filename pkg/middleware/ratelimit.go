package middleware

import (
	"net/http"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimitByClient allows requests per window for each client address,
// keyed the same way ratings are.
func RateLimitByClient(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return utils.ClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseTooManyRequests(w, "Too many requests, slow down")
		}),
	)
}
