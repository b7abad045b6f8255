package handlers

import (
	"net/http"

	"github.com/flow-hydraulics/account-keeper/handlers/middleware"
	gorilla "github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func UseCors(h http.Handler) http.Handler {
	return gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		gorilla.AllowedHeaders([]string{"Content-Type", IdempotencyKeyHeader}),
	)(h)
}

func UseLogging(h http.Handler) http.Handler {
	return middleware.LoggingHandler(h, log.StandardLogger())
}

func UseCompress(h http.Handler) http.Handler {
	return gorilla.CompressHandler(h)
}

func UseJson(h http.Handler) http.Handler {
	// Only PUT, POST, and PATCH requests are considered.
	return gorilla.ContentTypeHandler(h, "application/json")
}

// UseRateLimit answers 429 to writing requests once limiter runs dry.
// Reads are never limited.
func UseRateLimit(h http.Handler, limiter *rate.Limiter) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			if !limiter.Allow() {
				log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).Debug("Write rate limit exceeded")
				http.Error(rw, "too many requests, try again later", http.StatusTooManyRequests)
				return
			}
		}

		h.ServeHTTP(rw, r)
	})
}
