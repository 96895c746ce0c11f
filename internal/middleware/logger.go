package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
)

// LoggerMiddleware logs incoming HTTP requests.
func LoggerMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// Call the next handler in the chain
			next.ServeHTTP(w, r)

			// Log with full request URI including query params. Info so
			// the line survives the process logger's level.
			logger.Info().Msgf("%s %s", r.Method, r.URL.RequestURI())
		})
	}
}
