package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddlewareEmitsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	// Same level the process logger runs at.
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	handler := LoggerMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects?featured=true", nil))

	assert.Contains(t, buf.String(), "GET /api/projects?featured=true")
}
