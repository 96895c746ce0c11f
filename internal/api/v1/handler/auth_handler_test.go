package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := repository.NewMemStore()
	svc := service.NewAuthService(store, "test-secret", zerolog.Nop())
	h := NewAuthHandler(svc, newValidator(), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func TestSignupAndLogin(t *testing.T) {
	mux := newAuthMux(t)

	body := `{"username":"admin","password":"correct horse"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var signup dto.SignupResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	assert.NotEmpty(t, signup.ID)
	assert.Equal(t, "admin", signup.Username)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var login dto.LoginResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
}

func TestSignupDuplicateUsernameConflict(t *testing.T) {
	mux := newAuthMux(t)
	body := `{"username":"admin","password":"correct horse"}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginBadCredentialsUnauthorized(t *testing.T) {
	mux := newAuthMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"username":"admin","password":"correct horse"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong password"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignupInvalidShape(t *testing.T) {
	mux := newAuthMux(t)

	for _, body := range []string{
		`{"username":"ab","password":"correct horse"}`,
		`{"username":"admin","password":"short"}`,
		`{}`,
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
