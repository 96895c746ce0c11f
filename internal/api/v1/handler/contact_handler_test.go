package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	sent []string
	err  error
}

func (f *fakeEmailSender) SendContactNotification(ctx context.Context, msg *model.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg.ID)
	return nil
}

func newContactMux(t *testing.T, email service.EmailSender) (*http.ServeMux, *repository.MemStore) {
	t.Helper()
	store := repository.NewMemStore()
	h := NewContactHandler(store, email, newValidator(), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, passthroughAuth)
	return mux, store
}

func TestCreateContactMessage(t *testing.T) {
	email := &fakeEmailSender{}
	mux, store := newContactMux(t, email)

	body := `{"name":"Jo","email":"jo@example.com","message":"hi"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ContactResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []string{resp.ID}, email.sent)

	stored, err := store.ListContactMessages(t.Context())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
}

func TestCreateContactMessageSurvivesEmailFailure(t *testing.T) {
	mux, store := newContactMux(t, &fakeEmailSender{err: errors.New("sendgrid down")})

	body := `{"name":"Jo","email":"jo@example.com","message":"hi"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))

	// The submission is stored and the caller still sees success.
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := store.ListContactMessages(t.Context())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateContactMessageNoSenderConfigured(t *testing.T) {
	mux, store := newContactMux(t, nil)

	body := `{"name":"Jo","email":"jo@example.com","message":"hi"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := store.ListContactMessages(t.Context())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateContactMessageInvalidShape(t *testing.T) {
	mux, _ := newContactMux(t, &fakeEmailSender{})

	for _, body := range []string{
		`{"name":"Jo","email":"not-an-email","message":"hi"}`,
		`{"name":"Jo","message":"hi"}`,
		`{}`,
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestListContactMessages(t *testing.T) {
	mux, store := newContactMux(t, nil)

	_, err := store.CreateContactMessage(t.Context(), model.InsertContactMessage{Name: "a", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact/messages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var messages []model.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	assert.Len(t, messages, 1)
}
