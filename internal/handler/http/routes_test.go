package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avoronin/go-note-keeper/internal/config"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) SignUp(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) SignIn(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{SignedString: "signed.jwt.token"}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}

// ---- Mock: NoteService ----

type mockNoteSvc struct{}

func (m *mockNoteSvc) CreateNote(_ context.Context, userID int64, note models.Note) (models.Note, error) {
	note.UserID = userID
	return note, nil
}
func (m *mockNoteSvc) GetAllNotes(_ context.Context, _ int64) ([]models.Note, error) {
	return []models.Note{}, nil
}
func (m *mockNoteSvc) SearchNotes(_ context.Context, _ int64, _ string) ([]models.Note, error) {
	return []models.Note{}, nil
}
func (m *mockNoteSvc) UpdateNote(_ context.Context, _, noteID int64, _ models.NoteUpdate) (models.Note, error) {
	return models.Note{NoteID: noteID}, nil
}
func (m *mockNoteSvc) DeleteNote(_ context.Context, _, _ int64) error {
	return nil
}
func (m *mockNoteSvc) TogglePin(_ context.Context, _, noteID int64) (models.Note, error) {
	return models.Note{NoteID: noteID, IsPinned: true}, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		cfg:    config.Server{RequestTimeout: time.Minute},
		services: &service.Services{
			AuthService: &mockAuthSvc{},
			NoteService: &mockNoteSvc{},
		},
	}
	return h.Init()
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method   string
		target   string
		body     string
		wantCode int
	}{
		{http.MethodPost, "/signup", `{"name":"a","email":"a@b.c","password":"secretpass"}`, http.StatusCreated},
		{http.MethodPost, "/signin", `{"email":"a@b.c","password":"secretpass"}`, http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, tt.wantCode, rec.Code, "%s %s", tt.method, tt.target)
	}
}

func TestRouter_AuthedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/signout"},
		{http.MethodGet, "/notes"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/search"},
		{http.MethodPut, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
		{http.MethodPut, "/notes/1/pin"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.target, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.target)
	}
}

func TestRouter_AuthedRoutesAcceptBearer(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRouter_WrongMethodIs404 pins the 404-instead-of-405 behaviour for
// known paths hit with an unsupported method.
func TestRouter_WrongMethodIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"a@b.c","password":"p"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRouter_TraceIDHeaderIsEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"a@b.c","password":"p"}`))
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
