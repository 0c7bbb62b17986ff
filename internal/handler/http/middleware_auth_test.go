// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/internal/utils"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder is a terminal handler that records whether it was reached and
// which user ID the middleware injected into the context.
type nextRecorder struct {
	called bool
	userID int64
	hasID  bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.hasID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	require.True(t, next.hasID)
	assert.Equal(t, int64(42), next.userID)
}

func TestAuthMiddleware_ValidCookieToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "cookie.jwt.token", tokenString)
			return models.Token{UserID: 7}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie.jwt.token"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), next.userID)
}

// TestAuthMiddleware_CookieTakesPrecedence pins the extraction order: when
// both the cookie and the Authorization header are present, the cookie wins.
func TestAuthMiddleware_CookieTakesPrecedence(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "cookie.jwt.token", tokenString)
			return models.Token{UserID: 7}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie.jwt.token"})
	req.Header.Set("Authorization", "Bearer header.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, next.called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Contains(t, rec.Body.String(), "token is expired")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer tampered.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	// invalid and expired both map to 401, never 403
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func Test_getTokenFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		hasCookie bool
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "cookie only",
			cookie:    "tok-c",
			hasCookie: true,
			wantToken: "tok-c",
		},
		{
			name:      "header only",
			header:    "Bearer tok-h",
			wantToken: "tok-h",
		},
		{
			name:      "cookie wins over header",
			cookie:    "tok-c",
			hasCookie: true,
			header:    "Bearer tok-h",
			wantToken: "tok-c",
		},
		{
			name:      "empty cookie value",
			cookie:    "",
			hasCookie: true,
			wantErr:   ErrEmptyToken,
		},
		{
			name:    "nothing at all",
			wantErr: ErrNoTokenProvided,
		},
		{
			name:    "header without token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "header with empty token",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.hasCookie {
				req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := getTokenFromRequest(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
