// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"context"
	"fmt"

	"github.com/avoronin/go-note-keeper/internal/adapter"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService backed by the given
// session store and server adapter.
func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

// Signup validates the registration fields locally and forwards them to the
// server. Validation mirrors the server's rules so obviously bad input never
// leaves the client.
func (a *clientAuthService) Signup(ctx context.Context, user models.User) error {
	if err := validateRegistration(user); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := a.adapter.Signup(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrSignupOnServer, err)
	}

	return nil
}

// Signin authenticates against the server and persists the resulting session
// so the next client run can resume without a password prompt. A failure to
// save the session locally is logged but does not fail the signin.
func (a *clientAuthService) Signin(ctx context.Context, user models.User) (models.Session, error) {
	if user.Email == "" || user.Password == "" {
		return models.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	session, err := a.adapter.Signin(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSigninOnServer, err)
	}

	if err = a.sessions.Save(session); err != nil {
		a.logger.Error().Err(err).Msg("failed to save session locally")
	}

	return session, nil
}

// Signout ends the server session and drops the locally saved one. The local
// session is cleared even when the server call fails: the token may already
// be expired or revoked.
func (a *clientAuthService) Signout(ctx context.Context) error {
	serverErr := a.adapter.Signout(ctx)

	if err := a.sessions.Clear(); err != nil {
		return fmt.Errorf("clearing local session ended with error: %w", err)
	}

	return serverErr
}

// RestoreSession loads the saved session and primes the adapter with its
// token. The token is not validated locally; an expired one will surface as
// an unauthorized error on the first server call.
func (a *clientAuthService) RestoreSession(_ context.Context) (models.Session, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}
