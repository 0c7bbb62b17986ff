// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/avoronin/go-note-keeper/internal/config"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /signup. The server issues no token on registration, so the adapter
// token is left untouched.
func (h *httpServerAdapter) Signup(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Signin implements [ServerAdapter]. It POSTs the credentials to
// POST /signin, stores the returned bearer token via SetToken, and returns
// the session holding the token and the account record.
func (h *httpServerAdapter) Signin(ctx context.Context, user models.User) (models.Session, error) {
	var signInResp models.SignInResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&signInResp).
		Post("/signin")
	if err != nil {
		return models.Session{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(signInResp.Token)
	return models.Session{Token: signInResp.Token, User: signInResp.User}, nil
}

// Signout implements [ServerAdapter]. It POSTs to POST /signout and clears
// the locally held token. A call without a stored token is a no-op.
func (h *httpServerAdapter) Signout(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}

	resp, err := h.authedRequest(ctx).Post("/signout")
	if err != nil {
		return fmt.Errorf("signout request: %w", err)
	}

	// The local session is gone either way.
	h.SetToken("")
	return mapHTTPError(resp)
}

// ListNotes implements [ServerAdapter]. It GETs GET /notes and returns the
// decoded notes. Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notesResp models.NotesResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&notesResp).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notesResp.Notes, nil
}

// SearchNotes implements [ServerAdapter]. It GETs GET /notes/search with the
// query parameter and returns the decoded matches. Requires a valid bearer
// token.
func (h *httpServerAdapter) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	var notesResp models.NotesResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("query", query).
		SetResult(&notesResp).
		Get("/notes/search")
	if err != nil {
		return nil, fmt.Errorf("search notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notesResp.Notes, nil
}

// CreateNote implements [ServerAdapter]. It POSTs the note to POST /notes
// and returns the stored record with its assigned ID and timestamps.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var noteResp models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&noteResp).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return noteResp.Note, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs the partial update to
// PUT /notes/{id} and returns the updated record. Requires a valid bearer
// token.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	var noteResp models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&noteResp).
		Put(fmt.Sprintf("/notes/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return noteResp.Note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /notes/{id}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/notes/%d", noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// TogglePin implements [ServerAdapter]. It PUTs to PUT /notes/{id}/pin with
// no body and returns the updated record. Requires a valid bearer token.
func (h *httpServerAdapter) TogglePin(ctx context.Context, noteID int64) (models.Note, error) {
	var noteResp models.NoteResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&noteResp).
		Put(fmt.Sprintf("/notes/%d/pin", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("toggle pin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return noteResp.Note, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
