// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// access token from a request. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned by the auth middleware when the request
	// carries neither the session cookie nor an "Authorization" header.
	ErrNoTokenProvided = errors.New("no access token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the cookie or header carries the
	// expected shape but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty access token")

	// ErrInvalidNoteID is returned when the {noteID} URL parameter is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note ID")
)
