// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package models

// Response is the uniform API envelope. Every endpoint responds with
// success=true and an optional message plus payload, or success=false with
// a non-2xx status code mirrored in StatusCode.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// StatusCode is populated on failures only, mirroring the HTTP status
	// of the response so clients that lose the transport status can still
	// classify the error.
	StatusCode int `json:"statusCode,omitempty"`
}

// SignInResponse is the payload of a successful signin: the issued session
// token (also set as a cookie) and the sanitized account record.
type SignInResponse struct {
	Response
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NoteResponse carries a single note, returned by create, edit, and
// pin-toggle operations.
type NoteResponse struct {
	Response
	Note Note `json:"note"`
}

// NotesResponse carries a collection of notes, returned by list and search.
type NotesResponse struct {
	Response
	Notes []Note `json:"notes"`
}
