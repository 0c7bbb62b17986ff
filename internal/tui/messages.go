package tui

import (
	"github.com/avoronin/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. An optional Payload
// is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SigninResult reports the outcome of an async signin attempt.
type SigninResult struct {
	Err     error
	Session models.Session
}

// SignupResult reports the outcome of an async registration attempt.
type SignupResult struct {
	Err   error
	Email string
}

// SignupSuccessNotice is passed back to the menu after a successful
// registration so it can show a confirmation line.
type SignupSuccessNotice struct {
	Email string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type pinToggledMsg struct {
	err error
}
