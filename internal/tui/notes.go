// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notesMode int

const (
	modeList notesMode = iota
	modeDetail
	modeSearch
	modeForm
	modeConfirmDelete
)

// notesModel is the main page of the client: the note list with search,
// detail view, create/edit form, pin toggling, and deletion.
type notesModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	mode    notesMode
	notes   []models.Note
	idx     int
	loading bool
	status  string
	errMsg  string

	// active search filter; empty means the full list is shown
	query       string
	searchInput textinput.Model

	// create/edit form
	formEditing bool
	formNoteID  int64
	formFocus   int
	titleInput  textinput.Model
	tagsInput   textinput.Model
	contentArea textarea.Model
	formSaving  bool
	formErr     string

	logout bool
}

func newNotesModel(ctx context.Context, services *service.ClientServices, session models.Session) notesModel {
	search := textinput.New()
	search.Placeholder = "search notes"
	search.Width = 40

	return notesModel{
		ctx:         ctx,
		services:    services,
		session:     session,
		loading:     true,
		searchInput: search,
	}
}

func (m notesModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case noteSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerError(msg.err)
			return m, nil
		}
		if m.formEditing {
			m.status = "Note updated"
		} else {
			m.status = "Note created"
		}
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.status = "Note deleted"
		m.errMsg = ""
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadNotes()

	case pinToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeDetail:
		if isKey {
			return m.updateDetailKeys(keyMsg)
		}
		return m, nil
	default:
		if isKey {
			return m.updateListKeys(keyMsg)
		}
		return m, nil
	}
}

func (m notesModel) updateListKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.current(); ok {
			m.mode = modeDetail
		}
	case "n":
		m.startForm(models.Note{}, false)
	case "e":
		if note, ok := m.current(); ok {
			m.startForm(note, true)
		}
	case "p":
		if note, ok := m.current(); ok {
			return m, m.cmdTogglePin(note.NoteID)
		}
	case "ctrl+d":
		if _, ok := m.current(); ok {
			m.mode = modeConfirmDelete
		}
	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.query != "" {
			// drop the active filter
			m.query = ""
			m.loading = true
			return m, m.cmdLoadNotes()
		}
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m notesModel) updateDetailKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
	case "e":
		m.startForm(note, true)
	case "p":
		return m, m.cmdTogglePin(note.NoteID)
	case "ctrl+d":
		m.mode = modeConfirmDelete
	case "c":
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Content copied to clipboard"
	}

	return m, nil
}

func (m notesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.searchInput.Blur()
			return m, nil
		case "enter":
			query := strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			m.mode = modeList
			m.query = query
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadNotes()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m notesModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if note, ok := m.current(); ok {
			return m, m.cmdDelete(note.NoteID)
		}
		m.mode = modeList
	case "n", "esc":
		m.mode = modeList
	}

	return m, nil
}

func (m *notesModel) startForm(note models.Note, editing bool) {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(note.Title)
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "tags, comma separated"
	tags.Width = 40
	tags.SetValue(strings.Join(note.Tags, ", "))

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(54)
	content.SetHeight(8)
	content.SetValue(note.Content)

	m.titleInput = title
	m.tagsInput = tags
	m.contentArea = content
	m.formFocus = 0
	m.formEditing = editing
	m.formNoteID = note.NoteID
	m.formSaving = false
	m.formErr = ""
	m.mode = modeForm
}

func (m notesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab":
			m.formFocusNext()
			return m, nil
		case "shift+tab":
			m.formFocusPrev()
			return m, nil
		case "ctrl+s":
			if m.formSaving {
				return m, nil
			}

			title := strings.TrimSpace(m.titleInput.Value())
			content := strings.TrimSpace(m.contentArea.Value())
			if title == "" || content == "" {
				m.formErr = "title and content are required"
				return m, nil
			}

			m.formErr = ""
			m.formSaving = true
			tags := parseTags(m.tagsInput.Value())
			if m.formEditing {
				return m, m.cmdUpdate(m.formNoteID, title, content, tags)
			}
			return m, m.cmdCreate(title, content, tags)
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 1:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	default:
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m *notesModel) formFocusNext() {
	m.setFormFocus((m.formFocus + 1) % 3)
}

func (m *notesModel) formFocusPrev() {
	m.setFormFocus((m.formFocus + 2) % 3)
}

func (m *notesModel) setFormFocus(focus int) {
	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.contentArea.Blur()

	m.formFocus = focus
	switch focus {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.tagsInput.Focus()
	default:
		m.contentArea.Focus()
	}
}

func (m notesModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// ── async commands ──────────────────────────────────────────────────────────

func (m notesModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	query := m.query

	return func() tea.Msg {
		if query != "" {
			notes, err := svc.Search(ctx, query)
			return notesLoadedMsg{notes: notes, err: err}
		}
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m notesModel) cmdCreate(title, content string, tags []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		_, err := svc.Create(ctx, models.Note{Title: title, Content: content, Tags: tags})
		return noteSavedMsg{err: err}
	}
}

func (m notesModel) cmdUpdate(noteID int64, title, content string, tags []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		update := models.NoteUpdate{Title: &title, Content: &content, Tags: &tags}
		_, err := svc.Update(ctx, noteID, update)
		return noteSavedMsg{err: err}
	}
}

func (m notesModel) cmdDelete(noteID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, noteID)}
	}
}

func (m notesModel) cmdTogglePin(noteID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		_, err := svc.TogglePin(ctx, noteID)
		return pinToggledMsg{err: err}
	}
}

// ── views ───────────────────────────────────────────────────────────────────

func (m notesModel) View() string {
	switch m.mode {
	case modeSearch:
		return m.viewSearch()
	case modeForm:
		return m.viewForm()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m notesModel) viewList() string {
	var b strings.Builder

	if m.loading {
		return renderPage(m.listTitle(), "Loading notes...", m.listHotKeys())
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Status: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if len(m.notes) == 0 {
		if m.query != "" {
			b.WriteString("Nothing found for \"" + m.query + "\"\n")
		} else {
			b.WriteString("No notes yet. Press n to create one.\n")
		}
	} else {
		b.WriteString("  ID  │   Title                        │ Tags\n")
		b.WriteString("──────┼────────────────────────────────┼──────────────────────\n")
		for i, note := range m.notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(formatNoteLine(cursor, i+1, note.Title, note.IsPinned, note.Tags))
			b.WriteString("\n")
		}
	}

	return renderPage(m.listTitle(), strings.TrimRight(b.String(), "\n"), m.listHotKeys())
}

func (m notesModel) listTitle() string {
	title := "NOTES"
	if m.query != "" {
		title += " · search: " + m.query
	}
	return title
}

func (m notesModel) listHotKeys() string {
	keys := "n: new │ enter: open │ e: edit │ p: pin │ /: search │ ctrl+d: delete │ l: sign out │ q: quit"
	if m.query != "" {
		keys = "esc: clear search │ " + keys
	}
	return keys
}

func (m notesModel) viewDetail() string {
	note, ok := m.current()
	if !ok {
		return renderPage("NOTE", "Note not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Title   : " + note.Title)
	if note.IsPinned {
		b.WriteString("  " + pinStyle.Render("★ pinned"))
	}
	b.WriteString("\n")
	b.WriteString("Tags    : " + formatTags(note.Tags) + "\n")
	b.WriteString("Created : " + note.CreatedAt.Local().Format(time.DateTime) + "\n")
	b.WriteString("Updated : " + note.UpdatedAt.Local().Format(time.DateTime) + "\n")
	b.WriteString("\n")
	b.WriteString(note.Content)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(
		"NOTE: "+fitText(note.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"e: edit │ p: pin │ c: copy content │ ctrl+d: delete │ esc: back",
	)
}

func (m notesModel) viewSearch() string {
	out := "Query │ [" + m.searchInput.View() + "]"
	return renderPage("SEARCH NOTES", out, "enter: search │ esc: cancel")
}

func (m notesModel) viewForm() string {
	var b strings.Builder
	b.WriteString("Title   │ [" + m.titleInput.View() + "]\n")
	b.WriteString("Tags    │ [" + m.tagsInput.View() + "]\n")
	b.WriteString("Content │\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n")

	if m.formSaving {
		b.WriteString("\nSaving...\n")
	}
	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.formErr) + "\n")
	}

	title := "NEW NOTE"
	if m.formEditing {
		title = "EDIT NOTE"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+s: save │ esc: cancel")
}

func (m notesModel) viewConfirmDelete() string {
	note, ok := m.current()
	if !ok {
		return renderPage("DELETE NOTE", "Note not found", "esc: back")
	}

	out := "Delete \"" + fitText(note.Title, 40) + "\"?\n\n"
	out += "y: yes    n: no"
	return renderPage("DELETE NOTE", out, "y: confirm │ n/esc: cancel")
}

func parseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
