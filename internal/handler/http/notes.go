package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/utils"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.createNote").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), userID, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, statusFromError(err), "error creating note")
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: models.Response{Success: true, Message: "note created successfully"},
		Note:     created,
	}, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.listNotes").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, statusFromError(err), "error listing notes")
		return
	}

	utils.WriteJSON(w, models.NotesResponse{
		Response: models.Response{Success: true},
		Notes:    notes,
	}, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.searchNotes").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	query := r.URL.Query().Get("query")

	notes, err := h.services.NoteService.SearchNotes(r.Context(), userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchNotes").Msg("error searching notes")
		writeError(w, statusFromError(err), "error searching notes")
		return
	}

	utils.WriteJSON(w, models.NotesResponse{
		Response: models.Response{Success: true},
		Notes:    notes,
	}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.updateNote").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid note ID in URL")
		writeError(w, http.StatusBadRequest, ErrInvalidNoteID.Error())
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.NoteService.UpdateNote(r.Context(), userID, noteID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("note_id", noteID).Msg("error updating note")
		writeError(w, statusFromError(err), "error updating note")
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: models.Response{Success: true, Message: "note updated successfully"},
		Note:     updated,
	}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.deleteNote").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("invalid note ID in URL")
		writeError(w, http.StatusBadRequest, ErrInvalidNoteID.Error())
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("note_id", noteID).Msg("error deleting note")
		writeError(w, statusFromError(err), "error deleting note")
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "note deleted successfully",
	}, http.StatusOK)
}

// togglePin flips the pinned flag of the addressed note. The request body is
// ignored: the server state alone decides the new value, which keeps the
// operation safe to retry.
func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.togglePin").Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.togglePin").Msg("invalid note ID in URL")
		writeError(w, http.StatusBadRequest, ErrInvalidNoteID.Error())
		return
	}

	toggled, err := h.services.NoteService.TogglePin(r.Context(), userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.togglePin").Int64("note_id", noteID).Msg("error toggling pin")
		writeError(w, statusFromError(err), "error toggling pin")
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: models.Response{Success: true, Message: "note pin toggled"},
		Note:     toggled,
	}, http.StatusOK)
}

// noteIDFromURL parses the {noteID} chi URL parameter as a positive int64.
func noteIDFromURL(r *http.Request) (int64, error) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
	if err != nil || noteID <= 0 {
		return 0, ErrInvalidNoteID
	}
	return noteID, nil
}
