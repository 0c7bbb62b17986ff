package http

import (
	"errors"
	"net/http"

	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/internal/utils"
	"github.com/avoronin/go-note-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,

	ErrNoTokenProvided:            http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidNoteID:              http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingTags:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the failure envelope every error response shares:
//
//	{"success": false, "statusCode": <status>, "message": <message>}
func writeError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Response{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
	}, statusCode)
}
