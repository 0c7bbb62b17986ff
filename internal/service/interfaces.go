package service

import (
	"context"

	"github.com/avoronin/go-note-keeper/models"
)

type AuthService interface {
	SignUp(ctx context.Context, user models.User) (models.User, error)
	SignIn(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	TogglePin(ctx context.Context, userID, noteID int64) (models.Note, error)
}
