package tui

import (
	"context"
	"errors"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by LoginFlow when the user exits the program
// instead of signing in.
var ErrUserQuit = errors.New("user quit the program")

// TUI drives the terminal client: a signin/signup flow followed by the main
// notes loop.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// LoginFlow runs the menu/signin/signup pages and blocks until the user is
// signed in or quits. Returns the established session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"signin": NewSigninModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the notes page for the signed-in user. Returns logout=true
// when the user signed out and wants to return to the login flow.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newNotesModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(notesModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
