package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/internal/tui"
	"github.com/avoronin/go-note-keeper/models"
)

// App ties the client services and the terminal UI into one runnable
// lifecycle: restore or establish a session, then run the notes loop until
// the user quits or signs out.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: logger}
}

// Run implements [Client]. Signing out returns the user to the login flow;
// quitting the login flow ends the process cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.establishSession(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Signout(ctx); err != nil {
			// Dropping the local session is what matters for sign-out;
			// a failed server call is worth a log line, nothing more.
			a.logger.Warn().Err(err).Msg("server signout failed")
		}
	}
}

func (a *App) establishSession(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.tui.LoginFlow(ctx)
}
