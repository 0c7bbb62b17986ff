package main

import (
	"fmt"

	"github.com/avoronin/go-note-keeper/internal/adapter"
	"github.com/avoronin/go-note-keeper/internal/client"
	"github.com/avoronin/go-note-keeper/internal/config"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("note-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions := store.NewFileSessionStore(cfg.Storage.SessionFile)
	services := service.NewClientServices(sessions, serverAdapter, log)

	ui := tui.New(services, log)

	app := client.NewApp(services, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
