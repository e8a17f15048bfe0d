package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/claraval/serein/internal/cli"
	"github.com/claraval/serein/internal/content"
	"github.com/claraval/serein/internal/db"
	"github.com/claraval/serein/internal/repository"
	"github.com/claraval/serein/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.serein/serein.db
	dbPath := os.Getenv("SEREIN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".serein", "serein.db")
	}

	contentDir, err := content.FindDir()
	if err != nil {
		return err
	}
	store, err := content.Load(contentDir)
	if err != nil {
		return fmt.Errorf("cannot load content from %s: %w", contentDir, err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	checkinRepo := repository.NewSQLiteCheckInRepo(database)

	app := &cli.App{
		Store:    store,
		Results:  service.NewResultService(store, sessionRepo, checkinRepo),
		Sessions: service.NewSessionService(sessionRepo),
		CheckIns: service.NewCheckInService(checkinRepo),
		Plans:    service.NewPlanService(store, sessionRepo, checkinRepo),
	}

	// Detect interactive terminal for the questionnaire and check-in forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
