package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/shelfwise/shelfwise/internal/cli"
	"github.com/shelfwise/shelfwise/internal/db"
	"github.com/shelfwise/shelfwise/internal/importer"
	"github.com/shelfwise/shelfwise/internal/intelligence"
	"github.com/shelfwise/shelfwise/internal/llm"
	"github.com/shelfwise/shelfwise/internal/repository"
	"github.com/shelfwise/shelfwise/internal/service"
	"github.com/shelfwise/shelfwise/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.shelfwise/shelfwise.db
	dbPath := os.Getenv("SHELFWISE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shelfwise", "shelfwise.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the in-process session store.
	locationRepo := repository.NewSQLiteLocationRepo(database)
	liftRepo := repository.NewSQLiteLiftRepo(database)
	competitorRepo := repository.NewSQLiteCompetitorRepo(database)
	salesRepo := repository.NewSQLiteSalesRepo(database)
	sessionStore := session.NewMemoryStore()

	// Wire the LLM client; the defend engine falls back to templates
	// whenever generation is disabled or fails.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}

	app := &cli.App{
		Analyze:   service.NewAnalyzeService(locationRepo, liftRepo, competitorRepo, sessionStore),
		Locations: service.NewLocationService(locationRepo),
		Sessions:  service.NewSessionService(sessionStore),
		Defend:    intelligence.NewDefendService(sessionStore, llmClient, llmCfg.Enabled),
		Importer:  importer.NewImporter(locationRepo, liftRepo, competitorRepo, salesRepo),
	}

	// Detect interactive terminal for the analyze form and defend chat.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
