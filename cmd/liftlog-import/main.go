package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/importer"
	"github.com/claude/liftlog/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	templatesPath := flag.String("path", "", "path to template YAML directory (required)")
	stateDir := flag.String("state-dir", ".liftlog-import", "directory for the import state database")
	user := flag.String("user", "local", "login name of the importing user")
	dryRun := flag.Bool("dry-run", false, "report what would be imported without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *templatesPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-import -config config.yaml -path /path/to/templates [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	info, err := os.Stat(*templatesPath)
	if err != nil || !info.IsDir() {
		log.Error("template path does not exist or is not a directory", "path", *templatesPath)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode: no data will be written to the database")
	}

	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userID, err := db.GetOrCreateUser(ctx, *user, "")
	if err != nil {
		log.Error("failed to resolve user", "login", *user, "error", err)
		os.Exit(1)
	}

	var state *importer.StateDB
	if !*dryRun {
		state, err = importer.OpenStateDB(*stateDir)
		if err != nil {
			log.Error("failed to open state db", "error", err)
			os.Exit(1)
		}
		defer state.Close()
	}

	imp := importer.New(db, state, userID, log, *dryRun)
	stats, err := imp.Import(ctx, *templatesPath)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"processed", stats.FilesProcessed,
		"skipped", stats.FilesSkipped,
		"errored", stats.FilesErrored,
		"inserted", stats.TemplatesInserted,
		"duplicates", stats.TemplatesDuplicated,
	)
}
