package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claude/liftlog/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	TemplatesInserted   int
	TemplatesDuplicated int
}

// Importer reads template YAML files from a directory and inserts them
// into the store.
type Importer struct {
	db     *storage.DB
	state  *StateDB
	log    *slog.Logger
	userID int
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil, in which case every file
// is processed on every run.
func New(db *storage.DB, state *StateDB, userID int, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, state: state, userID: userID, log: log, dryRun: dryRun}
}

// Import processes all .yaml/.yml files directly under dir, in name order.
// Per-file failures are logged and counted, not fatal; only directory-level
// and store errors abort the run.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading template dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		if err := imp.importFile(ctx, dir, name); err != nil {
			if errors.Is(err, context.Canceled) {
				return &imp.stats, err
			}
			imp.log.Error("import failed", "file", name, "error", err)
			imp.stats.FilesErrored++
		}
	}
	return &imp.stats, nil
}

func (imp *Importer) importFile(ctx context.Context, dir, name string) error {
	path := filepath.Join(dir, name)
	hash, size, err := hashFile(path)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", name, err)
	}

	if imp.state != nil {
		done, err := imp.state.IsImported(name, size, hash)
		if err != nil {
			return fmt.Errorf("checking import state: %w", err)
		}
		if done {
			imp.stats.FilesSkipped++
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	tpl, err := ParseTemplate(data)
	if err != nil {
		return err
	}
	tpl.UserID = imp.userID
	imp.stats.FilesProcessed++

	if imp.dryRun {
		imp.log.Info("dry run: would import template",
			"file", name, "program", tpl.ProgramName, "weeks", tpl.WeekCount)
		return nil
	}

	err = imp.db.InsertTemplate(ctx, tpl)
	switch {
	case errors.Is(err, storage.ErrDuplicateName):
		// Existing template wins; the file is still marked imported so
		// re-runs stay quiet.
		imp.stats.TemplatesDuplicated++
		imp.log.Info("template already exists, skipping", "file", name, "program", tpl.ProgramName)
	case err != nil:
		return err
	default:
		imp.stats.TemplatesInserted++
		imp.log.Info("imported template", "file", name, "program", tpl.ProgramName, "weeks", tpl.WeekCount)
	}

	if imp.state != nil {
		if err := imp.state.MarkImported(name, size, hash); err != nil {
			return fmt.Errorf("recording import state: %w", err)
		}
	}
	return nil
}
