package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// templateDoc holds the JSONB payload columns of a template row.
type templateDoc struct {
	repTargets []byte
	weekTotals []byte
	weeks      []byte
}

func marshalTemplateDoc(t *models.ProgramTemplate) (templateDoc, error) {
	var doc templateDoc
	var err error
	if doc.repTargets, err = json.Marshal(t.RepTargets); err != nil {
		return doc, fmt.Errorf("encoding rep targets: %w", err)
	}
	if doc.weekTotals, err = json.Marshal(t.WeekTotals); err != nil {
		return doc, fmt.Errorf("encoding week totals: %w", err)
	}
	if doc.weeks, err = json.Marshal(t.Weeks); err != nil {
		return doc, fmt.Errorf("encoding weeks: %w", err)
	}
	return doc, nil
}

func unmarshalTemplateDoc(doc templateDoc, t *models.ProgramTemplate) error {
	if err := json.Unmarshal(doc.repTargets, &t.RepTargets); err != nil {
		return fmt.Errorf("decoding rep targets: %w", err)
	}
	if err := json.Unmarshal(doc.weekTotals, &t.WeekTotals); err != nil {
		return fmt.Errorf("decoding week totals: %w", err)
	}
	if err := json.Unmarshal(doc.weeks, &t.Weeks); err != nil {
		return fmt.Errorf("decoding weeks: %w", err)
	}
	return nil
}

// InsertTemplate stores a new program template, assigning its id when
// unset. Returns ErrDuplicateName if the user already has a template with
// that name.
func (db *DB) InsertTemplate(ctx context.Context, t *models.ProgramTemplate) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	doc, err := marshalTemplateDoc(t)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO program_templates (id, user_id, name, week_count, rep_targets, week_totals, weeks)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.UserID, t.ProgramName, t.WeekCount, doc.repTargets, doc.weekTotals, doc.weeks)
	if isUniqueViolation(err) {
		return fmt.Errorf("template %q: %w", t.ProgramName, ErrDuplicateName)
	}
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

// GetTemplate retrieves one template by id, scoped to the owning user.
// Returns ErrNotFound if absent.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID, userID int) (*models.ProgramTemplate, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, week_count, rep_targets, week_totals, weeks, created_at, updated_at
		 FROM program_templates
		 WHERE id = $1 AND user_id = $2`,
		id, userID)

	var t models.ProgramTemplate
	var doc templateDoc
	err := row.Scan(&t.ID, &t.UserID, &t.ProgramName, &t.WeekCount,
		&doc.repTargets, &doc.weekTotals, &doc.weeks, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}
	if err := unmarshalTemplateDoc(doc, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTemplates retrieves all of a user's templates ordered by name.
func (db *DB) ListTemplates(ctx context.Context, userID int) ([]models.ProgramTemplate, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, week_count, rep_targets, week_totals, weeks, created_at, updated_at
		 FROM program_templates
		 WHERE user_id = $1
		 ORDER BY name ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.ProgramTemplate
	for rows.Next() {
		var t models.ProgramTemplate
		var doc templateDoc
		if err := rows.Scan(&t.ID, &t.UserID, &t.ProgramName, &t.WeekCount,
			&doc.repTargets, &doc.weekTotals, &doc.weeks, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if err := unmarshalTemplateDoc(doc, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// UpdateTemplate replaces a template's content by id. Returns ErrNotFound
// if the template does not exist, ErrDuplicateName on a rename collision.
func (db *DB) UpdateTemplate(ctx context.Context, t *models.ProgramTemplate) error {
	doc, err := marshalTemplateDoc(t)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx,
		`UPDATE program_templates
		 SET name = $3, week_count = $4, rep_targets = $5, week_totals = $6, weeks = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		t.ID, t.UserID, t.ProgramName, t.WeekCount, doc.repTargets, doc.weekTotals, doc.weeks)
	if isUniqueViolation(err) {
		return fmt.Errorf("template %q: %w", t.ProgramName, ErrDuplicateName)
	}
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// DeleteTemplate removes a template by id. Returns true if a row was
// deleted, false if nothing matched.
func (db *DB) DeleteTemplate(ctx context.Context, id uuid.UUID, userID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM program_templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting template: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
