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

// programDoc holds the JSONB payload columns of a program-instance row.
type programDoc struct {
	repTargets []byte
	weekTotals []byte
	weeks      []byte
}

func marshalProgramDoc(p *models.Program) (programDoc, error) {
	var doc programDoc
	var err error
	if doc.repTargets, err = json.Marshal(p.RepTargets); err != nil {
		return doc, fmt.Errorf("encoding rep targets: %w", err)
	}
	if doc.weekTotals, err = json.Marshal(p.WeekTotals); err != nil {
		return doc, fmt.Errorf("encoding week totals: %w", err)
	}
	if doc.weeks, err = json.Marshal(p.Weeks); err != nil {
		return doc, fmt.Errorf("encoding weeks: %w", err)
	}
	return doc, nil
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	var doc programDoc
	err := row.Scan(&p.ID, &p.UserID, &p.AthleteName, &p.ProgramName, &p.StartDate.Time,
		&p.WeekCount, &doc.repTargets, &doc.weekTotals, &doc.weeks, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc.repTargets, &p.RepTargets); err != nil {
		return nil, fmt.Errorf("decoding rep targets: %w", err)
	}
	if err := json.Unmarshal(doc.weekTotals, &p.WeekTotals); err != nil {
		return nil, fmt.Errorf("decoding week totals: %w", err)
	}
	if err := json.Unmarshal(doc.weeks, &p.Weeks); err != nil {
		return nil, fmt.Errorf("decoding weeks: %w", err)
	}
	return &p, nil
}

const programColumns = `id, user_id, athlete_name, program_name, start_date,
	week_count, rep_targets, week_totals, weeks, created_at, updated_at`

// InsertProgram stores a freshly materialized program instance, assigning
// its id when unset.
func (db *DB) InsertProgram(ctx context.Context, p *models.Program) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	doc, err := marshalProgramDoc(p)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO programs (id, user_id, athlete_name, program_name, start_date,
		 week_count, rep_targets, week_totals, weeks)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.UserID, p.AthleteName, p.ProgramName, p.StartDate.Time,
		p.WeekCount, doc.repTargets, doc.weekTotals, doc.weeks)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

// GetProgram retrieves one program instance by id, scoped to the owning
// user. Returns ErrNotFound if absent.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID, userID int) (*models.Program, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1 AND user_id = $2`,
		id, userID)
	p, err := scanProgram(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	return p, nil
}

// ListPrograms retrieves a user's program instances, optionally filtered by
// athlete name, newest start date first.
func (db *DB) ListPrograms(ctx context.Context, userID int, athleteName string) ([]models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE user_id = $1`
	args := []any{userID}
	if athleteName != "" {
		query += ` AND athlete_name = $2`
		args = append(args, athleteName)
	}
	query += ` ORDER BY start_date DESC, program_name ASC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// UpdateProgramWeeks patches the weeks document of a program instance,
// used after completion state is applied to an embedded day. Returns
// ErrNotFound if the program does not exist.
func (db *DB) UpdateProgramWeeks(ctx context.Context, id uuid.UUID, userID int, weeks []models.Week) error {
	payload, err := json.Marshal(weeks)
	if err != nil {
		return fmt.Errorf("encoding weeks: %w", err)
	}
	tag, err := db.Pool.Exec(ctx,
		`UPDATE programs SET weeks = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, payload)
	if err != nil {
		return fmt.Errorf("updating program weeks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteProgram removes a program instance by id. Returns true if a row
// was deleted, false if nothing matched.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID, userID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM programs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting program: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
