package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/upsert"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompletionStore adapts the program_day_completions table to the upsert
// engine's store contract, keyed by
// (user, athlete, program, start date, week, day).
type CompletionStore struct {
	pool *pgxpool.Pool
}

// Completions returns the keyed store for program-day completion records.
func (db *DB) Completions() *CompletionStore {
	return &CompletionStore{pool: db.Pool}
}

var _ upsert.Store[models.CompletionKey, models.ProgramDayCompletion] = (*CompletionStore)(nil)

// FindByKey looks up a completion record by its composite key. found is
// false, with no error, when the key is absent.
func (s *CompletionStore) FindByKey(ctx context.Context, key models.CompletionKey) (uuid.UUID, models.ProgramDayCompletion, bool, error) {
	start, err := models.ParseISODate(key.StartDate)
	if err != nil {
		return uuid.Nil, models.ProgramDayCompletion{}, false, err
	}
	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, athlete_name, program_name, start_date, week_number, day_number,
		 completed, rating, intensity, completed_at, updated_at
		 FROM program_day_completions
		 WHERE user_id = $1 AND athlete_name = $2 AND program_name = $3
		   AND start_date = $4 AND week_number = $5 AND day_number = $6`,
		key.UserID, key.AthleteName, key.ProgramName, start.Time, key.WeekNumber, key.DayNumber)

	var c models.ProgramDayCompletion
	err = row.Scan(&c.ID, &c.UserID, &c.AthleteName, &c.ProgramName, &c.StartDate.Time,
		&c.WeekNumber, &c.DayNumber, &c.Completed, &c.Rating, &c.Intensity,
		&c.CompletedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, models.ProgramDayCompletion{}, false, nil
	}
	if err != nil {
		return uuid.Nil, models.ProgramDayCompletion{}, false, fmt.Errorf("querying completion: %w", err)
	}
	return c.ID, c, true, nil
}

// Insert stores a new completion record and returns its assigned id.
func (s *CompletionStore) Insert(ctx context.Context, c models.ProgramDayCompletion) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO program_day_completions
		 (id, user_id, athlete_name, program_name, start_date, week_number, day_number,
		  completed, rating, intensity, completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		id, c.UserID, c.AthleteName, c.ProgramName, c.StartDate.Time, c.WeekNumber, c.DayNumber,
		c.Completed, string(c.Rating), c.Intensity, c.CompletedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting completion: %w", err)
	}
	return id, nil
}

// Update replaces the non-key fields of an existing completion record and
// stamps updated_at.
func (s *CompletionStore) Update(ctx context.Context, id uuid.UUID, c models.ProgramDayCompletion) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE program_day_completions
		 SET completed = $2, rating = $3, intensity = $4, completed_at = $5, updated_at = NOW()
		 WHERE id = $1`,
		id, c.Completed, string(c.Rating), c.Intensity, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("updating completion: %w", err)
	}
	return nil
}

// DeleteByKey removes the completion record for the key if present.
func (s *CompletionStore) DeleteByKey(ctx context.Context, key models.CompletionKey) (bool, error) {
	start, err := models.ParseISODate(key.StartDate)
	if err != nil {
		return false, err
	}
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM program_day_completions
		 WHERE user_id = $1 AND athlete_name = $2 AND program_name = $3
		   AND start_date = $4 AND week_number = $5 AND day_number = $6`,
		key.UserID, key.AthleteName, key.ProgramName, start.Time, key.WeekNumber, key.DayNumber)
	if err != nil {
		return false, fmt.Errorf("deleting completion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListCompletions retrieves the completion records for one program
// instance in (week, day) order.
func (db *DB) ListCompletions(ctx context.Context, userID int, athleteName, programName string, startDate models.ISODate) ([]models.ProgramDayCompletion, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, athlete_name, program_name, start_date, week_number, day_number,
		 completed, rating, intensity, completed_at, updated_at
		 FROM program_day_completions
		 WHERE user_id = $1 AND athlete_name = $2 AND program_name = $3 AND start_date = $4
		 ORDER BY week_number ASC, day_number ASC`,
		userID, athleteName, programName, startDate.Time)
	if err != nil {
		return nil, fmt.Errorf("querying completions: %w", err)
	}
	defer rows.Close()

	var result []models.ProgramDayCompletion
	for rows.Next() {
		var c models.ProgramDayCompletion
		if err := rows.Scan(&c.ID, &c.UserID, &c.AthleteName, &c.ProgramName, &c.StartDate.Time,
			&c.WeekNumber, &c.DayNumber, &c.Completed, &c.Rating, &c.Intensity,
			&c.CompletedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
