package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// InsertLibraryExercise adds an entry to the user's exercise library.
// Returns ErrDuplicateName if an entry with that name already exists; the
// existing entry is never overwritten.
func (db *DB) InsertLibraryExercise(ctx context.Context, e *models.LibraryExercise) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_library (id, user_id, name, category, notes)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.ID, e.UserID, e.Name, e.Category, e.Notes)
	if isUniqueViolation(err) {
		return fmt.Errorf("exercise %q: %w", e.Name, ErrDuplicateName)
	}
	if err != nil {
		return fmt.Errorf("inserting library exercise: %w", err)
	}
	return nil
}

// ListLibraryExercises retrieves the user's exercise library ordered by name.
func (db *DB) ListLibraryExercises(ctx context.Context, userID int) ([]models.LibraryExercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, category, notes, created_at
		 FROM exercise_library
		 WHERE user_id = $1
		 ORDER BY name ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying library exercises: %w", err)
	}
	defer rows.Close()

	var result []models.LibraryExercise
	for rows.Next() {
		var e models.LibraryExercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Category, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning library exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// DeleteLibraryExercise removes an entry by name. Returns true if a row
// was deleted, false if nothing matched.
func (db *DB) DeleteLibraryExercise(ctx context.Context, userID int, name string) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercise_library WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return false, fmt.Errorf("deleting library exercise: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
