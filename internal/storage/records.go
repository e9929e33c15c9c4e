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

// PersonalRecordStore adapts the personal_records table to the upsert
// engine's store contract. The (user, athlete, exercise, rep max) key is
// backed by a unique index, but uniqueness on the happy path comes from
// the engine's lookup-then-write.
type PersonalRecordStore struct {
	pool *pgxpool.Pool
}

// PersonalRecords returns the keyed store for personal records.
func (db *DB) PersonalRecords() *PersonalRecordStore {
	return &PersonalRecordStore{pool: db.Pool}
}

var _ upsert.Store[models.PRKey, models.PersonalRecord] = (*PersonalRecordStore)(nil)

// FindByKey looks up a record by its composite key. found is false, with
// no error, when the key is absent.
func (s *PersonalRecordStore) FindByKey(ctx context.Context, key models.PRKey) (uuid.UUID, models.PersonalRecord, bool, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, athlete_name, exercise_name, rep_max, weight, recorded_at, updated_at
		 FROM personal_records
		 WHERE user_id = $1 AND athlete_name = $2 AND exercise_name = $3 AND rep_max = $4`,
		key.UserID, key.AthleteName, key.ExerciseName, key.RepMax)

	var r models.PersonalRecord
	err := row.Scan(&r.ID, &r.UserID, &r.AthleteName, &r.ExerciseName, &r.RepMax,
		&r.Weight, &r.RecordedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, models.PersonalRecord{}, false, nil
	}
	if err != nil {
		return uuid.Nil, models.PersonalRecord{}, false, fmt.Errorf("querying personal record: %w", err)
	}
	return r.ID, r, true, nil
}

// Insert stores a new record and returns its assigned id.
func (s *PersonalRecordStore) Insert(ctx context.Context, r models.PersonalRecord) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO personal_records (id, user_id, athlete_name, exercise_name, rep_max, weight)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		id, r.UserID, r.AthleteName, r.ExerciseName, r.RepMax, r.Weight)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting personal record: %w", err)
	}
	return id, nil
}

// Update replaces the non-key fields of an existing record and stamps
// updated_at.
func (s *PersonalRecordStore) Update(ctx context.Context, id uuid.UUID, r models.PersonalRecord) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE personal_records SET weight = $2, updated_at = NOW() WHERE id = $1`,
		id, r.Weight)
	if err != nil {
		return fmt.Errorf("updating personal record: %w", err)
	}
	return nil
}

// DeleteByKey removes the record for the key if present.
func (s *PersonalRecordStore) DeleteByKey(ctx context.Context, key models.PRKey) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM personal_records
		 WHERE user_id = $1 AND athlete_name = $2 AND exercise_name = $3 AND rep_max = $4`,
		key.UserID, key.AthleteName, key.ExerciseName, key.RepMax)
	if err != nil {
		return false, fmt.Errorf("deleting personal record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPersonalRecords retrieves an athlete's personal records ordered by
// exercise then rep max.
func (db *DB) ListPersonalRecords(ctx context.Context, userID int, athleteName string) ([]models.PersonalRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, athlete_name, exercise_name, rep_max, weight, recorded_at, updated_at
		 FROM personal_records
		 WHERE user_id = $1 AND athlete_name = $2
		 ORDER BY exercise_name ASC, rep_max ASC`,
		userID, athleteName)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	var result []models.PersonalRecord
	for rows.Next() {
		var r models.PersonalRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.AthleteName, &r.ExerciseName, &r.RepMax,
			&r.Weight, &r.RecordedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning personal record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
