// Package upsert implements idempotent create-or-update of records
// addressed by a composite natural key. The engine enforces at most one
// record per key by looking up the key before writing; concurrent writers
// racing on the same key are left to the store's own semantics (last write
// wins).
package upsert

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Store is the persistence collaborator the engine drives. K is the
// composite key type, R the full record type; R must carry everything K
// does. FindByKey reports found=false (not an error) when no record
// matches.
type Store[K comparable, R any] interface {
	FindByKey(ctx context.Context, key K) (id uuid.UUID, rec R, found bool, err error)
	Insert(ctx context.Context, rec R) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, rec R) error
	DeleteByKey(ctx context.Context, key K) (bool, error)
}

// Engine performs keyed upserts against a Store. keyOf extracts the
// natural key from a record.
type Engine[K comparable, R any] struct {
	store Store[K, R]
	keyOf func(R) K
}

// New creates an engine over the given store.
func New[K comparable, R any](store Store[K, R], keyOf func(R) K) *Engine[K, R] {
	return &Engine[K, R]{store: store, keyOf: keyOf}
}

// Upsert inserts the record if its key is absent, or replaces the non-key
// fields of the existing record. The returned id is the existing record's
// id on update and the newly assigned id on insert.
func (e *Engine[K, R]) Upsert(ctx context.Context, rec R) (uuid.UUID, error) {
	key := e.keyOf(rec)
	id, _, found, err := e.store.FindByKey(ctx, key)
	if err != nil {
		return uuid.Nil, fmt.Errorf("looking up key %v: %w", key, err)
	}
	if found {
		if err := e.store.Update(ctx, id, rec); err != nil {
			return uuid.Nil, fmt.Errorf("updating key %v: %w", key, err)
		}
		return id, nil
	}
	id, err = e.store.Insert(ctx, rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting key %v: %w", key, err)
	}
	return id, nil
}

// BulkUpsert applies Upsert to each record in order and returns the
// resulting ids in input order. There is no batch atomicity: a failure
// partway through leaves all prior upserts committed, and the error
// reports how many succeeded.
func (e *Engine[K, R]) BulkUpsert(ctx context.Context, recs []R) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(recs))
	for i, rec := range recs {
		id, err := e.Upsert(ctx, rec)
		if err != nil {
			return ids, fmt.Errorf("bulk upsert item %d (after %d committed): %w", i, len(ids), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteByKey removes the record for the key if present. Returns true if a
// record existed and was removed; a missing key is false, not an error.
func (e *Engine[K, R]) DeleteByKey(ctx context.Context, key K) (bool, error) {
	return e.store.DeleteByKey(ctx, key)
}
