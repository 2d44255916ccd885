package storage

import (
	"context"

	"github.com/poiesic/sparta/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// RecordRepository persists the flattened technique catalog. Records keep
// the order in which they were seeded; AllRecords returns them in that
// order, which is the order the embedding index depends on.
type RecordRepository interface {
	Repository

	// SeedRecords replaces the stored catalog with the given records,
	// preserving their order. Records are validated before anything is
	// written.
	SeedRecords(ctx context.Context, records []core.Record) error

	// GetRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id string) (core.Record, error)

	// GetRecords retrieves multiple records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetRecords(ctx context.Context, ids ...string) ([]core.Record, error)

	// AllRecords retrieves every stored record in seed order.
	AllRecords(ctx context.Context) ([]core.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
