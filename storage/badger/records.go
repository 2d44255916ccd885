package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend *Backend
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (*RecordRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &RecordRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *RecordRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RecordRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SeedRecords replaces the stored catalog with the given records. Existing
// record and ordinal keys are removed first so a re-seed with a smaller
// catalog leaves no strays behind.
func (r *RecordRepository) SeedRecords(ctx context.Context, records []core.Record) error {
	for i, rec := range records {
		if err := core.ValidateRecord(rec); err != nil {
			return fmt.Errorf("seed record %d: %w", i, err)
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, recordPrefix+":"); err != nil {
			return err
		}
		if err := deletePrefix(tx, ordinalPrefix+":"); err != nil {
			return err
		}

		for i, rec := range records {
			if err := tx.Set(makeRecordKey(rec.ID), storage.MarshalRecord(rec)); err != nil {
				return err
			}
			if err := tx.Set(makeOrdinalKey(uint32(i)), []byte(rec.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecord retrieves a single record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id string) (core.Record, error) {
	var rec core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		rec, err = readRecord(tx, makeRecordKey(id))
		return err
	}, false)
	return rec, err
}

// GetRecords retrieves multiple records by their IDs. Missing IDs are
// skipped without error.
func (r *RecordRepository) GetRecords(ctx context.Context, ids ...string) ([]core.Record, error) {
	records := make([]core.Record, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			rec, err := readRecord(tx, makeRecordKey(id))
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// AllRecords retrieves every stored record in seed order by walking the
// ordinal index.
func (r *RecordRepository) AllRecords(ctx context.Context) ([]core.Record, error) {
	var records []core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ordinalPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id string
			err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			rec, err := readRecord(tx, makeRecordKey(id))
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ordinalPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

func readRecord(tx *badger.Txn, key []byte) (core.Record, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return core.Record{}, storage.ErrNotFound
	}
	if err != nil {
		return core.Record{}, err
	}

	var rec core.Record
	err = item.Value(func(val []byte) error {
		var err error
		rec, err = storage.UnmarshalRecord(val)
		return err
	})
	return rec, err
}

func deletePrefix(tx *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
