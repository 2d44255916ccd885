// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sparta assembles the technique catalog, its persisted record
// database, and the query layer into one handle. Open builds the catalog,
// seeds storage when it drifts from the in-code taxonomy, and wires the
// embedding provider; the handle then hands out routers, reindexers, and
// export generators over the shared state.
package sparta

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/sparta/ai"
	"github.com/poiesic/sparta/ai/openai"
	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/export"
	"github.com/poiesic/sparta/reindex"
	"github.com/poiesic/sparta/search"
	"github.com/poiesic/sparta/storage"
	"github.com/poiesic/sparta/storage/badger"
	"github.com/poiesic/sparta/store"
	"github.com/poiesic/sparta/taxonomy"
)

// Database is the assembled system: catalog store, record repository, and
// embedding provider behind one handle.
type Database struct {
	backend    *badger.Backend
	recordRepo storage.RecordRepository
	store      *store.Store
	provider   ai.AIProvider
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	tax      *taxonomy.Taxonomy
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing one
// from the AI config. The database takes ownership and closes it.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithTaxonomy replaces the built-in catalog, mainly for tests.
func WithTaxonomy(tax *taxonomy.Taxonomy) DatabaseOption {
	return func(o *databaseOptions) {
		o.tax = tax
	}
}

// NewDatabase opens the record database at filePath, seeding it from the
// catalog when the stored records differ from the in-code taxonomy.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tax := options.tax
	if tax == nil {
		tax = taxonomy.Default()
	}

	recordStore, err := store.Build(tax)
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	logger := slog.Default()

	if err := syncRecords(recordRepo, recordStore, logger); err != nil {
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			recordRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:    backend,
		recordRepo: recordRepo,
		store:      recordStore,
		provider:   provider,
		logger:     logger,
	}, nil
}

// syncRecords reseeds storage when the stored record set has drifted from
// the catalog. The in-code catalog is canonical.
func syncRecords(repo storage.RecordRepository, recordStore *store.Store, logger *slog.Logger) error {
	ctx := context.Background()

	stored, err := repo.AllRecords(ctx)
	if err != nil {
		return err
	}

	if core.FingerprintRecords(stored) == core.FingerprintRecords(recordStore.Records()) {
		return nil
	}

	logger.Info("seeding record database", "records", recordStore.Len())
	return repo.SeedRecords(ctx, recordStore.Records())
}

// Close releases the provider and storage.
func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.recordRepo.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Store returns the built catalog store.
func (db *Database) Store() *store.Store {
	return db.store
}

// RecordRepository returns the persisted record repository.
func (db *Database) RecordRepository() storage.RecordRepository {
	return db.recordRepo
}

// Provider returns the embedding provider.
func (db *Database) Provider() ai.AIProvider {
	return db.provider
}

// NewRouter creates a query router over the database's store and provider.
func (db *Database) NewRouter(opts ...search.Option) (*search.Router, error) {
	return search.NewRouter(db.store, db.provider, opts...)
}

// NewReindexer creates a reindexer that re-embeds the stored records.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) (*reindex.Reindexer, error) {
	return reindex.NewReindexer(db.recordRepo, db.provider, config, progress)
}

// NewExportGenerator creates a training-data generator over the catalog.
func (db *Database) NewExportGenerator() (*export.Generator, error) {
	return export.NewGenerator(db.store)
}
