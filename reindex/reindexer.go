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

package reindex

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/sparta/ai"
	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/storage"
)

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of records to embed in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// PoolSize is the number of batches embedded concurrently.
	// Zero or negative selects a default based on the CPU count.
	PoolSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		PoolSize:       poolSize,
	}
}

// Reindexer rebuilds the embedding index for every record in a repository.
// Batches are embedded concurrently on a worker pool; vectors keep their
// record positions so the resulting snapshot preserves seed order.
type Reindexer struct {
	repo     storage.RecordRepository
	provider ai.AIProvider
	config   *Config
	progress io.Writer
	pool     *ants.Pool
}

// NewReindexer creates a new reindexer.
// config: nil selects DefaultConfig
// progress: where to write progress output (typically os.Stderr); nil discards
func NewReindexer(repo storage.RecordRepository, provider ai.AIProvider, config *Config, progress io.Writer) (*Reindexer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	poolSize := config.PoolSize
	if poolSize < 1 {
		poolSize = DefaultConfig().PoolSize
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Reindexer{
		repo:     repo,
		provider: provider,
		config:   config,
		progress: progress,
		pool:     pool,
	}, nil
}

// Close releases the worker pool.
func (r *Reindexer) Close() {
	r.pool.Release()
}

// Run embeds every record in the repository and assembles an index snapshot
// tagged with the provider name and the record fingerprint.
// Progress is reported to the configured writer.
func (r *Reindexer) Run(ctx context.Context) (core.IndexSnapshot, error) {
	records, err := r.repo.AllRecords(ctx)
	if err != nil {
		return core.IndexSnapshot{}, fmt.Errorf("failed to load records: %w", err)
	}
	if len(records) == 0 {
		return core.IndexSnapshot{}, ErrNoRecords
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d records (batch size: %d)\n",
		len(records), r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, len(records), r.config.ReportInterval)
	tracker.Start()

	vectors := make([][]float32, len(records))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	batchSize := r.config.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		batch := records[start:end]
		dest := vectors[start:end]

		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()

			if err := r.embedBatch(ctx, batch, dest); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			tracker.Increment(len(batch))
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return core.IndexSnapshot{}, firstErr
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Embedded %d records in %v (%.1f records/sec)\n",
		len(records), elapsed.Round(time.Second), float64(len(records))/elapsed.Seconds())

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}

	return core.IndexSnapshot{
		Provider:    r.provider.Name(),
		Fingerprint: core.FingerprintRecords(records),
		RecordIDs:   ids,
		Vectors:     vectors,
	}, nil
}

// embedBatch embeds one batch with retry and writes normalized vectors into
// dest, which aliases the batch's region of the full vector slice.
func (r *Reindexer) embedBatch(ctx context.Context, batch []core.Record, dest [][]float32) error {
	texts := make([]string, len(batch))
	for i, rec := range batch {
		texts[i] = rec.EmbeddingText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = r.provider.Embedder().EmbedTexts(ctx, texts)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(embeddings))
	}

	for i := range dest {
		dest[i] = NormalizeVector(embeddings[i])
	}
	return nil
}

// WriteSnapshot persists a snapshot to path in the on-disk index format.
func WriteSnapshot(snap core.IndexSnapshot, path string) error {
	if err := os.WriteFile(path, storage.MarshalIndexSnapshot(snap), 0o644); err != nil {
		return fmt.Errorf("writing index snapshot to %s: %w", path, err)
	}
	return nil
}
