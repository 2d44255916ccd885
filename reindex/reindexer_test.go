package reindex

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sparta/ai/mock"
	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/search"
	"github.com/poiesic/sparta/storage"
	"github.com/poiesic/sparta/storage/badger"
	"github.com/poiesic/sparta/store"
	"github.com/poiesic/sparta/taxonomy"
)

func seededRepo(t *testing.T) (storage.RecordRepository, []core.Record) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	s, err := store.Build(taxonomy.Default())
	require.NoError(t, err)
	require.NoError(t, repo.SeedRecords(context.Background(), s.Records()))
	return repo, s.Records()
}

// testConfig keeps retries fast and the pool single-threaded so the shared
// mock embedder sees serialized calls.
func testConfig(batchSize int) *Config {
	return &Config{
		BatchSize:      batchSize,
		ReportInterval: 50,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		PoolSize:       1,
	}
}

func TestNewReindexer(t *testing.T) {
	repo, _ := seededRepo(t)
	provider := mock.NewMockProvider()

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewReindexer(nil, provider, nil, nil)
		assert.ErrorIs(t, err, ErrRepositoryRequired)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewReindexer(repo, nil, nil, nil)
		assert.ErrorIs(t, err, ErrProviderRequired)
	})

	t.Run("defaults applied", func(t *testing.T) {
		r, err := NewReindexer(repo, provider, nil, nil)
		require.NoError(t, err)
		defer r.Close()
		assert.Equal(t, DefaultConfig().BatchSize, r.config.BatchSize)
	})
}

func TestReindexer_Run(t *testing.T) {
	repo, records := seededRepo(t)
	provider := mock.NewMockProvider()

	var progress bytes.Buffer
	r, err := NewReindexer(repo, provider, testConfig(50), &progress)
	require.NoError(t, err)
	defer r.Close()

	snap, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, mock.ProviderName, snap.Provider)
	assert.Equal(t, core.FingerprintRecords(records), snap.Fingerprint)
	require.Len(t, snap.Vectors, len(records))
	require.Len(t, snap.RecordIDs, len(records))

	// Seed order survives batching.
	for i := range records {
		assert.Equal(t, records[i].ID, snap.RecordIDs[i])
	}

	// Vectors come out unit length.
	for _, vec := range [][]float32{snap.Vectors[0], snap.Vectors[len(snap.Vectors)-1]} {
		var magnitude float64
		for _, v := range vec {
			magnitude += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-5)
	}

	assert.Contains(t, progress.String(), "Reindex complete")
}

func TestReindexer_Run_EmptyRepository(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	r, err := NewReindexer(repo, mock.NewMockProvider(), testConfig(10), nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestReindexer_Run_EmbedderFailure(t *testing.T) {
	repo, _ := seededRepo(t)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}
	provider := mock.NewMockProviderWithEmbedder(embedder)

	r, err := NewReindexer(repo, provider, testConfig(100), nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding service down")
}

func TestReindexer_SnapshotRestores(t *testing.T) {
	repo, records := seededRepo(t)
	provider := mock.NewMockProvider()

	r, err := NewReindexer(repo, provider, testConfig(64), nil)
	require.NoError(t, err)
	defer r.Close()

	snap, err := r.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sparta.index")
	require.NoError(t, WriteSnapshot(snap, path))

	idx, err := search.RestoreIndex(path, records, provider)
	require.NoError(t, err)
	assert.Equal(t, len(records), idx.Len())
}
