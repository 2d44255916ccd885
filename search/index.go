package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/poiesic/sparta/ai"
	"github.com/poiesic/sparta/core"
)

// Index holds one embedding vector per record and answers similarity
// queries against them. Vectors are kept in record order; the index is
// immutable after construction and safe for concurrent reads.
type Index struct {
	records     []core.Record
	vectors     [][]float32
	byID        map[string]int
	provider    ai.AIProvider
	fingerprint string
	logger      *slog.Logger
}

// BuildIndex embeds every record in one batch and assembles the index.
// Returns ErrEmbeddingUnavailable when the embedding service fails.
func BuildIndex(ctx context.Context, records []core.Record, provider ai.AIProvider) (*Index, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	logger := slog.Default().With("component", "embedding-index")
	logger.Info("building embedding index", "records", len(records), "provider", provider.Name())

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.EmbeddingText()
	}

	vectors, err := provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		logger.Error("failed to embed records", "count", len(texts), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
	}
	if len(vectors) != len(records) {
		return nil, fmt.Errorf("%w: embedder returned %d vectors for %d records",
			ErrEmbeddingUnavailable, len(vectors), len(records))
	}

	return newIndex(records, vectors, provider, logger), nil
}

func newIndex(records []core.Record, vectors [][]float32, provider ai.AIProvider, logger *slog.Logger) *Index {
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		byID[rec.ID] = i
	}
	return &Index{
		records:     records,
		vectors:     vectors,
		byID:        byID,
		provider:    provider,
		fingerprint: core.FingerprintRecords(records),
		logger:      logger,
	}
}

// Snapshot captures the index state for persistence. The provider name and
// record fingerprint travel with the vectors so a restore can detect drift.
func (idx *Index) Snapshot() core.IndexSnapshot {
	ids := make([]string, len(idx.records))
	for i, rec := range idx.records {
		ids[i] = rec.ID
	}
	return core.IndexSnapshot{
		Provider:    idx.provider.Name(),
		Fingerprint: idx.fingerprint,
		RecordIDs:   ids,
		Vectors:     idx.vectors,
	}
}

// Persist writes the index snapshot to path.
func (idx *Index) Persist(path string) error {
	snap := idx.Snapshot()
	bs := make([]byte, core.IndexSnapshotMUS.Size(snap))
	core.IndexSnapshotMUS.Marshal(snap, bs)

	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return fmt.Errorf("persisting index to %s: %w", path, err)
	}
	idx.logger.Info("persisted embedding index", "path", path, "vectors", len(idx.vectors))
	return nil
}

// RestoreIndex loads a persisted snapshot and verifies it against the
// current records and provider. Returns ErrStaleIndex when the snapshot was
// built with a different model or from a different record set; callers are
// expected to rebuild in that case.
func RestoreIndex(path string, records []core.Record, provider ai.AIProvider) (*Index, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	snap, _, err := core.IndexSnapshotMUS.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable snapshot at %s: %w", ErrStaleIndex, path, err)
	}

	if snap.Provider != provider.Name() {
		return nil, fmt.Errorf("%w: built with provider %q, current provider is %q",
			ErrStaleIndex, snap.Provider, provider.Name())
	}
	if snap.Fingerprint != core.FingerprintRecords(records) {
		return nil, fmt.Errorf("%w: record set changed since the index was built", ErrStaleIndex)
	}
	if len(snap.Vectors) != len(records) {
		return nil, fmt.Errorf("%w: snapshot has %d vectors for %d records",
			ErrStaleIndex, len(snap.Vectors), len(records))
	}

	logger := slog.Default().With("component", "embedding-index")
	logger.Info("restored embedding index", "path", path, "vectors", len(snap.Vectors))
	return newIndex(records, snap.Vectors, provider, logger), nil
}

// SimilarityRank scores every record vector against the query vector and
// returns the topK best, best first, dropping matches below minScore. The
// topK cut happens before the minScore filter, so at most topK results are
// considered regardless of threshold.
func (idx *Index) SimilarityRank(queryVec []float32, topK int, minScore float32) []core.SimilarityMatch {
	type scored struct {
		pos   int
		score float32
	}
	all := make([]scored, len(idx.vectors))
	for i, vec := range idx.vectors {
		all[i] = scored{pos: i, score: CosineSimilarity(vec, queryVec)}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})
	if topK > 0 && len(all) > topK {
		all = all[:topK]
	}

	matches := make([]core.SimilarityMatch, 0, len(all))
	for _, s := range all {
		if s.score >= minScore {
			matches = append(matches, core.SimilarityMatch{
				Record: idx.records[s.pos],
				Score:  s.score,
			})
		}
	}
	return matches
}

// Query embeds the query text and ranks records against it.
// Returns ErrEmbeddingUnavailable when the embedding service fails.
func (idx *Index) Query(ctx context.Context, query string, topK int, minScore float32) ([]core.SimilarityMatch, error) {
	queryVec, err := idx.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("failed to embed query", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
	}
	return idx.SimilarityRank(queryVec, topK, minScore), nil
}

// Related finds the records most similar to the one identified by id, using
// its description as the probe text. The record itself is never part of the
// result. Returns an empty result when the id is unknown.
func (idx *Index) Related(ctx context.Context, id string, topK int) ([]core.SimilarityMatch, error) {
	pos, ok := idx.byID[id]
	if !ok {
		return nil, nil
	}

	// One extra candidate so the result still has topK entries after the
	// record itself is removed.
	matches, err := idx.Query(ctx, idx.records[pos].Description, topK+1, 0)
	if err != nil {
		return nil, err
	}

	related := make([]core.SimilarityMatch, 0, topK)
	for _, m := range matches {
		if m.Record.ID == id {
			continue
		}
		related = append(related, m)
		if len(related) == topK {
			break
		}
	}
	return related, nil
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}
