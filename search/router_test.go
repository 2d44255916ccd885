package search

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sparta/ai/mock"
	"github.com/poiesic/sparta/store"
)

func TestNewRouter(t *testing.T) {
	s := buildTestStore(t)

	t.Run("valid", func(t *testing.T) {
		r, err := NewRouter(s, mock.NewMockProvider())
		require.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewRouter(nil, mock.NewMockProvider())
		assert.ErrorIs(t, err, ErrStoreRequired)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewRouter(s, nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})

	t.Run("invalid topK", func(t *testing.T) {
		_, err := NewRouter(s, mock.NewMockProvider(), WithTopK(0))
		assert.Error(t, err)
	})
}

func TestRouter_Route_TacticQuery(t *testing.T) {
	s := buildTestStore(t)
	provider := mock.NewMockProvider()
	r, err := NewRouter(s, provider)
	require.NoError(t, err)

	t.Run("tactic phrase dispatches to listing", func(t *testing.T) {
		resp, err := r.Route(context.Background(), "What are the reconnaissance techniques?")
		require.NoError(t, err)

		assert.Equal(t, TacticQuery, resp.Kind)
		assert.Equal(t, "Reconnaissance", resp.Tactic)
		assert.Len(t, resp.Records, 36)
		assert.Empty(t, resp.Matches)
	})

	t.Run("tactic queries never touch the embedder", func(t *testing.T) {
		embedder := provider.(*mock.MockProvider).GetMockEmbedder()
		embedder.Reset()

		_, err := r.Route(context.Background(), "tell me about defense evasion")
		require.NoError(t, err)
		assert.Zero(t, embedder.CallCount())
	})

	t.Run("first matching route wins", func(t *testing.T) {
		// "initial access" is checked before "execution" would ever match
		// this query.
		resp, err := r.Route(context.Background(), "initial access and execution techniques")
		require.NoError(t, err)
		assert.Equal(t, "Initial Access", resp.Tactic)
	})

	t.Run("case insensitive", func(t *testing.T) {
		resp, err := r.Route(context.Background(), "PERSISTENCE on satellites")
		require.NoError(t, err)
		assert.Equal(t, TacticQuery, resp.Kind)
		assert.Equal(t, "Persistence", resp.Tactic)
	})
}

func TestRouter_Route_SemanticQuery(t *testing.T) {
	s := buildTestStore(t)
	records := s.Records()
	provider := testProvider(records)

	r, err := NewRouter(s, provider)
	require.NoError(t, err)

	t.Run("falls through to similarity ranking", func(t *testing.T) {
		// The stub embedder maps each record's description to the same
		// vector as the record itself, so querying with a description pins
		// the top match.
		resp, err := r.Route(context.Background(), records[0].Description)
		require.NoError(t, err)

		assert.Equal(t, SemanticQuery, resp.Kind)
		assert.Empty(t, resp.Records)
		require.NotEmpty(t, resp.Matches)
		assert.Equal(t, records[0].ID, resp.Matches[0].Record.ID)
		assert.LessOrEqual(t, len(resp.Matches), DefaultTopK)
	})

	t.Run("all matches clear the similarity floor", func(t *testing.T) {
		resp, err := r.Route(context.Background(), records[0].Description)
		require.NoError(t, err)
		for _, m := range resp.Matches {
			assert.GreaterOrEqual(t, m.Score, float32(DefaultMinScore))
		}
	})
}

func TestRouter_Route_SearchUnavailable(t *testing.T) {
	s := buildTestStore(t)
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return nil, errors.New("connection refused")
	}
	r, err := NewRouter(s, mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)

	_, err = r.Route(context.Background(), "satellite signal hijacking")
	assert.ErrorIs(t, err, ErrSearchUnavailable)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestRouter_EnsureIndex_Persistence(t *testing.T) {
	s := buildTestStore(t)
	records := s.Records()
	path := filepath.Join(t.TempDir(), "index.mus")

	// First router builds and persists.
	r1, err := NewRouter(s, testProvider(records), WithIndexPath(path))
	require.NoError(t, err)
	require.NoError(t, r1.EnsureIndex(context.Background()))
	assert.FileExists(t, path)

	// Second router restores without embedding anything.
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		t.Fatal("restore path must not re-embed the catalog")
		return nil, nil
	}
	r2, err := NewRouter(s, mock.NewMockProviderWithEmbedder(embedder), WithIndexPath(path))
	require.NoError(t, err)
	require.NoError(t, r2.EnsureIndex(context.Background()))
	assert.Equal(t, len(records), r2.Index().Len())
}

func TestRouter_EnsureIndex_RebuildsStale(t *testing.T) {
	s := buildTestStore(t)
	records := s.Records()
	path := filepath.Join(t.TempDir(), "index.mus")

	r1, err := NewRouter(s, testProvider(records), WithIndexPath(path))
	require.NoError(t, err)
	require.NoError(t, r1.EnsureIndex(context.Background()))

	// A provider with a different name must not accept the snapshot.
	other := namedProvider{AIProvider: testProvider(records), name: "different-model"}
	r2, err := NewRouter(s, other, WithIndexPath(path))
	require.NoError(t, err)
	require.NoError(t, r2.EnsureIndex(context.Background()))
	assert.Equal(t, len(records), r2.Index().Len())

	// The rebuilt snapshot now carries the new provider name.
	restored, err := RestoreIndex(path, records, other)
	require.NoError(t, err)
	assert.Equal(t, len(records), restored.Len())
}

func TestRouter_Related(t *testing.T) {
	s := buildTestStore(t)
	records := s.Records()
	r, err := NewRouter(s, testProvider(records))
	require.NoError(t, err)

	t.Run("excludes self", func(t *testing.T) {
		matches, err := r.Related(context.Background(), "EX-0016", 3)
		require.NoError(t, err)
		for _, m := range matches {
			assert.NotEqual(t, "EX-0016", m.Record.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.Related(context.Background(), "ZZ-9999", 3)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRouter_Monitor(t *testing.T) {
	s := buildTestStore(t)
	mon := &capturingMonitor{}
	r, err := NewRouter(s, mock.NewMockProvider(), WithMonitor(mon))
	require.NoError(t, err)

	_, err = r.Route(context.Background(), "impact on space systems")
	require.NoError(t, err)

	assert.Equal(t, "impact on space systems", mon.started)
	assert.Equal(t, "impact", mon.keyword)
	assert.Equal(t, "Impact", mon.tactic)
	require.NotNil(t, mon.finished)
	assert.Equal(t, TacticQuery, mon.finished.Kind)
}

type capturingMonitor struct {
	noopMonitor
	started  string
	keyword  string
	tactic   string
	finished *Response
}

func (m *capturingMonitor) Start(query string) { m.started = query }
func (m *capturingMonitor) RoutedToTactic(keyword, tactic string) {
	m.keyword = keyword
	m.tactic = tactic
}
func (m *capturingMonitor) Finish(resp *Response) { m.finished = resp }
