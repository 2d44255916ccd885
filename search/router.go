package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/sparta/ai"
	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/store"
)

// Semantic query defaults, applied when the caller does not override them.
const (
	DefaultTopK     = 5
	DefaultMinScore = 0.3
)

// ResponseKind tells how a query was answered.
type ResponseKind int

const (
	// TacticQuery means the query named a tactic and was answered with the
	// full technique listing for it.
	TacticQuery ResponseKind = iota + 1
	// SemanticQuery means the query went through embedding similarity.
	SemanticQuery
)

// Response is the routed answer to one query. Exactly one of Records or
// Matches is populated, depending on Kind.
type Response struct {
	Kind    ResponseKind
	Query   string
	Tactic  string
	Records []core.Record
	Matches []core.SimilarityMatch
}

// tacticRoute binds a trigger phrase to a tactic name. Routes are checked
// in declaration order and the first hit wins, so more specific phrases
// must come before generic ones.
type tacticRoute struct {
	keyword string
	tactic  string
}

var tacticRoutes = []tacticRoute{
	{"reconnaissance", "Reconnaissance"},
	{"resource development", "Resource Development"},
	{"initial access", "Initial Access"},
	{"execution", "Execution"},
	{"persistence", "Persistence"},
	{"defense evasion", "Defense Evasion"},
	{"lateral movement", "Lateral Movement"},
	{"exfiltration", "Exfiltration"},
	{"impact", "Impact"},
}

// Router answers free-form queries: queries that name a tactic get the
// tactic listing, everything else goes through the embedding index. The
// index is built lazily on first use and persisted for later runs.
type Router struct {
	store     *store.Store
	provider  ai.AIProvider
	index     *Index
	indexPath string
	topK      int
	minScore  float32
	monitor   Monitor
	logger    *slog.Logger
}

// Option configures a Router.
type Option func(*Router) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithIndexPath sets the file used to persist and restore the embedding
// index. When empty the index is rebuilt on every process start.
func WithIndexPath(path string) Option {
	return func(r *Router) error {
		r.indexPath = path
		return nil
	}
}

// WithTopK sets how many semantic matches a query returns.
func WithTopK(topK int) Option {
	return func(r *Router) error {
		if topK <= 0 {
			return fmt.Errorf("topK must be positive, got %d", topK)
		}
		r.topK = topK
		return nil
	}
}

// WithMinScore sets the similarity floor for semantic matches.
func WithMinScore(minScore float32) Option {
	return func(r *Router) error {
		r.minScore = minScore
		return nil
	}
}

// WithMonitor sets a monitor that observes query routing.
func WithMonitor(monitor Monitor) Option {
	return func(r *Router) error {
		r.monitor = monitor
		return nil
	}
}

// NewRouter creates a query router over the given store and provider.
func NewRouter(recordStore *store.Store, provider ai.AIProvider, opts ...Option) (*Router, error) {
	if recordStore == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Router{
		store:    recordStore,
		provider: provider,
		topK:     DefaultTopK,
		minScore: DefaultMinScore,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// EnsureIndex makes the embedding index available: restore it from the
// configured path when the snapshot is still valid, otherwise build it
// fresh and persist the result. Safe to call repeatedly; only the first
// call does work.
func (r *Router) EnsureIndex(ctx context.Context) error {
	if r.index != nil {
		return nil
	}

	records := r.store.Records()

	if r.indexPath != "" {
		idx, err := RestoreIndex(r.indexPath, records, r.provider)
		switch {
		case err == nil:
			r.index = idx
			r.monitor.AfterIndexReady(idx.Len())
			return nil
		case errors.Is(err, ErrStaleIndex):
			r.logger.Warn("persisted index is stale, rebuilding", "path", r.indexPath, "reason", err)
		case os.IsNotExist(err):
			r.logger.Info("no persisted index, building", "path", r.indexPath)
		default:
			return err
		}
	}

	idx, err := BuildIndex(ctx, records, r.provider)
	if err != nil {
		return err
	}
	r.index = idx

	if r.indexPath != "" {
		if err := idx.Persist(r.indexPath); err != nil {
			// A failed persist costs a rebuild next run but the index in
			// memory is fine.
			r.logger.Warn("failed to persist index", "path", r.indexPath, "err", err)
		}
	}
	r.monitor.AfterIndexReady(idx.Len())
	return nil
}

// Route answers a query. A query containing a tactic trigger phrase is
// answered from the store without touching the embedding service; anything
// else is a semantic query. Returns ErrSearchUnavailable when a semantic
// query cannot be served because the embedding backend failed.
func (r *Router) Route(ctx context.Context, query string) (*Response, error) {
	r.monitor.Start(query)

	queryLower := strings.ToLower(query)
	for _, route := range tacticRoutes {
		if strings.Contains(queryLower, route.keyword) {
			r.logger.Debug("query routed to tactic", "keyword", route.keyword, "tactic", route.tactic)
			r.monitor.RoutedToTactic(route.keyword, route.tactic)

			resp := &Response{
				Kind:    TacticQuery,
				Query:   query,
				Tactic:  route.tactic,
				Records: r.store.FilterByTactic(route.tactic),
			}
			r.monitor.Finish(resp)
			return resp, nil
		}
	}

	if err := r.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	matches, err := r.index.Query(ctx, query, r.topK, r.minScore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	r.monitor.AfterSimilarityRank(matches)

	resp := &Response{
		Kind:    SemanticQuery,
		Query:   query,
		Matches: matches,
	}
	r.monitor.Finish(resp)
	return resp, nil
}

// Related finds records similar to an existing record. Returns
// store.ErrNotFound via the store when the id is unknown.
func (r *Router) Related(ctx context.Context, id string, topK int) ([]core.SimilarityMatch, error) {
	if _, err := r.store.FindByID(id); err != nil {
		return nil, err
	}
	if err := r.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	matches, err := r.index.Related(ctx, id, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	return matches, nil
}

// Index exposes the lazily built embedding index, or nil before the first
// semantic query.
func (r *Router) Index() *Index {
	return r.index
}
