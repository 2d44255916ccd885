package search

import "github.com/poiesic/sparta/core"

// Monitor provides hooks to observe query routing and ranking.
// Implement this interface to trace how a query was answered.
type Monitor interface {
	Start(query string)
	RoutedToTactic(keyword, tactic string)
	AfterIndexReady(vectors int)
	AfterSimilarityRank(matches []core.SimilarityMatch)
	Finish(response *Response)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) RoutedToTactic(_, _ string)                   {}
func (n *noopMonitor) AfterIndexReady(_ int)                        {}
func (n *noopMonitor) AfterSimilarityRank(_ []core.SimilarityMatch) {}
func (n *noopMonitor) Finish(_ *Response)                           {}
