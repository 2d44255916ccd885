package search

import (
	"sort"
	"strings"

	"github.com/poiesic/sparta/core"
)

// Keyword scoring weights. A query word that appears both as a whole token
// and as a substring earns both bonuses; the double count is intentional and
// rewards exact token hits over partial ones.
const (
	nameMatchWeight    = 100
	descMatchWeight    = 50
	wordOverlapWeight  = 10
	partialMatchWeight = 5
)

// KeywordMatch pairs a record with its keyword relevance score.
type KeywordMatch struct {
	Record core.Record
	Score  int
}

// KeywordScore computes the keyword relevance of a record for a query.
// Scoring is case-insensitive:
//
//   - +100 when the whole query appears in the record name
//   - +50 when the whole query appears in the record description
//   - +10 per distinct query word that matches a word of the composite text
//   - +5 per query word that appears anywhere in the composite text
func KeywordScore(rec core.Record, query string) int {
	queryLower := strings.ToLower(query)
	queryWords := distinctWords(queryLower)

	score := 0
	if strings.Contains(strings.ToLower(rec.Name), queryLower) {
		score += nameMatchWeight
	}
	if strings.Contains(strings.ToLower(rec.Description), queryLower) {
		score += descMatchWeight
	}

	textLower := strings.ToLower(rec.CompositeText)
	textWords := distinctWords(textLower)
	for word := range queryWords {
		if textWords[word] {
			score += wordOverlapWeight
		}
		if strings.Contains(textLower, word) {
			score += partialMatchWeight
		}
	}

	return score
}

// RankKeyword scores every record and returns those with a positive score,
// ordered by score descending. Ties keep the record order of the input,
// which makes results reproducible across runs.
func RankKeyword(records []core.Record, query string, topK int) []KeywordMatch {
	matches := make([]KeywordMatch, 0, topK)
	for _, rec := range records {
		if score := KeywordScore(rec, query); score > 0 {
			matches = append(matches, KeywordMatch{Record: rec, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

func distinctWords(s string) map[string]bool {
	words := strings.Fields(s)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
