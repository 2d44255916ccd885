package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/sparta/core"
)

// summaryDescriptionLen caps how much of a description a tactic listing
// shows per technique.
const summaryDescriptionLen = 200

// noResultsMessage is shown when a semantic query matched nothing above the
// similarity floor.
const noResultsMessage = "No relevant techniques found for your query. Try rephrasing or using different keywords."

// FormatResponse renders a routed response as display text.
func FormatResponse(resp *Response) string {
	switch resp.Kind {
	case TacticQuery:
		return FormatTacticListing(resp.Tactic, resp.Records)
	default:
		return FormatMatches(resp.Query, resp.Matches)
	}
}

// FormatTacticListing renders the full technique listing of one tactic.
// Techniques appear in store order, each followed by a truncated
// description and its sub-technique index.
func FormatTacticListing(tactic string, records []core.Record) string {
	var techniques, subs []core.Record
	for _, rec := range records {
		if rec.IsSubTechnique() {
			subs = append(subs, rec)
		} else {
			techniques = append(techniques, rec)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n### %s Tactic\n\n", tactic)
	fmt.Fprintf(&b, "Found %d techniques and %d sub-techniques.\n", len(techniques), len(subs))

	for _, tech := range techniques {
		fmt.Fprintf(&b, "\n\n**%s: %s**\n", tech.ID, tech.Name)
		fmt.Fprintf(&b, "  %s...", truncate(tech.Description, summaryDescriptionLen))

		var children []core.Record
		for _, sub := range subs {
			if sub.ParentID == tech.ID {
				children = append(children, sub)
			}
		}
		if len(children) > 0 {
			b.WriteString("\n  Sub-techniques:")
			for _, sub := range children {
				fmt.Fprintf(&b, "\n    - %s: %s", sub.ID, sub.Name)
			}
		}
	}

	return b.String()
}

// FormatMatches renders ranked semantic matches, best first, with relevance
// expressed as a percentage.
func FormatMatches(query string, matches []core.SimilarityMatch) string {
	if len(matches) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n### Relevant Space Attack Techniques for: '%s'\n", query)

	for i, m := range matches {
		rec := m.Record
		fmt.Fprintf(&b, "\n\n**%d. %s** (ID: %s)\n", i+1, rec.Name, rec.ID)
		fmt.Fprintf(&b, "   Relevance Score: %.2f%%\n", m.Score*100)
		fmt.Fprintf(&b, "   Tactic: %s\n", rec.TacticName)
		fmt.Fprintf(&b, "   Type: %s\n", rec.Type.Display())
		if rec.ParentName != "" {
			fmt.Fprintf(&b, "   Parent: %s\n", rec.ParentName)
		}
		fmt.Fprintf(&b, "   Description: %s", rec.Description)
	}

	return b.String()
}

// FormatKeywordMatches renders keyword-ranked results with their integer
// scores, for the keyword fallback path.
func FormatKeywordMatches(query string, matches []KeywordMatch) string {
	if len(matches) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n### Keyword Matches for: '%s'\n", query)

	for i, m := range matches {
		rec := m.Record
		fmt.Fprintf(&b, "\n\n**%d. %s** (ID: %s)\n", i+1, rec.Name, rec.ID)
		fmt.Fprintf(&b, "   Score: %d\n", m.Score)
		fmt.Fprintf(&b, "   Tactic: %s\n", rec.TacticName)
		fmt.Fprintf(&b, "   Type: %s\n", rec.Type.Display())
		if rec.ParentName != "" {
			fmt.Fprintf(&b, "   Parent: %s\n", rec.ParentName)
		}
		fmt.Fprintf(&b, "   Description: %s", rec.Description)
	}

	return b.String()
}

// truncate cuts s to at most n runes. Multibyte text is cut on a rune
// boundary, never mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
