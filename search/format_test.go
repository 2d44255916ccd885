package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sparta/core"
)

func TestFormatTacticListing(t *testing.T) {
	s := buildTestStore(t)
	records := s.FilterByTactic("Reconnaissance")

	out := FormatTacticListing("Reconnaissance", records)

	assert.Contains(t, out, "### Reconnaissance Tactic")
	assert.Contains(t, out, "Found 9 techniques and 27 sub-techniques.")
	assert.Contains(t, out, "**REC-0001: Gather Spacecraft Design Information**")
	assert.Contains(t, out, "Sub-techniques:")
	assert.Contains(t, out, "- REC-0001.01: Software Design")

	// Techniques without sub-techniques get no sub-technique header.
	assert.Contains(t, out, "**REC-0007: Monitor for Safe-Mode Indicators**")
	after := out[strings.Index(out, "REC-0007"):]
	next := strings.Index(after, "**REC-0008")
	require.Positive(t, next)
	assert.NotContains(t, after[:next], "Sub-techniques:")
}

func TestFormatTacticListing_TruncatesDescriptions(t *testing.T) {
	long := strings.Repeat("x", 300)
	records := []core.Record{
		{ID: "EX-0001", Name: "Replay", Description: long, Type: core.RecordTypeTechnique},
	}

	out := FormatTacticListing("Execution", records)

	assert.Contains(t, out, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 201))
}

func TestFormatMatches(t *testing.T) {
	matches := []core.SimilarityMatch{
		{
			Record: core.Record{
				ID:          "EX-0016",
				Name:        "Jamming",
				Description: "Electronic attack using RF signals.",
				Type:        core.RecordTypeTechnique,
				TacticName:  "Execution",
			},
			Score: 0.755,
		},
		{
			Record: core.Record{
				ID:          "EX-0016.01",
				Name:        "Uplink Jamming",
				Description: "Interferes with uplink signals.",
				Type:        core.RecordTypeSubTechnique,
				TacticName:  "Execution",
				ParentID:    "EX-0016",
				ParentName:  "Jamming",
			},
			Score: 0.5,
		},
	}

	out := FormatMatches("jam satellite communications", matches)

	assert.Contains(t, out, "Relevant Space Attack Techniques for: 'jam satellite communications'")
	assert.Contains(t, out, "**1. Jamming** (ID: EX-0016)")
	assert.Contains(t, out, "Relevance Score: 75.50%")
	assert.Contains(t, out, "Type: Technique")
	assert.Contains(t, out, "**2. Uplink Jamming** (ID: EX-0016.01)")
	assert.Contains(t, out, "Relevance Score: 50.00%")
	assert.Contains(t, out, "Type: Sub Technique")
	assert.Contains(t, out, "Parent: Jamming")

	// Parent line appears once, only for the sub-technique.
	assert.Equal(t, 1, strings.Count(out, "Parent: "))
}

func TestFormatMatches_Empty(t *testing.T) {
	out := FormatMatches("anything", nil)
	assert.Equal(t, noResultsMessage, out)
}

func TestFormatResponse(t *testing.T) {
	t.Run("tactic response", func(t *testing.T) {
		resp := &Response{
			Kind:   TacticQuery,
			Tactic: "Impact",
			Records: []core.Record{
				{ID: "IMP-0001", Name: "Deception (or Misdirection)", Description: "d", Type: core.RecordTypeTechnique},
			},
		}
		out := FormatResponse(resp)
		assert.Contains(t, out, "### Impact Tactic")
	})

	t.Run("semantic response", func(t *testing.T) {
		resp := &Response{
			Kind:  SemanticQuery,
			Query: "steal data",
		}
		assert.Equal(t, noResultsMessage, FormatResponse(resp))
	})
}

func TestFormatKeywordMatches(t *testing.T) {
	matches := []KeywordMatch{
		{
			Record: core.Record{
				ID:         "EX-0016",
				Name:       "Jamming",
				Type:       core.RecordTypeTechnique,
				TacticName: "Execution",
			},
			Score: 165,
		},
	}

	out := FormatKeywordMatches("jamming", matches)
	assert.Contains(t, out, "Keyword Matches for: 'jamming'")
	assert.Contains(t, out, "Score: 165")

	assert.Equal(t, noResultsMessage, FormatKeywordMatches("jamming", nil))
}
