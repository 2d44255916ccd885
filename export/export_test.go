package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sparta/store"
	"github.com/poiesic/sparta/taxonomy"
)

func testGenerator(t *testing.T) (*Generator, *store.Store) {
	t.Helper()
	s, err := store.Build(taxonomy.Default())
	require.NoError(t, err)
	g, err := NewGenerator(s)
	require.NoError(t, err)
	return g, s
}

func examplesFor(examples []Example, id string) []Example {
	var out []Example
	for _, ex := range examples {
		if ex.TechniqueID == id {
			out = append(out, ex)
		}
	}
	return out
}

func TestNewGenerator_NilStore(t *testing.T) {
	_, err := NewGenerator(nil)
	assert.ErrorIs(t, err, ErrStoreRequired)
}

func TestExamples_Count(t *testing.T) {
	g, s := testGenerator(t)
	examples := g.Examples()

	// Eight per record (3 definition + 2 tactic + 2 description + 1 defense)
	// plus three per tactic summary.
	want := s.Len()*8 + len(s.Tactics())*3
	assert.Len(t, examples, want)
}

func TestExamples_Deterministic(t *testing.T) {
	g, _ := testGenerator(t)
	assert.Equal(t, g.Examples(), g.Examples())
}

func TestExamples_TechniqueAnswers(t *testing.T) {
	g, _ := testGenerator(t)
	examples := examplesFor(g.Examples(), "EX-0016")
	require.Len(t, examples, 8)

	t.Run("definition", func(t *testing.T) {
		assert.Equal(t, "What is Jamming?", examples[0].Question)
		assert.Contains(t, examples[0].Answer, "Jamming (EX-0016) is a technique under the Execution tactic.")
		assert.Equal(t, examples[0].Answer, examples[1].Answer, "all definition phrasings share one answer")
	})

	t.Run("tactic", func(t *testing.T) {
		assert.Equal(t, "What tactic does Jamming belong to?", examples[3].Question)
		assert.Contains(t, examples[3].Answer, "which focuses on running malicious code on spacecraft.")
	})

	t.Run("description", func(t *testing.T) {
		assert.Equal(t, "How do threat actors use Jamming?", examples[5].Question)
		assert.True(t, strings.HasPrefix(examples[5].Answer, "In Jamming attacks, "))
	})

	t.Run("defense", func(t *testing.T) {
		defense := examples[7]
		assert.Equal(t, "How can I defend against Jamming?", defense.Question)
		assert.Contains(t, defense.Answer, "countermeasures for the Execution tactic")
		assert.Contains(t, defense.Answer, "...")
		assert.True(t, strings.HasSuffix(defense.Answer, "developing appropriate defenses."))
	})
}

func TestExamples_SubTechniqueKind(t *testing.T) {
	g, _ := testGenerator(t)
	examples := examplesFor(g.Examples(), "EX-0016.01")
	require.NotEmpty(t, examples)
	assert.Contains(t, examples[0].Answer, "is a sub technique under the Execution tactic")
}

func TestExamples_TacticSummaries(t *testing.T) {
	g, s := testGenerator(t)
	examples := examplesFor(g.Examples(), "ST0001")
	require.Len(t, examples, 3)

	assert.Equal(t, "What are the techniques in the Reconnaissance tactic?", examples[0].Question)
	assert.Contains(t, examples[0].Answer, "The Reconnaissance tactic (ST0001) focuses on gathering information about space systems.")
	assert.Contains(t, examples[0].Answer, "There are 9 techniques in total under this tactic.")

	// Key techniques list the first names in store order, capped at five.
	records := s.Records()
	assert.Contains(t, examples[0].Answer, "Key techniques include: "+records[0].Name)
}

func TestWriteInstructions(t *testing.T) {
	g, s := testGenerator(t)

	var buf bytes.Buffer
	n, err := g.WriteInstructions(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Len()*8+len(s.Tactics())*3, n)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, n)

	first := entries[0]
	assert.NotEmpty(t, first["instruction"])
	assert.NotEmpty(t, first["output"])
	assert.Equal(t, "", first["input"])
	assert.NotEmpty(t, first["technique_id"])
}

func TestWriteConversations(t *testing.T) {
	g, _ := testGenerator(t)

	var buf bytes.Buffer
	n, err := g.WriteConversations(&buf)
	require.NoError(t, err)

	var entries []conversationEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, n)

	first := entries[0]
	require.Len(t, first.Conversations, 2)
	assert.Equal(t, "user", first.Conversations[0].Role)
	assert.Equal(t, "assistant", first.Conversations[1].Role)
	assert.Equal(t, "space_security", first.Metadata.Domain)
}

func TestWriteCorpus(t *testing.T) {
	g, s := testGenerator(t)

	var buf bytes.Buffer
	n, err := g.WriteCorpus(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), n)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, n)

	t.Run("technique document omits parent fields", func(t *testing.T) {
		meta := docs[0]["metadata"].(map[string]any)
		assert.Equal(t, "technique", meta["type"])
		assert.NotContains(t, meta, "parent_id")
		assert.NotContains(t, meta, "parent_name")
	})

	t.Run("sub-technique document carries parent fields", func(t *testing.T) {
		meta := docs[1]["metadata"].(map[string]any)
		assert.Equal(t, "sub_technique", meta["type"])
		assert.Equal(t, docs[0]["id"], meta["parent_id"])
		assert.NotEmpty(t, meta["parent_name"])
	})
}

func TestWriteRecords(t *testing.T) {
	_, s := testGenerator(t)

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, s.Records()))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, s.Len())

	first := entries[0]
	assert.Equal(t, s.Records()[0].ID, first["id"])
	assert.Equal(t, "technique", first["type"])
	assert.NotEmpty(t, first["full_text"])
	assert.NotEmpty(t, first["tactic_description"])
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 300)
	assert.Len(t, truncate(long, defenseContextLen), defenseContextLen)
	assert.Equal(t, "short", truncate("short", defenseContextLen))
}
