package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/taxonomy"
)

func TestBuild(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	assert.Equal(t, 216, s.Len())

	st := s.Stats()
	assert.Equal(t, 216, st.Total)
	assert.Equal(t, 85, st.Techniques)
	assert.Equal(t, 131, st.SubTechniques)
	require.Len(t, st.PerTactic, 9)
	assert.Equal(t, "Reconnaissance", st.PerTactic[0].TacticName)
	assert.Equal(t, 9, st.PerTactic[0].Techniques)
	assert.Equal(t, 27, st.PerTactic[0].SubTechniques)
	assert.Equal(t, "Impact", st.PerTactic[8].TacticName)
	assert.Equal(t, 6, st.PerTactic[8].Techniques)
	assert.Equal(t, 0, st.PerTactic[8].SubTechniques)
}

func TestBuild_NilTaxonomy(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrTaxonomyRequired)
}

func TestBuild_Malformed(t *testing.T) {
	tax := taxonomy.Default()
	tax.Techniques[0].TacticID = "ST9999"

	_, err := Build(tax)
	assert.ErrorIs(t, err, ErrMalformedTaxonomy)
}

func TestBuild_Order(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	records := s.Records()
	require.NotEmpty(t, records)

	// First records: first technique of the first tactic followed by its
	// sub-techniques.
	assert.Equal(t, "REC-0001", records[0].ID)
	assert.Equal(t, core.RecordTypeTechnique, records[0].Type)
	assert.Equal(t, "REC-0001.01", records[1].ID)
	assert.Equal(t, core.RecordTypeSubTechnique, records[1].Type)
	assert.Equal(t, "REC-0001", records[1].ParentID)

	// Determinism across builds.
	s2, err := Build(taxonomy.Default())
	require.NoError(t, err)
	for i := range records {
		assert.Equal(t, records[i].ID, s2.Records()[i].ID)
	}
}

func TestBuild_RecordContext(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	rec, err := s.FindByID("EX-0016.01")
	require.NoError(t, err)
	assert.Equal(t, "Uplink Jamming", rec.Name)
	assert.Equal(t, "ST0004", rec.TacticID)
	assert.Equal(t, "Execution", rec.TacticName)
	assert.NotEmpty(t, rec.TacticDescription)
	assert.Equal(t, "EX-0016", rec.ParentID)
	assert.Equal(t, "Jamming", rec.ParentName)
	assert.Contains(t, rec.CompositeText, "Uplink Jamming")
	assert.Contains(t, rec.CompositeText, "Jamming")
	assert.Contains(t, rec.CompositeText, "Execution")
}

func TestFindByID_NotFound(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	_, err = s.FindByID("ZZ-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilterByTactic(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	t.Run("case insensitive fragment", func(t *testing.T) {
		recon := s.FilterByTactic("reconnaissance")
		assert.Len(t, recon, 36)
		for _, rec := range recon {
			assert.Equal(t, "ST0001", rec.TacticID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, s.FilterByTactic("no such tactic"))
	})

	t.Run("preserves store order", func(t *testing.T) {
		impact := s.FilterByTactic("Impact")
		require.Len(t, impact, 6)
		assert.Equal(t, "IMP-0001", impact[0].ID)
		assert.Equal(t, "IMP-0006", impact[5].ID)
	})
}

func TestStats_TacticOrder(t *testing.T) {
	s, err := Build(taxonomy.Default())
	require.NoError(t, err)

	st := s.Stats()
	wantIDs := []string{"ST0001", "ST0002", "ST0003", "ST0004", "ST0005", "ST0006", "ST0007", "ST0008", "ST0009"}
	for i, tc := range st.PerTactic {
		assert.Equal(t, wantIDs[i], tc.TacticID)
	}

	total := 0
	for _, tc := range st.PerTactic {
		total += tc.Techniques + tc.SubTechniques
	}
	assert.Equal(t, st.Total, total)
}
