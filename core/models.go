package core

import (
	"encoding/hex"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// RecordType distinguishes flattened technique records from sub-technique records.
type RecordType int

const (
	// RecordTypeTechnique is a top-level technique.
	RecordTypeTechnique RecordType = iota + 1
	// RecordTypeSubTechnique is a sub-technique under a parent technique.
	RecordTypeSubTechnique
)

// String returns the wire name of the record type.
func (t RecordType) String() string {
	switch t {
	case RecordTypeTechnique:
		return "technique"
	case RecordTypeSubTechnique:
		return "sub_technique"
	default:
		return "unknown"
	}
}

// Display returns a human-readable form of the record type.
func (t RecordType) Display() string {
	switch t {
	case RecordTypeTechnique:
		return "Technique"
	case RecordTypeSubTechnique:
		return "Sub Technique"
	default:
		return "Unknown"
	}
}

// Tactic is a top-level adversary goal in the SPARTA matrix.
// The declared tactic order is stable and defines enumeration order
// for statistics and record flattening.
type Tactic struct {
	ID          string // pattern ST####
	Name        string
	Description string
}

// Technique is an attack technique owned by exactly one tactic.
type Technique struct {
	ID              string // pattern PREFIX-####
	Name            string
	Description     string
	TacticID        string
	SubTechniqueIDs []string // declared order
}

// SubTechnique refines a parent technique.
type SubTechnique struct {
	ID          string // pattern PREFIX-####.##, dotted suffix of the parent ID
	Name        string
	Description string
	ParentID    string
}

// Record is the flattened unit of search. One Record exists per Technique
// and per SubTechnique; the set is fixed at store build time.
type Record struct {
	ID                string
	Name              string
	Description       string
	Type              RecordType
	TacticID          string
	TacticName        string
	TacticDescription string
	ParentID          string // empty for techniques
	ParentName        string // empty for techniques
	CompositeText     string // name + description + (parent name) + tactic name
}

// IsSubTechnique reports whether the record was flattened from a sub-technique.
func (r Record) IsSubTechnique() bool {
	return r.Type == RecordTypeSubTechnique
}

// EmbeddingText returns the rich text representation used for semantic
// indexing. The format is fixed; changing it invalidates persisted indexes
// via the record-set fingerprint.
func (r Record) EmbeddingText() string {
	parts := []string{
		"Technique: " + r.Name,
		"Description: " + r.Description,
		"Tactic: " + r.TacticName,
		"Category: " + strings.ReplaceAll(r.Type.String(), "_", " "),
	}
	if r.ParentName != "" {
		parts = append(parts, "Parent: "+r.ParentName)
	}
	return strings.Join(parts, ". ")
}

// CompositeText builds the lexical indexing text for a record: name,
// description, parent name (sub-techniques only), and tactic name, space
// separated in that order.
func CompositeText(name, description, parentName, tacticName string) string {
	parts := make([]string, 0, 4)
	parts = append(parts, name, description)
	if parentName != "" {
		parts = append(parts, parentName)
	}
	parts = append(parts, tacticName)
	return strings.Join(parts, " ")
}

// SimilarityMatch pairs a record with its cosine similarity score.
type SimilarityMatch struct {
	Record Record
	Score  float32
}

// FingerprintRecords computes a deterministic BLAKE2b digest over the record
// set (ids and composite texts in store order). Persisted embedding indexes
// carry this fingerprint so a catalog change invalidates cached vectors.
func FingerprintRecords(records []Record) string {
	h, _ := blake2b.New(16, nil)
	for _, r := range records {
		h.Write([]byte(r.ID))
		h.Write([]byte{0})
		h.Write([]byte(r.CompositeText))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IndexSnapshot is the persisted form of an embedding index: one vector per
// record in store order, tagged with the embedding provider that produced
// them and the fingerprint of the record set they align to.
type IndexSnapshot struct {
	Provider    string
	Fingerprint string
	RecordIDs   []string
	Vectors     [][]float32
}
