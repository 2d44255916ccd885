// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"encoding/json"
	"io"

	"github.com/poiesic/sparta/core"
)

// corpusDomain tags conversation metadata with the dataset domain.
const corpusDomain = "space_security"

type instructionEntry struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	Context     string `json:"context"`
	TechniqueID string `json:"technique_id"`
}

type conversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conversationMetadata struct {
	TechniqueID string `json:"technique_id"`
	Domain      string `json:"domain"`
}

type conversationEntry struct {
	Conversations []conversationTurn   `json:"conversations"`
	Metadata      conversationMetadata `json:"metadata"`
}

type corpusMetadata struct {
	Type       string `json:"type"`
	Tactic     string `json:"tactic"`
	TacticID   string `json:"tactic_id"`
	ParentID   string `json:"parent_id,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
}

type corpusDocument struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Metadata corpusMetadata `json:"metadata"`
}

type recordEntry struct {
	Type              string `json:"type"`
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Tactic            string `json:"tactic"`
	TacticID          string `json:"tactic_id"`
	TacticDescription string `json:"tactic_description"`
	ParentID          string `json:"parent_id,omitempty"`
	ParentName        string `json:"parent_name,omitempty"`
	FullText          string `json:"full_text"`
}

// WriteInstructions writes the example set in instruction-tuning format and
// returns the number of entries written.
func (g *Generator) WriteInstructions(w io.Writer) (int, error) {
	examples := g.Examples()
	entries := make([]instructionEntry, len(examples))
	for i, ex := range examples {
		entries[i] = instructionEntry{
			Instruction: ex.Question,
			Output:      ex.Answer,
			Context:     ex.Context,
			TechniqueID: ex.TechniqueID,
		}
	}
	return len(entries), writeJSON(w, entries)
}

// WriteConversations writes the example set as two-turn chat conversations
// and returns the number of entries written.
func (g *Generator) WriteConversations(w io.Writer) (int, error) {
	examples := g.Examples()
	entries := make([]conversationEntry, len(examples))
	for i, ex := range examples {
		entries[i] = conversationEntry{
			Conversations: []conversationTurn{
				{Role: "user", Content: ex.Question},
				{Role: "assistant", Content: ex.Answer},
			},
			Metadata: conversationMetadata{
				TechniqueID: ex.TechniqueID,
				Domain:      corpusDomain,
			},
		}
	}
	return len(entries), writeJSON(w, entries)
}

// WriteCorpus writes one retrieval document per record and returns the
// number of documents written.
func (g *Generator) WriteCorpus(w io.Writer) (int, error) {
	records := g.store.Records()
	docs := make([]corpusDocument, len(records))
	for i, rec := range records {
		docs[i] = corpusDocument{
			ID:    rec.ID,
			Title: rec.Name,
			Text:  rec.Description,
			Metadata: corpusMetadata{
				Type:       rec.Type.String(),
				Tactic:     rec.TacticName,
				TacticID:   rec.TacticID,
				ParentID:   rec.ParentID,
				ParentName: rec.ParentName,
			},
		}
	}
	return len(docs), writeJSON(w, docs)
}

// WriteRecords writes the flat record catalog as JSON, one entry per record
// in store order.
func WriteRecords(w io.Writer, records []core.Record) error {
	entries := make([]recordEntry, len(records))
	for i, rec := range records {
		entries[i] = recordEntry{
			Type:              rec.Type.String(),
			ID:                rec.ID,
			Name:              rec.Name,
			Description:       rec.Description,
			Tactic:            rec.TacticName,
			TacticID:          rec.TacticID,
			TacticDescription: rec.TacticDescription,
			ParentID:          rec.ParentID,
			ParentName:        rec.ParentName,
			FullText:          rec.CompositeText,
		}
	}
	return writeJSON(w, entries)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
