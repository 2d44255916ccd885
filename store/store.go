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

// Package store flattens a taxonomy into an in-memory collection of
// searchable records with a stable, deterministic order.
package store

import (
	"fmt"
	"strings"

	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/taxonomy"
)

// Store holds the flattened records of one catalog. Records are immutable
// after Build and ordered: tactics in declared order, each technique
// followed by its sub-techniques.
type Store struct {
	records []core.Record
	byID    map[string]int
	tactics []core.Tactic
}

// Stats summarizes the store contents.
type Stats struct {
	Total         int
	Techniques    int
	SubTechniques int
	PerTactic     []TacticCount
}

// TacticCount gives per-tactic record counts, in tactic order.
type TacticCount struct {
	TacticID      string
	TacticName    string
	Techniques    int
	SubTechniques int
}

// Build validates the catalog and flattens it into a Store. Every record
// carries its tactic context and, for sub-techniques, its parent context,
// so search and formatting never need to walk the hierarchy again.
func Build(tax *taxonomy.Taxonomy) (*Store, error) {
	if tax == nil {
		return nil, ErrTaxonomyRequired
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTaxonomy, err)
	}

	techsByTactic := make(map[string][]core.Technique, len(tax.Tactics))
	for _, tech := range tax.Techniques {
		techsByTactic[tech.TacticID] = append(techsByTactic[tech.TacticID], tech)
	}
	subsByParent := make(map[string][]core.SubTechnique, len(tax.Techniques))
	for _, sub := range tax.SubTechniques {
		subsByParent[sub.ParentID] = append(subsByParent[sub.ParentID], sub)
	}

	s := &Store{
		records: make([]core.Record, 0, len(tax.Techniques)+len(tax.SubTechniques)),
		byID:    make(map[string]int, len(tax.Techniques)+len(tax.SubTechniques)),
		tactics: append([]core.Tactic(nil), tax.Tactics...),
	}

	for _, tac := range tax.Tactics {
		for _, tech := range techsByTactic[tac.ID] {
			s.add(core.Record{
				ID:                tech.ID,
				Name:              tech.Name,
				Description:       tech.Description,
				Type:              core.RecordTypeTechnique,
				TacticID:          tac.ID,
				TacticName:        tac.Name,
				TacticDescription: tac.Description,
				CompositeText:     core.CompositeText(tech.Name, tech.Description, "", tac.Name),
			})
			for _, sub := range subsByParent[tech.ID] {
				s.add(core.Record{
					ID:                sub.ID,
					Name:              sub.Name,
					Description:       sub.Description,
					Type:              core.RecordTypeSubTechnique,
					TacticID:          tac.ID,
					TacticName:        tac.Name,
					TacticDescription: tac.Description,
					ParentID:          tech.ID,
					ParentName:        tech.Name,
					CompositeText:     core.CompositeText(sub.Name, sub.Description, tech.Name, tac.Name),
				})
			}
		}
	}

	return s, nil
}

func (s *Store) add(rec core.Record) {
	s.byID[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
}

// Records returns all records in store order. The returned slice is shared;
// callers must not modify it.
func (s *Store) Records() []core.Record {
	return s.records
}

// Tactics returns the catalog tactics in declared order.
func (s *Store) Tactics() []core.Tactic {
	return s.tactics
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// FindByID looks up a single record. Returns ErrNotFound when the id is
// not in the store.
func (s *Store) FindByID(id string) (core.Record, error) {
	i, ok := s.byID[id]
	if !ok {
		return core.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.records[i], nil
}

// FilterByTactic returns records whose tactic name contains the given
// fragment, case-insensitively, preserving store order.
func (s *Store) FilterByTactic(tacticName string) []core.Record {
	frag := strings.ToLower(tacticName)
	var out []core.Record
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.TacticName), frag) {
			out = append(out, rec)
		}
	}
	return out
}

// Stats computes record counts, overall and per tactic.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.records)}
	perTactic := make(map[string]*TacticCount, len(s.tactics))
	for _, tac := range s.tactics {
		tc := &TacticCount{TacticID: tac.ID, TacticName: tac.Name}
		perTactic[tac.ID] = tc
	}
	for _, rec := range s.records {
		tc := perTactic[rec.TacticID]
		if rec.IsSubTechnique() {
			st.SubTechniques++
			if tc != nil {
				tc.SubTechniques++
			}
		} else {
			st.Techniques++
			if tc != nil {
				tc.Techniques++
			}
		}
	}
	for _, tac := range s.tactics {
		st.PerTactic = append(st.PerTactic, *perTactic[tac.ID])
	}
	return st
}
