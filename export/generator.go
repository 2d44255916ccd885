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
	"fmt"
	"strings"

	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/store"
)

// defenseContextLen bounds the description excerpt quoted in defensive
// answers.
const defenseContextLen = 200

// summaryTechniqueLimit is how many technique names a tactic summary answer
// lists before falling back to the total count.
const summaryTechniqueLimit = 5

// tacticFocus gives each tactic a short focus phrase used in generated
// answers.
var tacticFocus = map[string]string{
	"ST0001": "gathering information about space systems",
	"ST0002": "establishing resources for operations",
	"ST0003": "gaining initial entry to space systems",
	"ST0004": "running malicious code on spacecraft",
	"ST0005": "maintaining access to spacecraft",
	"ST0006": "avoiding detection",
	"ST0007": "moving through space system environments",
	"ST0008": "stealing data from space systems",
	"ST0009": "manipulating, interrupting, or destroying space systems",
}

// Example is one generated question/answer pair. TechniqueID identifies the
// record (or tactic, for summary examples) the pair was derived from.
type Example struct {
	Question    string
	Answer      string
	Context     string
	TechniqueID string
}

// Generator derives training examples from a built record store.
type Generator struct {
	store *store.Store
}

// NewGenerator creates a generator over the given store.
func NewGenerator(s *store.Store) (*Generator, error) {
	if s == nil {
		return nil, ErrStoreRequired
	}
	return &Generator{store: s}, nil
}

// Examples generates the full example set: per-record question/answer pairs
// followed by per-tactic summary pairs. Output is deterministic for a given
// catalog.
func (g *Generator) Examples() []Example {
	var examples []Example
	for _, rec := range g.store.Records() {
		examples = append(examples, definitionExamples(rec)...)
		examples = append(examples, tacticExamples(rec)...)
		examples = append(examples, descriptionExamples(rec)...)
		examples = append(examples, defenseExamples(rec)...)
	}
	examples = append(examples, g.tacticSummaryExamples()...)
	return examples
}

// definitionExamples covers "what is X" phrasings.
func definitionExamples(rec core.Record) []Example {
	questions := []string{
		fmt.Sprintf("What is %s?", rec.Name),
		fmt.Sprintf("Define %s in space security.", rec.Name),
		fmt.Sprintf("Explain the %s technique.", rec.Name),
	}

	kind := strings.ReplaceAll(rec.Type.String(), "_", " ")
	answer := fmt.Sprintf("%s (%s) is a %s under the %s tactic. %s",
		rec.Name, rec.ID, kind, rec.TacticName, rec.Description)

	return buildExamples(questions, answer, rec.Description, rec.ID)
}

// tacticExamples covers which-tactic phrasings.
func tacticExamples(rec core.Record) []Example {
	questions := []string{
		fmt.Sprintf("What tactic does %s belong to?", rec.Name),
		fmt.Sprintf("Which attack category includes %s?", rec.Name),
	}

	answer := fmt.Sprintf("%s belongs to the %s tactic, which focuses on %s.",
		rec.Name, rec.TacticName, tacticFocus[rec.TacticID])

	return buildExamples(questions, answer, rec.Description, rec.ID)
}

// descriptionExamples covers how-attacks-work phrasings.
func descriptionExamples(rec core.Record) []Example {
	questions := []string{
		fmt.Sprintf("How do threat actors use %s?", rec.Name),
		fmt.Sprintf("Describe how %s attacks work.", rec.Name),
	}

	answer := fmt.Sprintf("In %s attacks, %s", rec.Name, rec.Description)

	return buildExamples(questions, answer, rec.Description, rec.ID)
}

// defenseExamples covers the defensive phrasing.
func defenseExamples(rec core.Record) []Example {
	answer := fmt.Sprintf("To defend against %s, you should implement countermeasures for the %s tactic. "+
		"This technique involves: %s... Understanding this attack vector helps in developing appropriate defenses.",
		rec.Name, rec.TacticName, truncate(rec.Description, defenseContextLen))

	return []Example{{
		Question:    fmt.Sprintf("How can I defend against %s?", rec.Name),
		Answer:      answer,
		Context:     rec.Description,
		TechniqueID: rec.ID,
	}}
}

// tacticSummaryExamples generates one answer per tactic listing its leading
// techniques, asked three ways.
func (g *Generator) tacticSummaryExamples() []Example {
	var examples []Example
	for _, tactic := range g.store.Tactics() {
		var names []string
		total := 0
		for _, rec := range g.store.Records() {
			if rec.TacticID != tactic.ID || rec.IsSubTechnique() {
				continue
			}
			total++
			if len(names) < summaryTechniqueLimit {
				names = append(names, rec.Name)
			}
		}

		focus := tacticFocus[tactic.ID]
		answer := fmt.Sprintf("The %s tactic (%s) focuses on %s. Key techniques include: %s. "+
			"There are %d techniques in total under this tactic.",
			tactic.Name, tactic.ID, focus, strings.Join(names, ", "), total)

		questions := []string{
			fmt.Sprintf("What are the techniques in the %s tactic?", tactic.Name),
			fmt.Sprintf("List %s attack techniques.", tactic.Name),
			fmt.Sprintf("What attacks fall under %s?", tactic.Name),
		}
		examples = append(examples, buildExamples(questions, answer, focus, tactic.ID)...)
	}
	return examples
}

func buildExamples(questions []string, answer, context, id string) []Example {
	examples := make([]Example, len(questions))
	for i, q := range questions {
		examples[i] = Example{
			Question:    q,
			Answer:      answer,
			Context:     context,
			TechniqueID: id,
		}
	}
	return examples
}

// truncate bounds s to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
