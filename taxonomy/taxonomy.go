package taxonomy

import (
	"fmt"

	"github.com/poiesic/sparta/core"
)

// Taxonomy is the fixed SPARTA catalog of tactics, techniques, and
// sub-techniques. The declared order of every slice is significant: it
// defines the stable record order that the store and embedding index
// depend on.
type Taxonomy struct {
	Tactics       []core.Tactic
	Techniques    []core.Technique
	SubTechniques []core.SubTechnique
}

// Validate checks every entry against the domain rules and verifies
// referential integrity: each technique must reference a declared tactic
// and each sub-technique must reference a declared technique.
func (t *Taxonomy) Validate() error {
	tacticIDs := make(map[string]bool, len(t.Tactics))
	for _, tac := range t.Tactics {
		if err := core.ValidateTactic(tac); err != nil {
			return err
		}
		if tacticIDs[tac.ID] {
			return fmt.Errorf("%w: duplicate tactic id %q", core.ErrInvalidTactic, tac.ID)
		}
		tacticIDs[tac.ID] = true
	}

	techniqueIDs := make(map[string]bool, len(t.Techniques))
	for _, tech := range t.Techniques {
		if err := core.ValidateTechnique(tech); err != nil {
			return err
		}
		if techniqueIDs[tech.ID] {
			return fmt.Errorf("%w: duplicate technique id %q", core.ErrInvalidTechnique, tech.ID)
		}
		techniqueIDs[tech.ID] = true
		if !tacticIDs[tech.TacticID] {
			return fmt.Errorf("%w: technique %q references unknown tactic %q",
				core.ErrInvalidTechnique, tech.ID, tech.TacticID)
		}
	}

	subIDs := make(map[string]bool, len(t.SubTechniques))
	for _, sub := range t.SubTechniques {
		if err := core.ValidateSubTechnique(sub); err != nil {
			return err
		}
		if subIDs[sub.ID] {
			return fmt.Errorf("%w: duplicate sub-technique id %q", core.ErrInvalidSubTechnique, sub.ID)
		}
		subIDs[sub.ID] = true
		if !techniqueIDs[sub.ParentID] {
			return fmt.Errorf("%w: sub-technique %q references unknown technique %q",
				core.ErrInvalidSubTechnique, sub.ID, sub.ParentID)
		}
	}

	return nil
}
