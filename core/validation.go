// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"regexp"
)

var (
	tacticIDPattern       = regexp.MustCompile(`^ST\d{4}$`)
	techniqueIDPattern    = regexp.MustCompile(`^[A-Z]+-\d{4}$`)
	subTechniqueIDPattern = regexp.MustCompile(`^[A-Z]+-\d{4}\.\d{2}$`)
)

// ValidateTactic validates a Tactic according to domain rules.
//
// Validation rules:
//   - ID must match ST#### (e.g. "ST0001")
//   - Name must not be empty
func ValidateTactic(t Tactic) error {
	if t.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTactic, ErrEmptyID)
	}
	if !tacticIDPattern.MatchString(t.ID) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTactic, ErrBadIDFormat, t.ID)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTactic, ErrEmptyName)
	}
	return nil
}

// ValidateTechnique validates a Technique according to domain rules.
//
// Validation rules:
//   - ID must match PREFIX-#### (e.g. "REC-0001")
//   - Name must not be empty
//   - TacticID must not be empty (referential integrity is checked at
//     store build time, not here)
func ValidateTechnique(t Technique) error {
	if t.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTechnique, ErrEmptyID)
	}
	if !techniqueIDPattern.MatchString(t.ID) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTechnique, ErrBadIDFormat, t.ID)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTechnique, ErrEmptyName)
	}
	if t.TacticID == "" {
		return fmt.Errorf("%w: tactic id cannot be empty", ErrInvalidTechnique)
	}
	return nil
}

// ValidateSubTechnique validates a SubTechnique according to domain rules.
//
// Validation rules:
//   - ID must match PREFIX-####.## and extend the parent ID
//   - Name must not be empty
//   - ParentID must not be empty
func ValidateSubTechnique(s SubTechnique) error {
	if s.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSubTechnique, ErrEmptyID)
	}
	if !subTechniqueIDPattern.MatchString(s.ID) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidSubTechnique, ErrBadIDFormat, s.ID)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSubTechnique, ErrEmptyName)
	}
	if s.ParentID == "" {
		return fmt.Errorf("%w: parent id cannot be empty", ErrInvalidSubTechnique)
	}
	if len(s.ID) <= len(s.ParentID) || s.ID[:len(s.ParentID)] != s.ParentID {
		return fmt.Errorf("%w: id %q is not a dotted suffix of parent %q",
			ErrInvalidSubTechnique, s.ID, s.ParentID)
	}
	return nil
}

// ValidateRecordType reports whether t is a known RecordType value.
func ValidateRecordType(t RecordType) error {
	switch t {
	case RecordTypeTechnique, RecordTypeSubTechnique:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRecordType, t)
	}
}

// ValidateRecord validates a flattened Record.
//
// Validation rules:
//   - ID and Name must not be empty
//   - Type must be valid
//   - Sub-technique records must carry a parent id
func ValidateRecord(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}
	if err := ValidateRecordType(r.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if r.Type == RecordTypeSubTechnique && r.ParentID == "" {
		return fmt.Errorf("%w: sub-technique record %q has no parent id", ErrInvalidRecord, r.ID)
	}
	return nil
}
