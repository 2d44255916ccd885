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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTactic indicates a Tactic failed validation.
	ErrInvalidTactic = errors.New("invalid tactic")

	// ErrInvalidTechnique indicates a Technique failed validation.
	ErrInvalidTechnique = errors.New("invalid technique")

	// ErrInvalidSubTechnique indicates a SubTechnique failed validation.
	ErrInvalidSubTechnique = errors.New("invalid sub-technique")

	// ErrInvalidRecord indicates a flattened Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrBadIDFormat indicates an ID does not match its required pattern.
	ErrBadIDFormat = errors.New("id does not match the required pattern")

	// ErrInvalidRecordType indicates an invalid RecordType value.
	ErrInvalidRecordType = errors.New("invalid record type")
)
