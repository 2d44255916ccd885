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

package store

import "errors"

var (
	// ErrTaxonomyRequired is returned when Build is called with a nil catalog.
	ErrTaxonomyRequired = errors.New("taxonomy is required")

	// ErrMalformedTaxonomy is returned when the catalog fails validation and
	// cannot be flattened into records.
	ErrMalformedTaxonomy = errors.New("malformed taxonomy")

	// ErrNotFound is returned when a record id does not exist in the store.
	ErrNotFound = errors.New("record not found")
)
