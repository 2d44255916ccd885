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

package search

import "errors"

var (
	// ErrStoreRequired is returned when a record store is not provided.
	ErrStoreRequired = errors.New("record store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbeddingUnavailable is returned when the embedding service fails
	// while building an index or embedding a query.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStaleIndex is returned when a persisted index does not match the
	// current provider or record set and must be rebuilt.
	ErrStaleIndex = errors.New("stale embedding index")

	// ErrSearchUnavailable is returned by the router when a semantic query
	// cannot be served because the embedding backend failed.
	ErrSearchUnavailable = errors.New("semantic search unavailable")
)
