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

// Package search answers free-form queries over the flattened technique
// catalog. It combines three mechanisms:
//
//   - Keyword ranking: weighted substring and word-overlap scoring,
//     requiring no embedding service at all.
//   - An embedding index: one vector per record, cosine similarity
//     ranking, persisted to disk and invalidated when the embedding model
//     or the record set changes.
//   - A query router: queries naming a tactic are answered with the full
//     tactic listing; everything else goes through the embedding index.
//
// The formatter renders routed responses as display text for the CLI.
package search
