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

// Package reindex rebuilds the persisted embedding index from the record
// catalog. It batches records, embeds batches concurrently on a worker
// pool with retry and exponential backoff, and reports progress while it
// runs. The output is an index snapshot that the search layer can restore
// without re-embedding, tagged with the embedding model name and a
// fingerprint of the records so staleness is detectable.
//
// Typical usage:
//
//	r, err := reindex.NewReindexer(repo, provider, nil, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	snap, err := r.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	return reindex.WriteSnapshot(snap, indexPath)
package reindex
