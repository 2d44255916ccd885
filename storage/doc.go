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

// Package storage provides the storage abstraction layer for the technique
// catalog.
//
// This package defines repository interfaces that decouple storage
// implementation from the search layer, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably. The canonical catalog lives
// in code; persistence exists so a process can serve lookups without
// rebuilding the flattened records, and so the embedding index has a stable
// record order to bind to.
//
// # Architecture
//
//   - Repository: transaction and lifecycle operations shared by all
//     repositories
//   - RecordRepository: operations for flattened technique records,
//     including order-preserving enumeration
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
//	repo, err := badger.NewRecordRepository(backend)
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
