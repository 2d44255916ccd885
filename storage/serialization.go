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

package storage

import (
	"fmt"

	"github.com/poiesic/sparta/core"
)

// MarshalRecord serializes a Record to bytes.
func MarshalRecord(record core.Record) []byte {
	buf := make([]byte, core.RecordMUS.Size(record))
	core.RecordMUS.Marshal(record, buf)
	return buf
}

// UnmarshalRecord deserializes a Record from bytes.
func UnmarshalRecord(data []byte) (core.Record, error) {
	record, _, err := core.RecordMUS.Unmarshal(data)
	if err != nil {
		return core.Record{}, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return record, nil
}

// MarshalIndexSnapshot serializes an IndexSnapshot to bytes.
func MarshalIndexSnapshot(snap core.IndexSnapshot) []byte {
	buf := make([]byte, core.IndexSnapshotMUS.Size(snap))
	core.IndexSnapshotMUS.Marshal(snap, buf)
	return buf
}

// UnmarshalIndexSnapshot deserializes an IndexSnapshot from bytes.
func UnmarshalIndexSnapshot(data []byte) (core.IndexSnapshot, error) {
	snap, _, err := core.IndexSnapshotMUS.Unmarshal(data)
	if err != nil {
		return core.IndexSnapshot{}, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return snap, nil
}
