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

// Package export turns the technique catalog into downstream datasets.
//
// Three training-data formats are produced from generated question/answer
// examples: instruction tuning (instruction/input/output), chat
// conversations, and a retrieval corpus for RAG pipelines. A fourth export
// writes the flat record catalog itself as JSON. All writers emit indented
// JSON to an io.Writer and report how many entries they wrote.
package export
