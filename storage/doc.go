// Copyright 2025 Talentfold
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


// Package storage defines the persistence abstraction for the ingest
// pipeline: the vector collection that answers similarity queries and the
// relational sink that receives the normalized tables.
//
// Public constructors in backend packages (badger, sqlite) return these
// interfaces rather than concrete types, so consumers never couple to a
// specific engine and tests can substitute in-memory implementations.
//
// All implementations must be safe for concurrent readers; the vector
// collection assumes at most one writer process per run.
package storage
