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


package badger

import (
	"context"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
// Queries are a full linear scan over the collection; acceptable for the
// corpus sizes this pipeline targets (tens of thousands of chunks).
type VectorRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) (*VectorRepository, error) {
	idSeq, err := backend.GetSequence(vectorRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &VectorRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *VectorRepository) Close() error {
	return r.idSeq.Release()
}

// saveBatchSize bounds how many records go into one transaction. Badger
// caps transaction size at a fraction of the value log, so a full run's
// records must not share a single commit.
const saveBatchSize = 500

// Save appends records to the collection under sequence-derived keys,
// committing in bounded batches. A failure mid-save leaves earlier batches
// committed; callers treat any Save error as fatal for the run.
func (r *VectorRepository) Save(ctx context.Context, records ...*core.VectorRecord) error {
	for start := 0; start < len(records); start += saveBatchSize {
		end := start + saveBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		err := r.backend.WithTx(func(tx *badger.Txn) error {
			for _, record := range batch {
				seq, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				key := makeVectorRecordKey(seq)
				if err := tx.Set(key, storage.MarshalVectorRecord(record)); err != nil {
					return err
				}
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return err
		}
	}
	return nil
}

// Query scans the whole collection, drops records failing the filter,
// scores the rest by cosine similarity, and returns the topK best.
func (r *VectorRepository) Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]*core.ScoredRecord, error) {
	if topK <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.ScoredRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.VectorRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalVectorRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || !matchesFilter(record.Metadata, filter) {
				continue
			}
			results = append(results, &core.ScoredRecord{
				Record: record,
				Score:  cosineSimilarity(vector, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Stable so equal scores keep insertion order.
	slices.SortStableFunc(results, func(a, b *core.ScoredRecord) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// matchesFilter reports whether metadata satisfies every filter entry
// exactly. A nil/empty filter matches everything.
func matchesFilter(metadata, filter map[string]string) bool {
	for key, want := range filter {
		if metadata[key] != want {
			return false
		}
	}
	return true
}

// cosineSimilarity computes cosine similarity over the shared prefix of the
// two vectors. A zero-norm vector on either side scores 0 rather than
// dividing by zero.
func cosineSimilarity(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
