package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentfold/ingest/core"
)

func TestMarshalUnmarshalVectorRecord(t *testing.T) {
	tests := []struct {
		name   string
		record *core.VectorRecord
	}{
		{
			name: "minimal record",
			record: &core.VectorRecord{
				ChunkID: "listing-1-0",
				Vector:  []float32{0.1, 0.2, 0.3},
			},
		},
		{
			name: "record with metadata",
			record: &core.VectorRecord{
				ChunkID: "resume-7-2",
				Vector:  []float32{0.5, -0.25, 1.0, 0.0},
				Metadata: map[string]string{
					"source_type": "resume",
					"city":        "Pune",
					"state":       "Maharashtra",
				},
			},
		},
		{
			name: "full-size vector",
			record: &core.VectorRecord{
				ChunkID:  "listing-42-11",
				Vector:   make([]float32, 256),
				Metadata: map[string]string{"source_type": "listing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalVectorRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalVectorRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.record.ChunkID, decoded.ChunkID)
			assert.Equal(t, tt.record.Vector, decoded.Vector)
			if len(tt.record.Metadata) == 0 {
				assert.Empty(t, decoded.Metadata)
			} else {
				assert.Equal(t, tt.record.Metadata, decoded.Metadata)
			}
		})
	}
}

func TestUnmarshalVectorRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalVectorRecord(tt.data)
			assert.Error(t, err)
		})
	}
}
