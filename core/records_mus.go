package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

// Hand-written MUS serializers for the types persisted in the vector
// collection. Field order is part of the on-disk format; append new fields,
// never reorder.

var (
	vectorSer   = ord.NewSliceSer[float32](raw.Float32)
	metadataSer = ord.NewMapSer[string, string](ord.String, ord.String)
)

// VectorRecordMUS serializes VectorRecord values.
var VectorRecordMUS = vectorRecordMUS{}

type vectorRecordMUS struct{}

func (vectorRecordMUS) Marshal(v VectorRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.ChunkID, bs)
	n += vectorSer.Marshal(v.Vector, bs[n:])
	n += metadataSer.Marshal(v.Metadata, bs[n:])
	return
}

func (vectorRecordMUS) Unmarshal(bs []byte) (v VectorRecord, n int, err error) {
	v.ChunkID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = vectorSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = metadataSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (vectorRecordMUS) Size(v VectorRecord) (size int) {
	size = ord.String.Size(v.ChunkID)
	size += vectorSer.Size(v.Vector)
	size += metadataSer.Size(v.Metadata)
	return
}

func (vectorRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = vectorSer.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = metadataSer.Skip(bs[n:])
	n += n1
	return
}
