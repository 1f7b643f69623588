package badger

import "fmt"

// Key prefixes for the vector collection
const (
	vectorRecordPrefix = "vecrec:"
	vectorRecordIDSeq  = "vecseq"
)

// makeVectorRecordKey generates a key for a vector record by its sequence
// number. Records are keyed by insertion order, not by chunk ID, so saving
// the same chunk twice stores two entries.
func makeVectorRecordKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", vectorRecordPrefix, seq))
}
