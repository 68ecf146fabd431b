package invariant

import "github.com/dyluth/pmatrix/pkg/record"

// ValidateStreamT1 checks temporal ordering across an ordered sequence of
// records attributed to a single emitter: timestamps must be non-decreasing.
// Equal consecutive timestamps are allowed.
//
// Returns the index of the first record whose timestamp is strictly less than
// its predecessor's, and true if such a violation exists. The sequence must
// be presented in its true emission order; this is the only sequential piece
// of validation and it does not compose with out-of-order or partial batches.
func ValidateStreamT1(records []*record.Record) (int, bool) {
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp < records[i-1].Timestamp {
			return i, true
		}
	}
	return 0, false
}
