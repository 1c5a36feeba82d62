// Package refdict provides the sequence dictionary the binning index uses
// to bound linear-index sizing: an ordered list of reference sequences and
// their lengths, supplied by the caller's higher-level file format.
package refdict

// Sequence is one reference sequence: its name and length in base pairs.
type Sequence struct {
	Name   string
	Length int64
}

// Dictionary is an ordered list of reference sequences, indexed by the
// caller's reference index (0-based, matching the order features are added
// to a binning index).
type Dictionary []Sequence

// Len returns the number of sequences.
func (d Dictionary) Len() int { return len(d) }

// Name returns the name of the sequence at ref, or "" if out of range.
func (d Dictionary) Name(ref int) string {
	if ref < 0 || ref >= len(d) {
		return ""
	}

	return d[ref].Name
}

// Length returns the length in base pairs of the sequence at ref, or 0 if
// out of range.
func (d Dictionary) Length(ref int) int64 {
	if ref < 0 || ref >= len(d) {
		return 0
	}

	return d[ref].Length
}
