// Package binning implements the UCSC/samtools hierarchical binning scheme
// used to index genomic features by the block-compressed virtual offsets of
// the records covering them, plus a CSI-style on-disk serialization of the
// resulting per-reference index.
package binning

// minShift is the size, in bits, of the leaf-level bin window (2^14 = 16384
// bp). depth is the number of levels above the leaf, including bin 0.
const (
	minShift = 14
	depth    = 5
)

// Reg2Bin returns the smallest bin that fully contains the half-open,
// 0-based interval [beg, end). This is the classic UCSC/samtools scheme:
// bin 0 spans the whole reference, bins 1-8 cover 2^26 bp windows, 9-72
// cover 2^23 bp, 73-584 cover 2^20 bp, 585-4680 cover 2^17 bp, and
// 4681-37448 cover the 2^14 bp leaf windows.
func Reg2Bin(beg, end int64) int {
	end--
	switch {
	case beg>>14 == end>>14:
		return int(((1<<15)-1)/7 + (beg >> 14))
	case beg>>17 == end>>17:
		return int(((1<<12)-1)/7 + (beg >> 17))
	case beg>>20 == end>>20:
		return int(((1<<9)-1)/7 + (beg >> 20))
	case beg>>23 == end>>23:
		return int(((1<<6)-1)/7 + (beg >> 23))
	case beg>>26 == end>>26:
		return int(((1<<3)-1)/7 + (beg >> 26))
	default:
		return 0
	}
}

// MaxBin is the number of distinct bin ids in the scheme (0..MaxBin-1).
const MaxBin = ((1 << 18) - 1) / 7

// Reg2Bins returns every bin, at every level, that could contain a chunk
// overlapping the half-open, 0-based interval [beg, end). A query walks
// only these bins rather than the full bin space.
func Reg2Bins(beg, end int64) []int {
	end--
	bins := make([]int, 0, 19)
	bins = append(bins, 0)

	for k := 1 + (beg >> 26); k <= 1+(end>>26); k++ {
		bins = append(bins, int(k))
	}
	for k := 9 + (beg >> 23); k <= 9+(end>>23); k++ {
		bins = append(bins, int(k))
	}
	for k := 73 + (beg >> 20); k <= 73+(end>>20); k++ {
		bins = append(bins, int(k))
	}
	for k := 585 + (beg >> 17); k <= 585+(end>>17); k++ {
		bins = append(bins, int(k))
	}
	for k := 4681 + (beg >> 14); k <= 4681+(end>>14); k++ {
		bins = append(bins, int(k))
	}

	return bins
}

// leafWindow returns the leaf-level window index covering position pos.
func leafWindow(pos int64) int64 {
	return pos >> minShift
}
