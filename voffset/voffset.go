// Package voffset implements block-compressed virtual offsets: a 64-bit
// value packing a compressed byte position in the file together with an
// uncompressed byte position within that block's decompressed content,
// exactly as BAM, CRAM, and tabix indexes do.
package voffset

import "github.com/biocodecs/cram/errs"

// VirtualOffset is (compressedBlockOffset << 16) | uncompressedOffsetInBlock.
// Numeric ordering on the packed value equals lexicographic ordering on
// (compressed, uncompressed).
type VirtualOffset uint64

// MaxUncompressed is the largest valid uncompressed-offset component: a
// decompressed block is never addressed past 65535 bytes in.
const MaxUncompressed = 0xFFFF

// New packs a compressed block offset and an in-block uncompressed offset
// into a VirtualOffset. Fails if uncompressed exceeds 65535.
//
// uncompressed is taken as uint32 (wider than the 16-bit field it occupies)
// so that out-of-range values are rejected rather than silently truncated.
func New(compressed uint64, uncompressed uint32) (VirtualOffset, error) {
	if uncompressed > MaxUncompressed {
		return 0, errs.ErrVirtualOffsetOverflow
	}

	return VirtualOffset(compressed<<16 | uint64(uncompressed)), nil
}

// Compressed returns the compressed block offset component.
func (vo VirtualOffset) Compressed() uint64 {
	return uint64(vo) >> 16
}

// Uncompressed returns the in-block uncompressed offset component.
func (vo VirtualOffset) Uncompressed() uint16 {
	return uint16(uint64(vo) & MaxUncompressed)
}

// ShiftCompressed returns vo with delta added to the compressed portion
// only, leaving the uncompressed portion unchanged. Used by the tabix
// merger to relocate offsets from a part-local file into the concatenated
// output.
func (vo VirtualOffset) ShiftCompressed(delta uint64) VirtualOffset {
	return VirtualOffset(vo) + VirtualOffset(delta<<16)
}

// Less reports whether vo sorts before other; this is plain numeric
// ordering on the packed value.
func (vo VirtualOffset) Less(other VirtualOffset) bool {
	return vo < other
}
