package binning

import "github.com/biocodecs/cram/voffset"

// bin holds the chunks recorded against one bin id, plus a pruning offset:
// the smallest Begin of any chunk ever appended to it, mirroring CSI's
// per-bin loffset field. Query-time pruning itself is done against the
// reference's separate linear index (refIndex.linear), not this field; left
// is retained because the CSI on-disk layout carries one per bin.
type bin struct {
	id      uint32
	left    voffset.VirtualOffset
	hasLeft bool
	chunks  []Chunk
}

func (b *bin) addChunk(c Chunk) {
	if !b.hasLeft || c.Begin.Less(b.left) {
		b.left = c.Begin
		b.hasLeft = true
	}

	if n := len(b.chunks); n > 0 && b.chunks[n-1].touches(c) {
		if b.chunks[n-1].End.Less(c.End) {
			b.chunks[n-1].End = c.End
		}
		return
	}

	b.chunks = append(b.chunks, c)
}
