package binning

import "github.com/biocodecs/cram/voffset"

// Merge concatenates indexes built against the same reference dictionary
// order, shifting every virtual offset in index i by shifts[i]<<16 (via
// VirtualOffset.ShiftCompressed) before combining. Per bin, chunks from
// every part are pooled and coalesced; the bin's left (loffset) pruning
// value becomes the minimum of the parts' shifted values. Each part's linear
// index is extended to the longest part's length and combined window by
// window, taking the minimum non-empty shifted value at each window. The
// result is marked finished and carries the eof of the last non-nil index,
// itself shifted.
//
// This is the building block tabix.Merge layers its descriptor/sequence-name
// bookkeeping on top of; it has no opinion on format descriptors or names.
func Merge(indexes []*Index, shifts []uint64) *Index {
	out := &Index{finished: true}

	nRefs := 0
	for _, ix := range indexes {
		if n := len(ix.refs); n > nRefs {
			nRefs = n
		}
	}
	out.refs = make([]*refIndex, nRefs)

	for ref := 0; ref < nRefs; ref++ {
		merged := newRefIndex()
		touched := false

		for i, ix := range indexes {
			if ref >= len(ix.refs) || ix.refs[ref] == nil {
				continue
			}
			touched = true
			shift := shifts[i]
			part := ix.refs[ref]

			for id, b := range part.bins {
				mb := merged.bin(int(id))
				if b.hasLeft {
					shiftedLeft := b.left.ShiftCompressed(shift)
					if !mb.hasLeft || shiftedLeft.Less(mb.left) {
						mb.left = shiftedLeft
						mb.hasLeft = true
					}
				}
				for _, c := range b.chunks {
					mb.chunks = append(mb.chunks, Chunk{
						Begin: c.Begin.ShiftCompressed(shift),
						End:   c.End.ShiftCompressed(shift),
					})
				}
			}

			if need := len(part.linear); need > len(merged.linear) {
				merged.linear = append(merged.linear, make([]voffset.VirtualOffset, need-len(merged.linear))...)
				merged.linearSet = append(merged.linearSet, make([]bool, need-len(merged.linearSet))...)
			}
			for w, set := range part.linearSet {
				if !set {
					continue
				}
				shifted := part.linear[w].ShiftCompressed(shift)
				if !merged.linearSet[w] || shifted.Less(merged.linear[w]) {
					merged.linear[w] = shifted
					merged.linearSet[w] = true
				}
			}
		}

		if !touched {
			continue
		}
		for _, id := range merged.order {
			b := merged.bins[id]
			b.chunks = coalesce(b.chunks)
		}
		out.refs[ref] = merged
	}

	var eof voffset.VirtualOffset
	for i := len(indexes) - 1; i >= 0; i-- {
		if indexes[i] == nil {
			continue
		}
		eof = indexes[i].eof.ShiftCompressed(shifts[i])
		break
	}
	out.eof = eof

	return out
}
