package binning

import (
	"sort"

	"github.com/biocodecs/cram/voffset"
)

// Chunk is a half-open range of virtual offsets [Begin, End) covering one or
// more features recorded in a single bin.
type Chunk struct {
	Begin, End voffset.VirtualOffset
}

// touches reports whether c and o overlap or abut, so they can be coalesced
// into a single chunk without losing coverage.
func (c Chunk) touches(o Chunk) bool {
	return !c.End.Less(o.Begin) && !o.End.Less(c.Begin)
}

// coalesce sorts chunks by Begin and merges any that touch or overlap.
// Features are added to a bin in non-decreasing start order already, so in
// practice this only ever needs to look at the last chunk appended; it sorts
// anyway so a tabix merge of several parts' bins is also handled correctly.
func coalesce(chunks []Chunk) []Chunk {
	if len(chunks) < 2 {
		return chunks
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Begin.Less(chunks[j].Begin) })

	out := chunks[:1]
	for _, c := range chunks[1:] {
		last := &out[len(out)-1]
		if last.touches(c) {
			if last.End.Less(c.End) {
				last.End = c.End
			}
			continue
		}
		out = append(out, c)
	}

	return out
}
