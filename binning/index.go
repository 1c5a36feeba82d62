package binning

import (
	"sort"

	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/refdict"
	"github.com/biocodecs/cram/voffset"
)

// refIndex is the binning index for a single reference sequence: its bins,
// sorted by bin id once Finish is called, plus the linear index (one minimum
// virtual offset per 16384bp window, used to prune chunks a query can't
// possibly need before even consulting the bin tree).
type refIndex struct {
	bins  map[uint32]*bin
	order []uint32

	linear    []voffset.VirtualOffset
	linearSet []bool
}

func newRefIndex() *refIndex {
	return &refIndex{bins: make(map[uint32]*bin)}
}

// recordLinear updates the linear index for every window overlapped by the
// half-open interval [start, end): window w is set to the minimum of its
// current value (if any) and vo.
func (r *refIndex) recordLinear(start, end int64, vo voffset.VirtualOffset) {
	first := int(leafWindow(start))
	last := int(leafWindow(end - 1))

	if need := last + 1; need > len(r.linear) {
		r.linear = append(r.linear, make([]voffset.VirtualOffset, need-len(r.linear))...)
		r.linearSet = append(r.linearSet, make([]bool, need-len(r.linearSet))...)
	}

	for w := first; w <= last; w++ {
		if !r.linearSet[w] || vo.Less(r.linear[w]) {
			r.linear[w] = vo
			r.linearSet[w] = true
		}
	}
}

func (r *refIndex) bin(id int) *bin {
	key := uint32(id)
	if b, ok := r.bins[key]; ok {
		return b
	}
	b := &bin{id: key}
	r.bins[key] = b
	r.order = append(r.order, key)
	return b
}

func (r *refIndex) sortedBins() []bin {
	ids := append([]uint32(nil), r.order...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]bin, len(ids))
	for i, id := range ids {
		out[i] = *r.bins[id]
	}
	return out
}

// Index is a builder for, and queryable view of, a reference-by-reference
// binning index. Features must be added in non-decreasing (reference, start)
// order; Finish materializes empty entries for references the dictionary
// names but that never received a feature.
type Index struct {
	dict refdict.Dictionary
	refs []*refIndex

	started   bool
	lastRef   int
	lastStart int64

	eof      voffset.VirtualOffset
	finished bool
}

// NewIndex creates a builder bound to dict, used only to size the finished
// reference list.
func NewIndex(dict refdict.Dictionary) *Index {
	return &Index{dict: dict}
}

// AddFeature records one feature's bin and chunk. Features for a given
// reference must arrive with non-decreasing start; features across
// references must arrive with non-decreasing reference index.
func (ix *Index) AddFeature(ref int, start, end int64, featureStartVO, featureEndVO voffset.VirtualOffset) error {
	if end <= start {
		return errs.ErrInvalidInterval
	}
	if ix.started {
		if ref < ix.lastRef || (ref == ix.lastRef && start < ix.lastStart) {
			return errs.ErrUnorderedFeature
		}
	}

	for len(ix.refs) <= ref {
		ix.refs = append(ix.refs, nil)
	}
	if ix.refs[ref] == nil {
		ix.refs[ref] = newRefIndex()
	}

	r := ix.refs[ref]
	b := r.bin(Reg2Bin(start, end))
	b.addChunk(Chunk{Begin: featureStartVO, End: featureEndVO})
	r.recordLinear(start, end, featureStartVO)

	ix.started = true
	ix.lastRef = ref
	ix.lastStart = start

	return nil
}

// Finish closes out the builder: references named by the dictionary but
// never touched by AddFeature become present-but-empty entries, and eof
// records the virtual offset of the end of the indexed stream (written into
// the serialized form's trailing field).
func (ix *Index) Finish(eof voffset.VirtualOffset) *Index {
	for len(ix.refs) < ix.dict.Len() {
		ix.refs = append(ix.refs, nil)
	}
	ix.eof = eof
	ix.finished = true
	return ix
}

// Chunks returns the coalesced chunks of ref that could overlap the
// half-open, 0-based interval [beg, end), pruned by the linear index: any
// chunk that ends before the minimum virtual offset recorded for beg's
// window cannot contain a feature overlapping [beg, end).
func (ix *Index) Chunks(ref int, beg, end int64) []Chunk {
	if ref < 0 || ref >= len(ix.refs) || ix.refs[ref] == nil {
		return nil
	}
	r := ix.refs[ref]

	var lowerBound voffset.VirtualOffset
	if w := int(leafWindow(beg)); w < len(r.linear) && r.linearSet[w] {
		lowerBound = r.linear[w]
	}

	var out []Chunk
	for _, id := range Reg2Bins(beg, end) {
		b, ok := r.bins[uint32(id)]
		if !ok {
			continue
		}
		for _, c := range b.chunks {
			if c.End.Less(lowerBound) {
				continue
			}
			out = append(out, c)
		}
	}

	return coalesce(out)
}

// LinearIndex returns ref's linear-index array: the minimum virtual offset
// of any feature overlapping each 16384bp window, in window order. Windows
// never touched by a feature report the zero VirtualOffset, which never
// prunes a chunk.
func (ix *Index) LinearIndex(ref int) []voffset.VirtualOffset {
	if ref < 0 || ref >= len(ix.refs) || ix.refs[ref] == nil {
		return nil
	}
	return ix.refs[ref].linear
}

// References returns the number of reference-sequence slots materialized by
// Finish, bounded below by the sequence dictionary's length.
func (ix *Index) References() int {
	return len(ix.refs)
}
