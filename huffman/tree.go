package huffman

import (
	"container/heap"
	"sort"

	"github.com/biocodecs/cram/errs"
)

// node is an internal or leaf node of the frequency-driven Huffman tree.
// Only depth (codeword length) is needed from the finished tree; the actual
// codeword values come from Canonicalize.
type node struct {
	freq        int64
	symbol      int32
	isLeaf      bool
	left, right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}

	// Tie-break deterministically so FromFrequencies is reproducible.
	return h[i].symbol < h[j].symbol
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// FromFrequencies builds a Huffman tree over freqs (symbol -> count, zero
// and negative entries ignored) and returns canonical-ready Params with one
// entry per symbol of non-zero frequency.
//
// A single-symbol alphabet is assigned length 0, per the canonical-Huffman
// convention that such an alphabet writes zero bits per symbol.
func FromFrequencies(freqs map[int32]int64) (Params, error) {
	symbols := make([]int32, 0, len(freqs))
	for s, f := range freqs {
		if f > 0 {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		return Params{}, errs.ErrInvalidParameters
	}

	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	if len(symbols) == 1 {
		return Params{Symbols: symbols, Lengths: []uint8{0}}, nil
	}

	h := make(nodeHeap, 0, len(symbols))
	for _, s := range symbols {
		h = append(h, &node{freq: freqs[s], symbol: s, isLeaf: true})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{freq: a.freq + b.freq, left: a, right: b})
	}

	root := h[0]
	depths := make(map[int32]uint8, len(symbols))
	var walk func(n *node, depth uint8)
	walk = func(n *node, depth uint8) {
		if n.isLeaf {
			depths[n.symbol] = depth

			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)

	lengths := make([]uint8, len(symbols))
	for i, s := range symbols {
		lengths[i] = depths[s]
	}

	return Params{Symbols: symbols, Lengths: lengths}, nil
}
