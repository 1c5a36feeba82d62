// Package huffman builds canonical Huffman codes from symbol/length tables
// or from frequency maps, for use by the entropy package's byte and int
// Huffman codecs.
//
// Canonical Huffman orders codewords by ascending (length, symbol) and
// assigns them sequentially starting from zero, incrementing by one per
// symbol and left-shifting whenever the length increases. Two alphabets
// with identical (symbols, lengths) therefore always produce identical
// codewords.
package huffman

import (
	"sort"

	"github.com/biocodecs/cram/errs"
)

// Code is one entry of a canonical Huffman code table: symbol, its codeword
// length in bits, and the codeword value right-aligned in Bits.
type Code struct {
	Symbol int32
	Length uint8
	Bits   uint32
}

// Params is the serializable shape of a Huffman alphabet: parallel arrays of
// symbols and their codeword lengths, as carried in a slice's encoding
// descriptor.
type Params struct {
	Symbols []int32
	Lengths []uint8
}

// Canonicalize derives canonical codewords from a symbol/length table.
//
// Symbols with equal length are ordered by ascending natural (symbol) order;
// codewords are then assigned in that (length, symbol) order starting at
// zero. A single-symbol alphabet always receives the zero-length, zero-bit
// codeword regardless of the length supplied for it.
func Canonicalize(p Params) ([]Code, error) {
	if len(p.Symbols) != len(p.Lengths) {
		return nil, errs.ErrInvalidCodeLengths
	}
	if len(p.Symbols) == 0 {
		return nil, errs.ErrInvalidCodeLengths
	}

	if len(p.Symbols) == 1 {
		return []Code{{Symbol: p.Symbols[0], Length: 0, Bits: 0}}, nil
	}

	order := make([]int, len(p.Symbols))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if p.Lengths[ia] != p.Lengths[ib] {
			return p.Lengths[ia] < p.Lengths[ib]
		}

		return p.Symbols[ia] < p.Symbols[ib]
	})

	for _, i := range order {
		if p.Lengths[i] == 0 {
			return nil, errs.ErrInvalidCodeLengths
		}
	}

	codes := make([]Code, len(order))
	code := uint32(0)
	curLen := p.Lengths[order[0]]

	for n, i := range order {
		length := p.Lengths[i]
		if length > curLen {
			code <<= length - curLen
			curLen = length
		}

		if curLen > 31 {
			return nil, errs.ErrCodewordTooLong
		}
		if code>>curLen != 0 {
			// code no longer fits in curLen bits: lengths violate Kraft.
			return nil, errs.ErrInvalidCodeLengths
		}

		codes[n] = Code{Symbol: p.Symbols[i], Length: curLen, Bits: code}
		code++
	}

	return codes, nil
}

// ToParams extracts the (symbols, lengths) pair from a code table, in the
// order the codes were produced (ascending (length, symbol)); this is the
// order a compression map's serialized Huffman descriptor is written in.
func ToParams(codes []Code) Params {
	p := Params{
		Symbols: make([]int32, len(codes)),
		Lengths: make([]uint8, len(codes)),
	}
	for i, c := range codes {
		p.Symbols[i] = c.Symbol
		p.Lengths[i] = c.Length
	}

	return p
}
