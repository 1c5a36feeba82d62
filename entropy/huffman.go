package entropy

import (
	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/huffman"
)

// HuffmanCodec reads and writes symbols using a canonical Huffman code built
// from a huffman.Params descriptor. It serves both the byte and int data
// series: callers narrow/widen the int32 symbol at the call site.
type HuffmanCodec struct {
	enc huffman.EncodeTable
	dec *huffman.DecodeTable
	// single holds the lone symbol of a single-symbol alphabet, which
	// writes/reads zero bits since no choice needs encoding.
	single   int32
	isSingle bool
}

// NewHuffmanCodec derives canonical codewords from params and returns a
// bound codec.
func NewHuffmanCodec(params huffman.Params) (*HuffmanCodec, error) {
	codes, err := huffman.Canonicalize(params)
	if err != nil {
		return nil, err
	}

	if len(codes) == 1 {
		return &HuffmanCodec{single: codes[0].Symbol, isSingle: true}, nil
	}

	return &HuffmanCodec{
		enc: huffman.NewEncodeTable(codes),
		dec: huffman.NewDecodeTable(codes),
	}, nil
}

// Write looks up the codeword for symbol and writes it MSB first.
func (h *HuffmanCodec) Write(w *bitio.Writer, symbol int32) error {
	if h.isSingle {
		if symbol != h.single {
			return errs.ErrSymbolNotInAlphabet
		}

		return nil
	}

	c, ok := h.enc[symbol]
	if !ok {
		return errs.ErrSymbolNotInAlphabet
	}
	if c.Length == 0 {
		return nil
	}

	return w.WriteBits(c.Bits, int(c.Length))
}

// Read progressively accumulates bits, probing the decode table at each
// length boundary, and returns the matching symbol. It never reads beyond
// the longest codeword length.
func (h *HuffmanCodec) Read(r *bitio.Reader) (int32, error) {
	if h.isSingle {
		return h.single, nil
	}

	var acc uint32
	maxLen := h.dec.MaxLength()

	for length := uint8(1); length <= maxLen; length++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		acc = acc<<1 | bit

		if sym, ok := h.dec.Lookup(acc, length); ok {
			return sym, nil
		}
	}

	return 0, errs.ErrInvalidCodeLengths
}
