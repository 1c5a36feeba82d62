// Package entropy implements CRAM's per-data-series core entropy codecs:
// Beta, Gamma, Subexponential, Golomb, Golomb-Rice, and the byte/int
// Huffman variants. Every codec binds to a *bitio.Writer and/or
// *bitio.Reader supplied by the caller (the slice's single core bit
// stream) rather than owning one.
package entropy

import (
	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
)

// Beta is a fixed-width unsigned integer codec with an additive offset.
type Beta struct {
	Offset int64
	Width  uint8
}

// NewBeta validates width and returns a bound Beta codec.
func NewBeta(offset int64, width uint8) (*Beta, error) {
	if width == 0 || width > 32 {
		return nil, errs.ErrInvalidParameters
	}

	return &Beta{Offset: offset, Width: width}, nil
}

// Write writes v as Width bits of (v + Offset), MSB first.
func (b *Beta) Write(w *bitio.Writer, v int64) error {
	n := v + b.Offset
	if n < 0 || n >= int64(1)<<b.Width {
		return errs.ErrInvalidParameters
	}

	return w.WriteBits(uint32(n), int(b.Width))
}

// Read reads Width bits and subtracts Offset.
func (b *Beta) Read(r *bitio.Reader) (int64, error) {
	n, err := r.ReadBits(int(b.Width))
	if err != nil {
		return 0, err
	}

	return int64(n) - b.Offset, nil
}
