package entropy

import (
	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
)

// GolombRice is Golomb coding specialized to m = 1 << log2m: the remainder
// always fits in exactly log2m bits, so truncated binary degenerates to
// plain binary and no threshold comparison is needed.
type GolombRice struct {
	Offset int64
	Log2M  int
}

// NewGolombRice validates log2m and returns a bound codec.
func NewGolombRice(offset int64, log2m int) (*GolombRice, error) {
	if log2m < 1 || log2m > 32 {
		return nil, errs.ErrInvalidParameters
	}

	return &GolombRice{Offset: offset, Log2M: log2m}, nil
}

// Write encodes n = v + Offset: q = n >> log2m ones followed by a zero,
// then the low log2m bits of n as the remainder.
func (gr *GolombRice) Write(w *bitio.Writer, v int64) error {
	n := v + gr.Offset
	if n < 0 {
		return errs.ErrInvalidParameters
	}

	q := n >> uint(gr.Log2M)
	if q > 0 {
		if err := w.WriteRepeated(1, int(q)); err != nil {
			return err
		}
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}

	return w.WriteBits(uint32(n), gr.Log2M)
}

// Read decodes the inverse of Write and returns n - Offset.
func (gr *GolombRice) Read(r *bitio.Reader) (int64, error) {
	q := int64(0)
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		q++
	}

	rem, err := r.ReadBits(gr.Log2M)
	if err != nil {
		return 0, err
	}

	n := q<<uint(gr.Log2M) | int64(rem)

	return n - gr.Offset, nil
}
