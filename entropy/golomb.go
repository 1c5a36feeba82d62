package entropy

import (
	"math/bits"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
)

// Golomb implements Golomb coding (quotient in unary, remainder in
// truncated binary) of n = v + Offset, n >= 0, with parameter m >= 2.
type Golomb struct {
	Offset int64
	M      int64
	ceil   int   // floor(log2(m)) + 1
	thresh int64 // 2^ceil - m
}

// NewGolomb validates m and returns a bound Golomb codec.
func NewGolomb(offset, m int64) (*Golomb, error) {
	if m < 2 {
		return nil, errs.ErrInvalidParameters
	}

	ceil := bits.Len64(uint64(m))

	return &Golomb{Offset: offset, M: m, ceil: ceil, thresh: int64(1)<<uint(ceil) - m}, nil
}

// Write encodes n = v + Offset: q = n/m ones followed by a zero, then the
// remainder r = n mod m in truncated binary (ceil-1 bits if r < thresh,
// else ceil bits).
func (g *Golomb) Write(w *bitio.Writer, v int64) error {
	n := v + g.Offset
	if n < 0 {
		return errs.ErrInvalidParameters
	}

	q := n / g.M
	r := n % g.M

	if q > 0 {
		if err := w.WriteRepeated(1, int(q)); err != nil {
			return err
		}
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}

	if r < g.thresh {
		return w.WriteBits(uint32(r), g.ceil-1)
	}

	return w.WriteBits(uint32(r+g.thresh), g.ceil)
}

// Read decodes the inverse of Write and returns n - Offset.
func (g *Golomb) Read(r *bitio.Reader) (int64, error) {
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

	lo, err := r.ReadBits(g.ceil - 1)
	if err != nil {
		return 0, err
	}

	var rem int64
	if int64(lo) < g.thresh {
		rem = int64(lo)
	} else {
		extra, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		rem = (int64(lo)<<1 | int64(extra)) - g.thresh
	}

	n := q*g.M + rem

	return n - g.Offset, nil
}
