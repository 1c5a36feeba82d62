package entropy

import (
	"math/bits"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
)

// Subexponential implements CRAM's subexponential codec for n = v + Offset
// >= 0, parameterized by k >= 0.
type Subexponential struct {
	Offset int64
	K      int
}

// NewSubexponential validates k and returns a bound codec.
func NewSubexponential(offset int64, k int) (*Subexponential, error) {
	if k < 0 {
		return nil, errs.ErrInvalidParameters
	}

	return &Subexponential{Offset: offset, K: k}, nil
}

// Write encodes n: if n < 2^k, writes a single zero bit then n in k bits.
// Otherwise writes u = floor(log2(n)) - k + 1 one-bits, a terminating zero
// bit, and the low b = floor(log2(n)) bits of n.
func (s *Subexponential) Write(w *bitio.Writer, v int64) error {
	n := v + s.Offset
	if n < 0 {
		return errs.ErrInvalidParameters
	}

	if n < int64(1)<<uint(s.K) {
		if err := w.WriteBit(0); err != nil {
			return err
		}

		return w.WriteBits(uint32(n), s.K)
	}

	b := bits.Len64(uint64(n)) - 1
	u := b - s.K + 1

	if err := w.WriteRepeated(1, u); err != nil {
		return err
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}

	return w.WriteBits(uint32(n), b)
}

// Read decodes: counts one-bits u terminated by a zero bit; if u == 0, reads
// k bits as n; else reads b = u + k - 1 bits as the low bits of n and sets
// n = (1 << b) | low.
func (s *Subexponential) Read(r *bitio.Reader) (int64, error) {
	u := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		u++
	}

	if u == 0 {
		low, err := r.ReadBits(s.K)
		if err != nil {
			return 0, err
		}

		return int64(low) - s.Offset, nil
	}

	b := u + s.K - 1
	low, err := r.ReadBits(b)
	if err != nil {
		return 0, err
	}
	n := int64(1)<<uint(b) | int64(low)

	return n - s.Offset, nil
}
