package entropy

import (
	"math/bits"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/errs"
)

// Gamma implements Elias-gamma coding of n = v + Offset, n >= 1.
type Gamma struct {
	Offset int64
}

// NewGamma returns a Gamma codec with the given additive offset.
func NewGamma(offset int64) *Gamma {
	return &Gamma{Offset: offset}
}

// Write encodes v: writes len-1 zero bits followed by n in len bits, where
// len = floor(log2(n)) + 1.
func (g *Gamma) Write(w *bitio.Writer, v int64) error {
	n := v + g.Offset
	if n < 1 {
		return errs.ErrInvalidParameters
	}

	length := bits.Len64(uint64(n))
	if err := w.WriteRepeated(0, length-1); err != nil {
		return err
	}

	return w.WriteBits(uint32(n), length)
}

// Read counts leading zero bits z, reads z+1 bits as n, and returns n - Offset.
func (g *Gamma) Read(r *bitio.Reader) (int64, error) {
	z := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		z++
	}

	var n uint64 = 1
	for i := 0; i < z; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		n = n<<1 | uint64(bit)
	}

	return int64(n) - g.Offset, nil
}
