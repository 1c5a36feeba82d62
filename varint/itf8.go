// Package varint implements CRAM's self-delimiting variable-length integer
// encodings, ITF8 (32-bit, 1-5 bytes) and LTF8 (64-bit, 1-9 bytes).
//
// In both encodings the number of leading one-bits in the first byte gives
// the count of continuation bytes: encoded length is
// 1 + popcount(leading_ones_of_first_byte).
package varint

import (
	"io"

	"github.com/biocodecs/cram/errs"
)

// MaxITF8Bytes is the maximum number of bytes an ITF8-encoded value occupies.
const MaxITF8Bytes = 5

// WriteITF8 writes v as ITF8 to w, choosing the shortest valid encoding, and
// returns the number of bytes written.
func WriteITF8(w io.Writer, v uint32) (int, error) {
	var buf [MaxITF8Bytes]byte

	switch {
	case v <= 0x7F:
		buf[0] = byte(v)

		return writeN(w, buf[:1])
	case v <= 0x3FFF:
		buf[0] = 0x80 | byte(v>>8&0x3F)
		buf[1] = byte(v)

		return writeN(w, buf[:2])
	case v <= 0x1FFFFF:
		buf[0] = 0xC0 | byte(v>>16&0x1F)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v)

		return writeN(w, buf[:3])
	case v <= 0x0FFFFFFF:
		buf[0] = 0xE0 | byte(v>>24&0x0F)
		buf[1] = byte(v >> 16)
		buf[2] = byte(v >> 8)
		buf[3] = byte(v)

		return writeN(w, buf[:4])
	default:
		buf[0] = 0xF0
		buf[1] = byte(v >> 24)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 8)
		buf[4] = byte(v)

		return writeN(w, buf[:5])
	}
}

// ReadITF8 reads an ITF8-encoded unsigned value from r.
func ReadITF8(r io.Reader) (uint32, error) {
	var b [MaxITF8Bytes]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return 0, errs.ErrMalformedVarint
	}
	b0 := b[0]

	switch {
	case b0&0x80 == 0:
		return uint32(b0), nil
	case b0&0x40 == 0:
		if _, err := io.ReadFull(r, b[1:2]); err != nil {
			return 0, errs.ErrMalformedVarint
		}

		return uint32(b0&0x3F)<<8 | uint32(b[1]), nil
	case b0&0x20 == 0:
		if _, err := io.ReadFull(r, b[1:3]); err != nil {
			return 0, errs.ErrMalformedVarint
		}

		return uint32(b0&0x1F)<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
	case b0&0x10 == 0:
		if _, err := io.ReadFull(r, b[1:4]); err != nil {
			return 0, errs.ErrMalformedVarint
		}

		return uint32(b0&0x0F)<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
	default:
		// 5-byte form: the first byte is always the literal 0xF0 marker;
		// the full 32-bit value follows in the next four bytes.
		if _, err := io.ReadFull(r, b[1:5]); err != nil {
			return 0, errs.ErrMalformedVarint
		}

		return uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4]), nil
	}
}

// SizeITF8 returns the number of bytes v would occupy when ITF8-encoded.
func SizeITF8(v uint32) int {
	switch {
	case v <= 0x7F:
		return 1
	case v <= 0x3FFF:
		return 2
	case v <= 0x1FFFFF:
		return 3
	case v <= 0x0FFFFFFF:
		return 4
	default:
		return 5
	}
}

func writeN(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	if err != nil {
		return n, err
	}

	return n, nil
}
