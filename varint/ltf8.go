package varint

import (
	"io"

	"github.com/biocodecs/cram/errs"
)

// MaxLTF8Bytes is the maximum number of bytes an LTF8-encoded value occupies.
const MaxLTF8Bytes = 9

// WriteLTF8 writes v as LTF8 to w, choosing the shortest valid encoding, and
// returns the number of bytes written.
func WriteLTF8(w io.Writer, v uint64) (int, error) {
	var buf [MaxLTF8Bytes]byte

	switch {
	case v <= 1<<7-1:
		buf[0] = byte(v)

		return writeN(w, buf[:1])
	case v <= 1<<14-1:
		buf[0] = 0x80 | byte(v>>8&0x3F)
		buf[1] = byte(v)

		return writeN(w, buf[:2])
	case v <= 1<<21-1:
		buf[0] = 0xC0 | byte(v>>16&0x1F)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v)

		return writeN(w, buf[:3])
	case v <= 1<<28-1:
		buf[0] = 0xE0 | byte(v>>24&0x0F)
		buf[1] = byte(v >> 16)
		buf[2] = byte(v >> 8)
		buf[3] = byte(v)

		return writeN(w, buf[:4])
	case v <= 1<<35-1:
		buf[0] = 0xF0 | byte(v>>32&0x07)
		buf[1] = byte(v >> 24)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 8)
		buf[4] = byte(v)

		return writeN(w, buf[:5])
	case v <= 1<<42-1:
		buf[0] = 0xF8 | byte(v>>40&0x03)
		buf[1] = byte(v >> 32)
		buf[2] = byte(v >> 24)
		buf[3] = byte(v >> 16)
		buf[4] = byte(v >> 8)
		buf[5] = byte(v)

		return writeN(w, buf[:6])
	case v <= 1<<49-1:
		buf[0] = 0xFC | byte(v>>48&0x01)
		buf[1] = byte(v >> 40)
		buf[2] = byte(v >> 32)
		buf[3] = byte(v >> 24)
		buf[4] = byte(v >> 16)
		buf[5] = byte(v >> 8)
		buf[6] = byte(v)

		return writeN(w, buf[:7])
	case v <= 1<<56-1:
		buf[0] = 0xFE
		buf[1] = byte(v >> 48)
		buf[2] = byte(v >> 40)
		buf[3] = byte(v >> 32)
		buf[4] = byte(v >> 24)
		buf[5] = byte(v >> 16)
		buf[6] = byte(v >> 8)
		buf[7] = byte(v)

		return writeN(w, buf[:8])
	default:
		buf[0] = 0xFF
		buf[1] = byte(v >> 56)
		buf[2] = byte(v >> 48)
		buf[3] = byte(v >> 40)
		buf[4] = byte(v >> 32)
		buf[5] = byte(v >> 24)
		buf[6] = byte(v >> 16)
		buf[7] = byte(v >> 8)
		buf[8] = byte(v)

		return writeN(w, buf[:9])
	}
}

// ReadLTF8 reads an LTF8-encoded unsigned value from r.
func ReadLTF8(r io.Reader) (uint64, error) {
	var b [MaxLTF8Bytes]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return 0, errs.ErrMalformedVarint
	}
	b0 := b[0]

	switch {
	case b0&0x80 == 0:
		return uint64(b0), nil
	case b0&0x40 == 0:
		if err := readTail(r, b[1:2]); err != nil {
			return 0, err
		}

		return uint64(b0&0x3F)<<8 | uint64(b[1]), nil
	case b0&0x20 == 0:
		if err := readTail(r, b[1:3]); err != nil {
			return 0, err
		}

		return uint64(b0&0x1F)<<16 | uint64(b[1])<<8 | uint64(b[2]), nil
	case b0&0x10 == 0:
		if err := readTail(r, b[1:4]); err != nil {
			return 0, err
		}

		return uint64(b0&0x0F)<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3]), nil
	case b0&0x08 == 0:
		if err := readTail(r, b[1:5]); err != nil {
			return 0, err
		}

		return uint64(b0&0x07)<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4]), nil
	case b0&0x04 == 0:
		if err := readTail(r, b[1:6]); err != nil {
			return 0, err
		}

		return uint64(b0&0x03)<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 | uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5]), nil
	case b0&0x02 == 0:
		if err := readTail(r, b[1:7]); err != nil {
			return 0, err
		}

		return uint64(b0&0x01)<<48 | uint64(b[1])<<40 | uint64(b[2])<<32 | uint64(b[3])<<24 | uint64(b[4])<<16 | uint64(b[5])<<8 | uint64(b[6]), nil
	case b0&0x01 == 0:
		if err := readTail(r, b[1:8]); err != nil {
			return 0, err
		}

		var v uint64
		for i := 1; i < 8; i++ {
			v = v<<8 | uint64(b[i])
		}

		return v, nil
	default:
		// 9-byte form: the first byte is always the literal 0xFF marker;
		// the full 64-bit value follows in the next eight bytes.
		if err := readTail(r, b[1:9]); err != nil {
			return 0, err
		}

		var v uint64
		for i := 1; i < 9; i++ {
			v = v<<8 | uint64(b[i])
		}

		return v, nil
	}
}

// SizeLTF8 returns the number of bytes v would occupy when LTF8-encoded.
func SizeLTF8(v uint64) int {
	switch {
	case v <= 1<<7-1:
		return 1
	case v <= 1<<14-1:
		return 2
	case v <= 1<<21-1:
		return 3
	case v <= 1<<28-1:
		return 4
	case v <= 1<<35-1:
		return 5
	case v <= 1<<42-1:
		return 6
	case v <= 1<<49-1:
		return 7
	case v <= 1<<56-1:
		return 8
	default:
		return 9
	}
}

func readTail(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return errs.ErrMalformedVarint
	}

	return nil
}
