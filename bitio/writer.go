// Package bitio provides MSB-first bit-level stream readers and writers over
// arbitrary io.Reader/io.Writer byte streams.
//
// A codeword of n bits whose MSB is written first appears in the stream with
// that MSB occupying the highest unused bit of the first partially filled
// byte. Neither Writer nor Reader is safe for concurrent use; each has
// exactly one owner at a time.
package bitio

import (
	"io"

	"github.com/biocodecs/cram/internal/pool"
)

// Writer accumulates bits MSB-first into a byte-oriented sink.
//
// It accumulates up to 63 bits in a left-aligned 64-bit accumulator between
// calls, moving whole bytes into an internal byte buffer each time the
// accumulator fills; bytes reach the underlying writer when that buffer
// grows large or on Flush.
type Writer struct {
	w        io.Writer
	buf      *pool.ByteBuffer
	bitBuf   uint64 // left-aligned accumulator; valid bits occupy the high bitCount bits
	bitCount int    // number of valid bits currently buffered, 0..63
	written  int64  // bits accepted from callers; Flush padding is not counted
}

// NewWriter creates a bit writer over the given byte sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: pool.Get(),
	}
}

// WriteBit writes a single bit.
func (bw *Writer) WriteBit(bit uint32) error {
	return bw.WriteBits(bit, 1)
}

// WriteBits writes the low n bits of value, MSB first. n must be in 0..32.
func (bw *Writer) WriteBits(value uint32, n int) error {
	if n == 0 {
		return nil
	}
	if n < 0 || n > 32 {
		panic("bitio: WriteBits: n out of range")
	}
	bw.written += int64(n)

	v := uint64(value)
	if n < 64 {
		v &= (uint64(1) << uint(n)) - 1
	}

	available := 64 - bw.bitCount
	if n <= available {
		bw.bitBuf |= v << uint(available-n)
		bw.bitCount += n

		if bw.bitCount == 64 {
			return bw.flushBuffer()
		}

		return nil
	}

	// Split across the accumulator boundary: fill what's left, flush, then
	// carry the remainder into a fresh accumulator.
	highBits := n - available
	bw.bitBuf |= v >> uint(highBits)
	bw.bitCount = 64
	if err := bw.flushBuffer(); err != nil {
		return err
	}

	bw.bitBuf = (v & ((uint64(1) << uint(highBits)) - 1)) << uint(64-highBits)
	bw.bitCount = highBits

	return nil
}

// WriteRepeated writes n copies of the same bit efficiently.
func (bw *Writer) WriteRepeated(bit uint32, n int) error {
	fill := uint32(0)
	if bit != 0 {
		fill = 0xFFFFFFFF
	}

	for n > 0 {
		chunk := n
		if chunk > 32 {
			chunk = 32
		}
		if err := bw.WriteBits(fill, chunk); err != nil {
			return err
		}
		n -= chunk
	}

	return nil
}

// flushBuffer pushes the current 64-bit accumulator to the byte buffer and
// resets it. Called whenever the accumulator fills completely.
func (bw *Writer) flushBuffer() error {
	if bw.bitCount == 0 {
		return nil
	}

	numBytes := (bw.bitCount + 7) / 8
	bw.buf.Grow(numBytes)
	start := bw.buf.Len()
	bw.buf.ExtendOrGrow(numBytes)
	bs := bw.buf.Slice(start, start+numBytes)

	for i := range numBytes {
		shift := 56 - i*8
		bs[i] = byte(bw.bitBuf >> uint(shift))
	}

	bw.bitBuf = 0
	bw.bitCount = 0

	if bw.buf.Len() >= pool.DefaultBufferSize {
		return bw.drain()
	}

	return nil
}

// drain writes accumulated whole bytes to the underlying writer.
func (bw *Writer) drain() error {
	if bw.buf.Len() == 0 {
		return nil
	}

	if _, err := bw.w.Write(bw.buf.Bytes()); err != nil {
		return err
	}
	bw.buf.Reset()

	return nil
}

// Flush pads the current partial byte with zero bits on the low-order side,
// emits any buffered bytes to the underlying writer, and is idempotent: a
// second call with nothing pending is a no-op.
func (bw *Writer) Flush() error {
	// The accumulator's unused low bits are always zero, and flushBuffer
	// rounds up to whole bytes, so pushing it pads the partial byte.
	if bw.bitCount > 0 {
		if err := bw.flushBuffer(); err != nil {
			return err
		}
	}

	return bw.drain()
}

// BitsWritten returns the total number of bits written so far, including
// unflushed bits still in the accumulator and buffer. The zero bits Flush
// adds to complete a partial byte are not counted.
func (bw *Writer) BitsWritten() int64 {
	return bw.written
}

// Close flushes any pending bits and releases the writer's internal buffer.
func (bw *Writer) Close() error {
	err := bw.Flush()
	pool.Put(bw.buf)
	bw.buf = nil

	return err
}
