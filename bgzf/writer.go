// Package bgzf implements a minimal block-compressed stream: a sequence of
// independently-compressed blocks, each addressable by a virtual offset
// pairing the block's byte position in the underlying stream with a byte
// position inside its decompressed content. It exists so the binning and
// tabix index packages have a real stream to test virtual offsets against;
// it is not a general seekable-stream adapter for HTTP/FTP/NIO sources.
package bgzf

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/biocodecs/cram/compress"
	"github.com/biocodecs/cram/endian"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/internal/options"
	"github.com/biocodecs/cram/sliceformat"
	"github.com/biocodecs/cram/voffset"
)

// maxBlockSize is the largest amount of uncompressed payload packed into a
// single block before it is flushed, mirroring BGZF's own block-size cap.
const maxBlockSize = 65280

// blockHeaderSize is magic(4) + compressionType(1) + crc32(4) + isize(4) +
// csize(4).
const blockHeaderSize = 17

var magic = [4]byte{'B', 'G', 'Z', 1}

// Writer buffers uncompressed bytes and flushes them as independently
// compressed blocks once maxBlockSize is reached or Close is called. Each
// block is compressed with the compress.Codec bound to the writer's
// configured sliceformat.CompressionType, tagged on the block so a Reader
// can pick the matching codec without being told separately.
type Writer struct {
	w       io.Writer
	buf     []byte
	written int64 // compressed bytes emitted so far
	closed  bool

	compressionType sliceformat.CompressionType
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*Writer]

// WithCompression overrides the general-purpose compressor applied to each
// block's payload. The default is sliceformat.CompressionZstd.
func WithCompression(ct sliceformat.CompressionType) WriterOption {
	return options.NoError(func(w *Writer) { w.compressionType = ct })
}

// NewWriter returns a Writer that emits blocks to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	writer := &Writer{w: w, compressionType: sliceformat.CompressionZstd}
	_ = options.Apply(writer, opts...)
	return writer
}

// Write appends p to the current block, flushing full blocks as needed.
func (w *Writer) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		room := maxBlockSize - len(w.buf)
		chunk := p
		if len(chunk) > room {
			chunk = chunk[:room]
		}

		w.buf = append(w.buf, chunk...)
		p = p[len(chunk):]
		n += len(chunk)

		if len(w.buf) >= maxBlockSize {
			if err := w.flushBlock(); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// Tell returns the virtual offset of the next byte Write will accept: the
// compressed offset of the block currently filling, and how far into its
// uncompressed content the buffer has grown.
func (w *Writer) Tell() voffset.VirtualOffset {
	vo, err := voffset.New(uint64(w.written), uint32(len(w.buf)))
	if err != nil {
		// len(w.buf) never exceeds maxBlockSize, well under the 65536 cap.
		panic(err)
	}
	return vo
}

func (w *Writer) flushBlock() error {
	if len(w.buf) == 0 {
		return nil
	}

	codec, err := compress.GetCodec(w.compressionType)
	if err != nil {
		return fmt.Errorf("cram: bgzf: %w", err)
	}
	compressed, err := codec.Compress(w.buf)
	if err != nil {
		return fmt.Errorf("cram: bgzf: compress block: %w", errs.ErrIO)
	}

	header := make([]byte, blockHeaderSize)
	copy(header[0:4], magic[:])
	header[4] = byte(w.compressionType)
	order := endian.GetLittleEndianEngine()
	order.PutUint32(header[5:9], crc32.ChecksumIEEE(w.buf))
	order.PutUint32(header[9:13], uint32(len(w.buf)))
	order.PutUint32(header[13:17], uint32(len(compressed)))

	if _, err := w.w.Write(header); err != nil {
		return fmt.Errorf("cram: bgzf: %w", errs.ErrIO)
	}
	if _, err := w.w.Write(compressed); err != nil {
		return fmt.Errorf("cram: bgzf: %w", errs.ErrIO)
	}

	w.written += int64(blockHeaderSize + len(compressed))
	w.buf = w.buf[:0]

	return nil
}

// Close flushes any buffered bytes as a final block.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.flushBlock()
}
