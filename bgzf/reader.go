package bgzf

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/biocodecs/cram/compress"
	"github.com/biocodecs/cram/endian"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/sliceformat"
	"github.com/biocodecs/cram/voffset"
)

// Reader provides random access into a block stream written by Writer,
// addressed by virtual offset, plus sequential Read once positioned.
type Reader struct {
	r io.ReaderAt

	blockStart int64 // compressed offset of the block currently loaded
	nextStart  int64 // compressed offset of the following block
	block      []byte
	pos        int
	loaded     bool
}

// NewReader returns a Reader over r.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r}
}

// SeekVirtual positions the reader at vo, loading its block if it isn't
// already the one in hand.
func (r *Reader) SeekVirtual(vo voffset.VirtualOffset) error {
	offset := int64(vo.Compressed())
	if !r.loaded || r.blockStart != offset {
		if err := r.loadBlock(offset); err != nil {
			return err
		}
	}
	r.pos = int(vo.Uncompressed())
	if r.pos > len(r.block) {
		return fmt.Errorf("cram: bgzf: virtual offset past end of block: %w", errs.ErrVirtualOffsetOverflow)
	}
	return nil
}

func (r *Reader) loadBlock(offset int64) error {
	header := make([]byte, blockHeaderSize)
	if n, err := r.r.ReadAt(header, offset); err != nil {
		if n == 0 && err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("cram: bgzf: read block header: %w", errs.ErrIO)
	}
	var got [4]byte
	copy(got[:], header[0:4])
	if got != magic {
		return fmt.Errorf("cram: bgzf: bad block magic %x: %w", got, errs.ErrInvalidHeaderSize)
	}

	compressionType := sliceformat.CompressionType(header[4])
	order := endian.GetLittleEndianEngine()
	wantCRC := order.Uint32(header[5:9])
	isize := order.Uint32(header[9:13])
	csize := order.Uint32(header[13:17])

	compressed := make([]byte, csize)
	if _, err := r.r.ReadAt(compressed, offset+blockHeaderSize); err != nil {
		return fmt.Errorf("cram: bgzf: read block payload: %w", errs.ErrIO)
	}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return fmt.Errorf("cram: bgzf: %w", err)
	}
	block, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("cram: bgzf: inflate block: %w", errs.ErrIO)
	}
	if uint32(len(block)) != isize {
		return fmt.Errorf("cram: bgzf: decompressed size mismatch: %w", errs.ErrInvalidHeaderSize)
	}
	if crc32.ChecksumIEEE(block) != wantCRC {
		return fmt.Errorf("cram: bgzf: block checksum mismatch: %w", errs.ErrInvalidHeaderSize)
	}

	r.blockStart = offset
	r.nextStart = offset + blockHeaderSize + int64(csize)
	r.block = block
	r.pos = 0
	r.loaded = true

	return nil
}

// Read copies decompressed bytes from the current position, crossing into
// the following block transparently when the current one is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if !r.loaded {
		return 0, fmt.Errorf("cram: bgzf: Read before SeekVirtual: %w", errs.ErrInvalidParameters)
	}

	total := 0
	for total < len(p) {
		if r.pos >= len(r.block) {
			if err := r.loadBlock(r.nextStart); err != nil {
				if total > 0 {
					return total, nil
				}
				return 0, err
			}
			if len(r.block) == 0 {
				return total, io.EOF
			}
		}

		n := copy(p[total:], r.block[r.pos:])
		r.pos += n
		total += n
	}

	return total, nil
}
