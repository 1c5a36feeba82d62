package sliceformat

import (
	"io"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/entropy"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/extcodec"
)

// nullAdapter is the NULL sentinel: both scalar operations succeed as
// no-ops, since it names a data series that carries no data at all.
type nullAdapter struct{ notApplicable }

func (nullAdapter) ReadInt() (int64, error) { return 0, nil }
func (nullAdapter) WriteInt(int64) error    { return nil }

// coreIntAdapter serves Beta, Gamma, Subexponential, Golomb, and
// Golomb-Rice, every core entropy codec that moves one int64 per value
// against the slice's shared core bit stream.
type coreIntAdapter struct {
	notApplicable
	cr *bitio.Reader
	cw *bitio.Writer

	write func(w *bitio.Writer, v int64) error
	read  func(r *bitio.Reader) (int64, error)
}

func (c *coreIntAdapter) ReadInt() (int64, error) {
	return c.read(c.cr)
}

func (c *coreIntAdapter) WriteInt(v int64) error {
	return c.write(c.cw, v)
}

// huffmanAdapter serves the Huffman family, widening/narrowing between the
// int64 Codec surface and HuffmanCodec's int32 symbol space.
type huffmanAdapter struct {
	notApplicable
	codec *entropy.HuffmanCodec
	cr    *bitio.Reader
	cw    *bitio.Writer
}

func (h *huffmanAdapter) ReadInt() (int64, error) {
	sym, err := h.codec.Read(h.cr)
	return int64(sym), err
}

func (h *huffmanAdapter) WriteInt(v int64) error {
	return h.codec.Write(h.cw, int32(v))
}

// externalAdapter serves EXTERNAL: a named byte block that can carry either
// scalar values (via ExternalLong) or raw byte arrays (via
// ExternalByteArray), whichever shape the data series calling it expects.
type externalAdapter struct {
	r io.Reader
	w io.Writer
}

func (e *externalAdapter) ReadInt() (int64, error) {
	if e.r == nil {
		return 0, errs.ErrMissingExternalBlock
	}
	var c extcodec.ExternalLong
	v, err := c.Read(e.r)
	return int64(v), err
}

func (e *externalAdapter) WriteInt(v int64) error {
	if e.w == nil {
		return errs.ErrMissingExternalBlock
	}
	var c extcodec.ExternalLong
	return c.Write(e.w, uint64(v))
}

func (e *externalAdapter) ReadBytes(n int) ([]byte, error) {
	if e.r == nil {
		return nil, errs.ErrMissingExternalBlock
	}
	var c extcodec.ExternalByteArray
	return c.ReadLength(e.r, n)
}

func (e *externalAdapter) WriteBytes(b []byte) error {
	if e.w == nil {
		return errs.ErrMissingExternalBlock
	}
	var c extcodec.ExternalByteArray
	return c.Write(e.w, b)
}

// byteArrayStopAdapter serves BYTE_ARRAY_STOP against a named byte block.
type byteArrayStopAdapter struct {
	notApplicable
	codec extcodec.ByteArrayStop
	r     io.Reader
	w     io.Writer
}

func (b *byteArrayStopAdapter) ReadBytes(int) ([]byte, error) {
	if b.r == nil {
		return nil, errs.ErrMissingExternalBlock
	}
	return b.codec.Read(b.r)
}

func (b *byteArrayStopAdapter) WriteBytes(data []byte) error {
	if b.w == nil {
		return errs.ErrMissingExternalBlock
	}
	return b.codec.Write(b.w, data)
}

// byteArrayLenAdapter serves BYTE_ARRAY_LEN, the one composite family:
// length and data are themselves built Codecs, recursively.
type byteArrayLenAdapter struct {
	notApplicable
	length Codec
	data   Codec
}

func (b *byteArrayLenAdapter) ReadBytes(int) ([]byte, error) {
	n, err := b.length.ReadInt()
	if err != nil {
		return nil, err
	}
	return b.data.ReadBytes(int(n))
}

func (b *byteArrayLenAdapter) WriteBytes(data []byte) error {
	if err := b.length.WriteInt(int64(len(data))); err != nil {
		return err
	}
	return b.data.WriteBytes(data)
}
