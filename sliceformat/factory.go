package sliceformat

import (
	"bytes"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/entropy"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/extcodec"
	"github.com/biocodecs/cram/huffman"
)

// SliceStreams is the set of stream sources/sinks a slice's codecs bind to:
// the one shared core bit stream, plus the external byte blocks keyed by
// content id. A given content id is bound to exactly one reader or writer
// at a time — a factory building both a read-side and write-side slice view
// uses two separate SliceStreams values.
type SliceStreams struct {
	CoreReader *bitio.Reader
	CoreWriter *bitio.Writer

	ExternalReaders map[int32]io.Reader
	ExternalWriters map[int32]io.Writer
}

// Factory binds parsed Descriptors to concrete Codecs. It caches Huffman
// codecs by a hash of their serialized parameters so that repeated
// identical descriptors (the common case across many slices built from the
// same header template) don't re-run canonicalization every time.
type Factory struct {
	huffmanCache map[uint64]*entropy.HuffmanCodec
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{huffmanCache: make(map[uint64]*entropy.HuffmanCodec)}
}

// Build parses nothing further; it binds an already-parsed Descriptor to
// streams and returns the resulting Codec.
func (f *Factory) Build(d Descriptor, streams SliceStreams) (Codec, error) {
	switch d.ID {
	case Null:
		return nullAdapter{}, nil

	case External:
		return &externalAdapter{
			r: streams.ExternalReaders[d.ContentID],
			w: streams.ExternalWriters[d.ContentID],
		}, nil

	case Golomb:
		c, err := entropy.NewGolomb(d.Offset, d.M)
		if err != nil {
			return nil, err
		}
		return &coreIntAdapter{cr: streams.CoreReader, cw: streams.CoreWriter, write: c.Write, read: c.Read}, nil

	case GolombRice:
		c, err := entropy.NewGolombRice(d.Offset, d.Log2M)
		if err != nil {
			return nil, err
		}
		return &coreIntAdapter{cr: streams.CoreReader, cw: streams.CoreWriter, write: c.Write, read: c.Read}, nil

	case Beta:
		c, err := entropy.NewBeta(d.Offset, d.Width)
		if err != nil {
			return nil, err
		}
		return &coreIntAdapter{cr: streams.CoreReader, cw: streams.CoreWriter, write: c.Write, read: c.Read}, nil

	case Subexponential:
		c, err := entropy.NewSubexponential(d.Offset, d.K)
		if err != nil {
			return nil, err
		}
		return &coreIntAdapter{cr: streams.CoreReader, cw: streams.CoreWriter, write: c.Write, read: c.Read}, nil

	case Gamma:
		c := entropy.NewGamma(d.Offset)
		return &coreIntAdapter{cr: streams.CoreReader, cw: streams.CoreWriter, write: c.Write, read: c.Read}, nil

	case Huffman:
		codec, err := f.huffmanCodec(d.HuffmanParams)
		if err != nil {
			return nil, err
		}
		return &huffmanAdapter{codec: codec, cr: streams.CoreReader, cw: streams.CoreWriter}, nil

	case ByteArrayStop:
		r, hasR := streams.ExternalReaders[d.ContentID]
		w, hasW := streams.ExternalWriters[d.ContentID]
		if !hasR && !hasW {
			return nil, errs.ErrMissingExternalBlock
		}
		return &byteArrayStopAdapter{codec: extcodec.ByteArrayStop{StopByte: d.StopByte}, r: r, w: w}, nil

	case ByteArrayLen:
		if d.Length == nil || d.Data == nil {
			return nil, errs.ErrInvalidParameters
		}
		length, err := f.Build(*d.Length, streams)
		if err != nil {
			return nil, err
		}
		data, err := f.Build(*d.Data, streams)
		if err != nil {
			return nil, err
		}
		return &byteArrayLenAdapter{length: length, data: data}, nil

	default:
		return nil, errs.ErrInvalidParameters
	}
}

func (f *Factory) huffmanCodec(params huffman.Params) (*entropy.HuffmanCodec, error) {
	key := hashHuffmanParams(params)
	if c, ok := f.huffmanCache[key]; ok {
		return c, nil
	}

	c, err := entropy.NewHuffmanCodec(params)
	if err != nil {
		return nil, err
	}

	f.huffmanCache[key] = c
	return c, nil
}

// hashHuffmanParams keys the Factory's codec cache; the descriptor is
// reserialized rather than hashed field-by-field so the key matches
// whatever byte form Descriptor.Serialize would produce for it.
func hashHuffmanParams(params huffman.Params) uint64 {
	var buf bytes.Buffer
	_ = serializeHuffmanParams(&buf, params)
	return xxhash.Sum64(buf.Bytes())
}
