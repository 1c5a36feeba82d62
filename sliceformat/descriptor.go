package sliceformat

import (
	"fmt"
	"io"

	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/huffman"
	"github.com/biocodecs/cram/varint"
)

// Descriptor is a parsed compression-map entry: an EncodingID plus whichever
// of the family-specific parameter fields that family uses. All integers on
// the wire are ITF8/LTF8; offsets are zigzag-encoded since they may be
// negative.
type Descriptor struct {
	ID EncodingID

	Offset int64 // Beta, Gamma, Subexponential, Golomb, GolombRice
	M      int64 // Golomb
	Width  uint8 // Beta
	K      int   // Subexponential
	Log2M  int   // GolombRice

	ContentID int32 // External, ByteArrayStop
	StopByte  byte  // ByteArrayStop

	HuffmanParams huffman.Params // Huffman

	Length *Descriptor // ByteArrayLen inner length codec
	Data   *Descriptor // ByteArrayLen inner data codec
}

func zigzag(v int64) uint64   { return uint64(v<<1) ^ uint64(v>>63) }
func unzigzag(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

// Serialize writes d's encoding id and parameters to w.
func (d Descriptor) Serialize(w io.Writer) error {
	if _, err := varint.WriteITF8(w, uint32(d.ID)); err != nil {
		return fmt.Errorf("cram: sliceformat: write encoding id: %w", errs.ErrIO)
	}

	switch d.ID {
	case Null:
		return nil

	case External:
		_, err := varint.WriteITF8(w, uint32(d.ContentID))
		return wrapIO(err)

	case Golomb, GolombRice, Beta, Subexponential, Gamma:
		if _, err := varint.WriteLTF8(w, zigzag(d.Offset)); err != nil {
			return wrapIO(err)
		}
		switch d.ID {
		case Golomb:
			_, err := varint.WriteLTF8(w, uint64(d.M))
			return wrapIO(err)
		case GolombRice:
			_, err := varint.WriteITF8(w, uint32(d.Log2M))
			return wrapIO(err)
		case Beta:
			_, err := varint.WriteITF8(w, uint32(d.Width))
			return wrapIO(err)
		case Subexponential:
			_, err := varint.WriteITF8(w, uint32(d.K))
			return wrapIO(err)
		}
		return nil

	case Huffman:
		return serializeHuffmanParams(w, d.HuffmanParams)

	case ByteArrayStop:
		if _, err := varint.WriteITF8(w, uint32(d.ContentID)); err != nil {
			return wrapIO(err)
		}
		_, err := w.Write([]byte{d.StopByte})
		return wrapIO(err)

	case ByteArrayLen:
		if d.Length == nil || d.Data == nil {
			return errs.ErrInvalidParameters
		}
		if err := d.Length.Serialize(w); err != nil {
			return err
		}
		return d.Data.Serialize(w)

	default:
		return errs.ErrInvalidParameters
	}
}

// ParseDescriptor reads one descriptor (encoding id and parameters) from r.
func ParseDescriptor(r io.Reader) (Descriptor, error) {
	id, err := varint.ReadITF8(r)
	if err != nil {
		return Descriptor{}, wrapIO(err)
	}
	d := Descriptor{ID: EncodingID(id)}

	switch d.ID {
	case Null:
		return d, nil

	case External:
		cid, err := varint.ReadITF8(r)
		if err != nil {
			return Descriptor{}, wrapIO(err)
		}
		d.ContentID = int32(cid)
		return d, nil

	case Golomb, GolombRice, Beta, Subexponential, Gamma:
		off, err := varint.ReadLTF8(r)
		if err != nil {
			return Descriptor{}, wrapIO(err)
		}
		d.Offset = unzigzag(off)

		switch d.ID {
		case Golomb:
			m, err := varint.ReadLTF8(r)
			if err != nil {
				return Descriptor{}, wrapIO(err)
			}
			d.M = int64(m)
		case GolombRice:
			v, err := varint.ReadITF8(r)
			if err != nil {
				return Descriptor{}, wrapIO(err)
			}
			d.Log2M = int(v)
		case Beta:
			v, err := varint.ReadITF8(r)
			if err != nil {
				return Descriptor{}, wrapIO(err)
			}
			d.Width = uint8(v)
		case Subexponential:
			v, err := varint.ReadITF8(r)
			if err != nil {
				return Descriptor{}, wrapIO(err)
			}
			d.K = int(v)
		}
		return d, nil

	case Huffman:
		params, err := parseHuffmanParams(r)
		if err != nil {
			return Descriptor{}, err
		}
		d.HuffmanParams = params
		return d, nil

	case ByteArrayStop:
		cid, err := varint.ReadITF8(r)
		if err != nil {
			return Descriptor{}, wrapIO(err)
		}
		var stop [1]byte
		if _, err := io.ReadFull(r, stop[:]); err != nil {
			return Descriptor{}, fmt.Errorf("cram: sliceformat: read stop byte: %w", errs.ErrUnexpectedEOF)
		}
		d.ContentID = int32(cid)
		d.StopByte = stop[0]
		return d, nil

	case ByteArrayLen:
		length, err := ParseDescriptor(r)
		if err != nil {
			return Descriptor{}, err
		}
		data, err := ParseDescriptor(r)
		if err != nil {
			return Descriptor{}, err
		}
		d.Length = &length
		d.Data = &data
		return d, nil

	default:
		return Descriptor{}, errs.ErrInvalidParameters
	}
}

func serializeHuffmanParams(w io.Writer, p huffman.Params) error {
	if len(p.Symbols) != len(p.Lengths) {
		return errs.ErrInvalidCodeLengths
	}
	if _, err := varint.WriteITF8(w, uint32(len(p.Symbols))); err != nil {
		return wrapIO(err)
	}
	for i, sym := range p.Symbols {
		if _, err := varint.WriteLTF8(w, zigzag(int64(sym))); err != nil {
			return wrapIO(err)
		}
		if _, err := varint.WriteITF8(w, uint32(p.Lengths[i])); err != nil {
			return wrapIO(err)
		}
	}
	return nil
}

func parseHuffmanParams(r io.Reader) (huffman.Params, error) {
	n, err := varint.ReadITF8(r)
	if err != nil {
		return huffman.Params{}, wrapIO(err)
	}

	p := huffman.Params{
		Symbols: make([]int32, n),
		Lengths: make([]uint8, n),
	}
	for i := range p.Symbols {
		sym, err := varint.ReadLTF8(r)
		if err != nil {
			return huffman.Params{}, wrapIO(err)
		}
		length, err := varint.ReadITF8(r)
		if err != nil {
			return huffman.Params{}, wrapIO(err)
		}
		p.Symbols[i] = int32(unzigzag(sym))
		p.Lengths[i] = uint8(length)
	}
	return p, nil
}

// wrapIO wraps a varint read/write failure with a package prefix, preserving
// errors.Is against whatever sentinel the varint package itself chose
// (errs.ErrMalformedVarint or an io error), rather than flattening every
// failure into errs.ErrIO.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cram: sliceformat: %w", err)
}
