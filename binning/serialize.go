package binning

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/biocodecs/cram/endian"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/refdict"
	"github.com/biocodecs/cram/voffset"
)

// magic is the CSIv1 on-disk magic, matching samtools' CSI format: the
// 4-byte tag, a little-endian min_shift/depth/l_aux header, then a
// per-reference list of (bin id, left offset, chunks) records. This package
// writes the uncompressed byte layout only; callers wrap the stream in
// bgzf framing if a block-compressed file is required.
var magic = [4]byte{'C', 'S', 'I', 0x01}

// Serialize writes ix in CSI binary layout to w.
func (ix *Index) Serialize(w io.Writer) error {
	if !ix.finished {
		return fmt.Errorf("cram: binning: Serialize called before Finish: %w", errs.ErrInvalidParameters)
	}

	if err := binary.Write(w, endian.GetLittleEndianEngine(), magic); err != nil {
		return fmt.Errorf("cram: binning: write magic: %w", errs.ErrIO)
	}

	header := []int32{minShift, depth, 0}
	if err := binary.Write(w, endian.GetLittleEndianEngine(), header); err != nil {
		return fmt.Errorf("cram: binning: write header: %w", errs.ErrIO)
	}

	if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(len(ix.refs))); err != nil {
		return fmt.Errorf("cram: binning: write n_ref: %w", errs.ErrIO)
	}

	for _, r := range ix.refs {
		if r == nil {
			if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(0)); err != nil {
				return fmt.Errorf("cram: binning: write n_bin: %w", errs.ErrIO)
			}
			if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(0)); err != nil {
				return fmt.Errorf("cram: binning: write n_intv: %w", errs.ErrIO)
			}
			continue
		}

		bins := r.sortedBins()
		if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(len(bins))); err != nil {
			return fmt.Errorf("cram: binning: write n_bin: %w", errs.ErrIO)
		}

		for _, b := range bins {
			if err := binary.Write(w, endian.GetLittleEndianEngine(), b.id); err != nil {
				return fmt.Errorf("cram: binning: write bin id: %w", errs.ErrIO)
			}
			if err := binary.Write(w, endian.GetLittleEndianEngine(), uint64(b.left)); err != nil {
				return fmt.Errorf("cram: binning: write loffset: %w", errs.ErrIO)
			}
			if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(len(b.chunks))); err != nil {
				return fmt.Errorf("cram: binning: write n_chunk: %w", errs.ErrIO)
			}
			for _, c := range b.chunks {
				if err := binary.Write(w, endian.GetLittleEndianEngine(), [2]uint64{uint64(c.Begin), uint64(c.End)}); err != nil {
					return fmt.Errorf("cram: binning: write chunk: %w", errs.ErrIO)
				}
			}
		}

		if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(len(r.linear))); err != nil {
			return fmt.Errorf("cram: binning: write n_intv: %w", errs.ErrIO)
		}
		for _, vo := range r.linear {
			if err := binary.Write(w, endian.GetLittleEndianEngine(), uint64(vo)); err != nil {
				return fmt.Errorf("cram: binning: write linear offset: %w", errs.ErrIO)
			}
		}
	}

	if err := binary.Write(w, endian.GetLittleEndianEngine(), uint64(ix.eof)); err != nil {
		return fmt.Errorf("cram: binning: write eof: %w", errs.ErrIO)
	}

	return nil
}

// Deserialize reads a CSI-laid-out index from r, bound to dict.
func Deserialize(r io.Reader, dict refdict.Dictionary) (*Index, error) {
	var got [4]byte
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &got); err != nil {
		return nil, fmt.Errorf("cram: binning: read magic: %w", errs.ErrIO)
	}
	if got != magic {
		return nil, fmt.Errorf("cram: binning: bad magic %x: %w", got, errs.ErrInvalidHeaderSize)
	}

	var header [3]int32
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &header); err != nil {
		return nil, fmt.Errorf("cram: binning: read header: %w", errs.ErrIO)
	}
	if header[2] > 0 {
		aux := make([]byte, header[2])
		if _, err := io.ReadFull(r, aux); err != nil {
			return nil, fmt.Errorf("cram: binning: read aux: %w", errs.ErrIO)
		}
	}

	var nRef int32
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &nRef); err != nil {
		return nil, fmt.Errorf("cram: binning: read n_ref: %w", errs.ErrIO)
	}

	ix := &Index{dict: dict, finished: true}
	ix.refs = make([]*refIndex, nRef)

	for i := range ix.refs {
		var nBin int32
		if err := binary.Read(r, endian.GetLittleEndianEngine(), &nBin); err != nil {
			return nil, fmt.Errorf("cram: binning: read n_bin: %w", errs.ErrIO)
		}

		ri := newRefIndex()
		for bi := int32(0); bi < nBin; bi++ {
			var id uint32
			var left uint64
			var nChunk int32
			if err := binary.Read(r, endian.GetLittleEndianEngine(), &id); err != nil {
				return nil, fmt.Errorf("cram: binning: read bin id: %w", errs.ErrIO)
			}
			if err := binary.Read(r, endian.GetLittleEndianEngine(), &left); err != nil {
				return nil, fmt.Errorf("cram: binning: read loffset: %w", errs.ErrIO)
			}
			if err := binary.Read(r, endian.GetLittleEndianEngine(), &nChunk); err != nil {
				return nil, fmt.Errorf("cram: binning: read n_chunk: %w", errs.ErrIO)
			}

			b := &bin{id: id, left: voffset.VirtualOffset(left), hasLeft: true}
			for ci := int32(0); ci < nChunk; ci++ {
				var pair [2]uint64
				if err := binary.Read(r, endian.GetLittleEndianEngine(), &pair); err != nil {
					return nil, fmt.Errorf("cram: binning: read chunk: %w", errs.ErrIO)
				}
				b.chunks = append(b.chunks, Chunk{Begin: voffset.VirtualOffset(pair[0]), End: voffset.VirtualOffset(pair[1])})
			}

			ri.bins[id] = b
			ri.order = append(ri.order, id)
		}

		var nIntv int32
		if err := binary.Read(r, endian.GetLittleEndianEngine(), &nIntv); err != nil {
			return nil, fmt.Errorf("cram: binning: read n_intv: %w", errs.ErrIO)
		}
		if nIntv > 0 {
			ri.linear = make([]voffset.VirtualOffset, nIntv)
			ri.linearSet = make([]bool, nIntv)
			for li := int32(0); li < nIntv; li++ {
				var vo uint64
				if err := binary.Read(r, endian.GetLittleEndianEngine(), &vo); err != nil {
					return nil, fmt.Errorf("cram: binning: read linear offset: %w", errs.ErrIO)
				}
				ri.linear[li] = voffset.VirtualOffset(vo)
				ri.linearSet[li] = vo != 0
			}
		}

		if nBin == 0 && nIntv == 0 {
			continue
		}
		ix.refs[i] = ri
	}

	var eof uint64
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &eof); err != nil {
		return nil, fmt.Errorf("cram: binning: read eof: %w", errs.ErrIO)
	}
	ix.eof = voffset.VirtualOffset(eof)

	return ix, nil
}
