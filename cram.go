// Package cram provides a high-performance, space-efficient binary format
// for storing columnar genomic alignment and feature data, with a
// UCSC/samtools-style hierarchical binning index for fast region queries.
//
// CRAM is optimized for scenarios with many data series per slice (position,
// quality, read name, tag values, ...) where each series benefits from a
// different entropy codec, backed by a block-compressed stream that supports
// random access via virtual offsets.
//
// # Core Features
//
//   - A generic entropy codec family (Beta, Gamma, Subexponential, Golomb,
//     Golomb-Rice, canonical Huffman) bound to a shared bit stream
//   - External byte-block codecs for raw, length-prefixed, and
//     stop-terminated byte columns
//   - A compression-map descriptor that rehydrates into bound Codec handles
//     at slice-open time (sliceformat.Factory)
//   - A hierarchical binning index (reg2bin/reg2bins) for O(log n) region
//     queries over virtual-offset chunks
//   - A tabix-compatible on-disk index format, including multi-part merge
//
// # Basic Usage
//
// Writing a block-compressed, indexed stream of features:
//
//	dict := refdict.Dictionary{{Name: "chr1", Length: 248956422}}
//	w := cram.NewIndexedWriter(output, dict)
//
//	w.WriteFeature(0, 1000, 1050, encodedRecordBytes)
//	w.WriteFeature(0, 2000, 2080, encodedRecordBytes2)
//
//	idx, _ := w.Finish()
//
// Producing a tabix-compatible index file from the result:
//
//	format := tabix.NewFormatDescriptor(tabix.PresetBED)
//	cram.WriteTabixIndex(idx, format, []string{"chr1"}, indexOutput)
//
// Querying the index for chunks overlapping a region:
//
//	for _, chunk := range idx.Chunks(0, 1000, 1100) {
//	    r.SeekVirtual(chunk.Begin)
//	    // read and decode records until chunk.End
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// sliceformat, binning, tabix, and bgzf packages, simplifying the most
// common use cases. For advanced usage and fine-grained control over codec
// selection, descriptor construction, or multi-part index merging, use
// those packages directly.
package cram

import (
	"io"

	"github.com/biocodecs/cram/bgzf"
	"github.com/biocodecs/cram/binning"
	"github.com/biocodecs/cram/refdict"
	"github.com/biocodecs/cram/sliceformat"
	"github.com/biocodecs/cram/tabix"
)

// NewFactory returns an empty sliceformat.Factory, ready to build Codecs
// from a slice's parsed compression map against that slice's streams.
func NewFactory() *sliceformat.Factory {
	return sliceformat.NewFactory()
}

// NewIndex returns an empty binning.Index bound to dict, ready to record
// feature intervals as they are written.
func NewIndex(dict refdict.Dictionary) *binning.Index {
	return binning.NewIndex(dict)
}

// IndexedWriter couples a block-compressed output stream with a binning
// index, recording each feature's virtual-offset span as it is appended.
// This is the common case of building an index in lockstep with the data
// it describes, rather than building the two separately and reconciling
// them afterward.
type IndexedWriter struct {
	bg  *bgzf.Writer
	idx *binning.Index
}

// NewIndexedWriter returns an IndexedWriter that writes block-compressed
// output to w and indexes features against dict.
func NewIndexedWriter(w io.Writer, dict refdict.Dictionary) *IndexedWriter {
	return &IndexedWriter{
		bg:  bgzf.NewWriter(w),
		idx: binning.NewIndex(dict),
	}
}

// WriteFeature writes data for the half-open interval [start, end) on
// reference ref and records the interval's virtual-offset span in the
// index. Features for a given reference must be written in non-decreasing
// start order, and references must be written in non-decreasing order;
// violating either returns the same error binning.Index.AddFeature would.
func (iw *IndexedWriter) WriteFeature(ref int, start, end int64, data []byte) error {
	begin := iw.bg.Tell()
	if _, err := iw.bg.Write(data); err != nil {
		return err
	}
	endVO := iw.bg.Tell()

	return iw.idx.AddFeature(ref, start, end, begin, endVO)
}

// Finish flushes the underlying stream and returns the completed index. The
// IndexedWriter must not be used after calling Finish.
func (iw *IndexedWriter) Finish() (*binning.Index, error) {
	if err := iw.bg.Close(); err != nil {
		return nil, err
	}

	return iw.idx.Finish(iw.bg.Tell()), nil
}

// WriteTabixIndex serializes idx as a standalone tabix index file: the
// common case of one slice compiled directly into its own index, without
// concatenating multiple parts. For multi-part files, build a []tabix.Part
// per part and call tabix.Merge directly.
func WriteTabixIndex(idx *binning.Index, format tabix.FormatDescriptor, sequenceNames []string, w io.Writer) error {
	return tabix.Merge([]tabix.Part{{Index: idx, Format: format, SequenceNames: sequenceNames}}, w)
}

// OpenTabixIndex reads a tabix index file previously written by
// WriteTabixIndex or tabix.Merge.
func OpenTabixIndex(r io.Reader) (tabix.FormatDescriptor, []string, *binning.Index, error) {
	return tabix.ReadFrom(r)
}
