// Package errs defines the sentinel error taxonomy shared by every package in
// the cram module. Call sites wrap a sentinel with context using fmt.Errorf's
// %w verb so callers can still errors.Is against the taxonomy.
package errs

import "errors"

// Bit and byte stream errors.
var (
	// ErrUnexpectedEOF is returned when a bit or byte stream is exhausted
	// mid-codeword.
	ErrUnexpectedEOF = errors.New("cram: unexpected end of stream")

	// ErrMalformedVarint is returned when an ITF8/LTF8 prefix byte claims
	// more continuation bytes than remain in the stream, or otherwise
	// cannot be decoded.
	ErrMalformedVarint = errors.New("cram: malformed varint")
)

// Codec parameter and alphabet errors.
var (
	// ErrInvalidParameters is returned for invalid codec parameters, e.g.
	// Golomb m < 2, Subexponential k < 0, or an unknown encoding id.
	ErrInvalidParameters = errors.New("cram: invalid codec parameters")

	// ErrSymbolNotInAlphabet is returned when a Huffman writer is asked to
	// encode a symbol absent from its canonical alphabet.
	ErrSymbolNotInAlphabet = errors.New("cram: symbol not in huffman alphabet")

	// ErrInvalidCodeLengths is returned when a set of Huffman code lengths
	// violates the Kraft inequality.
	ErrInvalidCodeLengths = errors.New("cram: invalid huffman code lengths")

	// ErrCodewordTooLong is returned when a codec would need to emit a
	// codeword wider than 31 bits.
	ErrCodewordTooLong = errors.New("cram: codeword exceeds 31 bits")

	// ErrNotApplicable is returned by codec operations that a given codec
	// family does not support (e.g. read(length) on a scalar codec).
	ErrNotApplicable = errors.New("cram: operation not applicable to this codec")
)

// Slice / block resolution errors.
var (
	// ErrMissingExternalBlock is returned when a compression map entry
	// references a contentId absent from the bound slice streams.
	ErrMissingExternalBlock = errors.New("cram: missing external block")

	// ErrConcurrentIterator is returned when a second iterator token is
	// requested from a decoder that already has one outstanding.
	ErrConcurrentIterator = errors.New("cram: concurrent iterator already active")
)

// Index builder errors.
var (
	// ErrUnorderedFeature is returned when features are added to an index
	// builder out of non-decreasing (reference, start) order.
	ErrUnorderedFeature = errors.New("cram: features must be added in order")

	// ErrInvalidInterval is returned when end < start for a feature
	// interval.
	ErrInvalidInterval = errors.New("cram: invalid interval")

	// ErrVirtualOffsetOverflow is returned when a virtual offset's
	// uncompressed component is >= 65536.
	ErrVirtualOffsetOverflow = errors.New("cram: virtual offset uncompressed component out of range")
)

// Tabix merge errors.
var (
	// ErrIncompatibleMerge is returned when tabix parts differ in format
	// descriptor or sequence name list.
	ErrIncompatibleMerge = errors.New("cram: incompatible tabix parts")
)

// Generic stream / header errors for fixed-size binary structures.
var (
	// ErrInvalidHeaderSize is returned when a fixed-size binary header is
	// shorter than required.
	ErrInvalidHeaderSize = errors.New("cram: invalid header size")

	// ErrInvalidIndexEntrySize is returned when a fixed-size index entry
	// is shorter than required.
	ErrInvalidIndexEntrySize = errors.New("cram: invalid index entry size")

	// ErrIO wraps underlying stream I/O failures so callers can
	// distinguish them from format errors.
	ErrIO = errors.New("cram: I/O error")
)
