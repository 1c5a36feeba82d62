package extcodec

import (
	"io"

	"github.com/biocodecs/cram/varint"
)

// ExternalLong is an LTF8-encoded unsigned 64-bit value against an external
// block.
type ExternalLong struct{}

// Write LTF8-encodes v.
func (ExternalLong) Write(w io.Writer, v uint64) error {
	_, err := varint.WriteLTF8(w, v)

	return err
}

// Read LTF8-decodes a value.
func (ExternalLong) Read(r io.Reader) (uint64, error) {
	return varint.ReadLTF8(r)
}
