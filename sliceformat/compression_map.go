package sliceformat

import (
	"io"

	"github.com/biocodecs/cram/varint"
)

// CompressionMap is a slice header's data_series_id -> Descriptor table.
type CompressionMap map[int32]Descriptor

// Serialize writes the map as an ITF8 entry count followed by
// (data_series_id, descriptor) pairs.
func (m CompressionMap) Serialize(w io.Writer) error {
	if _, err := varint.WriteITF8(w, uint32(len(m))); err != nil {
		return wrapIO(err)
	}

	for id, d := range m {
		if _, err := varint.WriteITF8(w, uint32(id)); err != nil {
			return wrapIO(err)
		}
		if err := d.Serialize(w); err != nil {
			return err
		}
	}

	return nil
}

// ParseCompressionMap reads a CompressionMap written by Serialize.
func ParseCompressionMap(r io.Reader) (CompressionMap, error) {
	n, err := varint.ReadITF8(r)
	if err != nil {
		return nil, wrapIO(err)
	}

	m := make(CompressionMap, n)
	for i := uint32(0); i < n; i++ {
		id, err := varint.ReadITF8(r)
		if err != nil {
			return nil, wrapIO(err)
		}
		d, err := ParseDescriptor(r)
		if err != nil {
			return nil, err
		}
		m[int32(id)] = d
	}

	return m, nil
}
