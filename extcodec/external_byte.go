// Package extcodec implements CRAM's external codecs: per-data-series
// encoders/decoders that read and write a named byte block (an external
// block identified by a 32-bit content id) rather than the slice's core bit
// stream.
package extcodec

import (
	"io"

	"github.com/biocodecs/cram/errs"
)

// ExternalByte reads and writes a single byte per value.
type ExternalByte struct{}

// Write writes one byte.
func (ExternalByte) Write(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})

	return err
}

// Read reads one byte.
func (ExternalByte) Read(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errs.ErrUnexpectedEOF
	}

	return buf[0], nil
}
