package extcodec

import (
	"io"

	"github.com/biocodecs/cram/errs"
)

// ExternalByteArray reads and writes a raw byte array against an external
// block. Reading requires an explicit length; there is no self-delimiting
// form.
type ExternalByteArray struct{}

// Write writes all of data.
func (ExternalByteArray) Write(w io.Writer, data []byte) error {
	_, err := w.Write(data)

	return err
}

// ReadLength reads exactly length bytes, failing with
// errs.ErrUnexpectedEOF on a short read.
func (ExternalByteArray) ReadLength(r io.Reader, length int) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	return buf, nil
}
