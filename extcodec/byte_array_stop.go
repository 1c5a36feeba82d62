package extcodec

import (
	"bufio"
	"io"

	"github.com/biocodecs/cram/errs"
)

// ByteArrayStop writes a byte array followed by a terminator byte not
// allowed to appear in the data, and reads everything up to (but not
// including) that terminator.
type ByteArrayStop struct {
	StopByte byte
}

// Write writes data followed by the stop byte.
func (s ByteArrayStop) Write(w io.Writer, data []byte) error {
	for _, b := range data {
		if b == s.StopByte {
			return errs.ErrInvalidParameters
		}
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write([]byte{s.StopByte})

	return err
}

// Read reads bytes until the stop byte (exclusive) or EOF.
func (s ByteArrayStop) Read(r io.Reader) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var out []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errs.ErrIO
		}
		if b == s.StopByte {
			return out, nil
		}
		out = append(out, b)
	}
}
