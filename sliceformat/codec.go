package sliceformat

import "github.com/biocodecs/cram/errs"

// Codec is the uniform capability a built codec exposes. Families that
// don't support an operation (e.g. ReadBytes on a scalar entropy codec)
// return errs.ErrNotApplicable from it, the same convention
// extcodec.TokenizedName already uses for its unimplemented stub.
type Codec interface {
	ReadInt() (int64, error)
	WriteInt(v int64) error
	ReadBytes(n int) ([]byte, error)
	WriteBytes(b []byte) error
}

// notApplicable is embedded by the adapters in adapters.go (all but
// externalAdapter, which implements all four operations itself) so only the
// operations a family actually supports need to be overridden.
type notApplicable struct{}

func (notApplicable) ReadInt() (int64, error)        { return 0, errs.ErrNotApplicable }
func (notApplicable) WriteInt(int64) error           { return errs.ErrNotApplicable }
func (notApplicable) ReadBytes(int) ([]byte, error)  { return nil, errs.ErrNotApplicable }
func (notApplicable) WriteBytes([]byte) error        { return errs.ErrNotApplicable }
