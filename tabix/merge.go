package tabix

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/biocodecs/cram/binning"
	"github.com/biocodecs/cram/endian"
	"github.com/biocodecs/cram/errs"
)

// Part is one partitioned file's tabix index, ready to merge into a single
// index over the concatenated output.
type Part struct {
	Index            *binning.Index
	Format           FormatDescriptor
	SequenceNames    []string
	CompressedLength int64
}

var magic = [4]byte{'T', 'B', 'I', 0x01}

// zeroBasedFlag records FormatDescriptor.ZeroBased in the on-disk preset
// field, above the preset value itself.
const zeroBasedFlag = 0x10000

// Merge validates that every part shares the same format descriptor and
// sequence-name list, then combines their binning indexes into one index
// over the concatenated compressed file, writing the tabix-laid-out result
// to w, using a prefix-sum virtual-offset shift so each part's chunks land
// at the position its data ends up at in the concatenated file.
func Merge(parts []Part, w io.Writer) error {
	if len(parts) == 0 {
		return fmt.Errorf("cram: tabix: Merge called with no parts: %w", errs.ErrInvalidParameters)
	}

	base := parts[0]
	for _, p := range parts[1:] {
		if p.Format != base.Format || !sameNames(p.SequenceNames, base.SequenceNames) {
			return errs.ErrIncompatibleMerge
		}
	}

	offsets := make([]uint64, len(parts))
	var running uint64
	for i, p := range parts {
		offsets[i] = running
		running += uint64(p.CompressedLength)
	}

	indexes := make([]*binning.Index, len(parts))
	for i, p := range parts {
		indexes[i] = p.Index
	}
	merged := binning.Merge(indexes, offsets)

	return writeTabix(w, base.Format, base.SequenceNames, merged)
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeTabix(w io.Writer, format FormatDescriptor, names []string, ix *binning.Index) error {
	if err := binary.Write(w, endian.GetLittleEndianEngine(), magic); err != nil {
		return fmt.Errorf("cram: tabix: write magic: %w", errs.ErrIO)
	}

	preset := int32(format.Preset)
	if format.ZeroBased {
		preset |= zeroBasedFlag
	}
	header := []int32{
		preset,
		int32(format.NameCol),
		int32(format.BeginCol),
		int32(format.EndCol),
		int32(format.Meta),
		int32(format.SkipLines),
	}
	if err := binary.Write(w, endian.GetLittleEndianEngine(), header); err != nil {
		return fmt.Errorf("cram: tabix: write header: %w", errs.ErrIO)
	}

	nameTable := strings.Join(names, "\x00")
	if len(names) > 0 {
		nameTable += "\x00"
	}
	if err := binary.Write(w, endian.GetLittleEndianEngine(), int32(len(nameTable))); err != nil {
		return fmt.Errorf("cram: tabix: write l_nm: %w", errs.ErrIO)
	}
	if _, err := io.WriteString(w, nameTable); err != nil {
		return fmt.Errorf("cram: tabix: write names: %w", errs.ErrIO)
	}

	return ix.Serialize(w)
}

// ReadFrom reads a tabix-laid-out stream written by Merge (including the
// single-part case), returning its format descriptor, sequence names, and
// binning index.
func ReadFrom(r io.Reader) (FormatDescriptor, []string, *binning.Index, error) {
	var got [4]byte
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &got); err != nil {
		return FormatDescriptor{}, nil, nil, fmt.Errorf("cram: tabix: read magic: %w", errs.ErrIO)
	}
	if got != magic {
		return FormatDescriptor{}, nil, nil, fmt.Errorf("cram: tabix: bad magic %x: %w", got, errs.ErrInvalidHeaderSize)
	}

	var header [6]int32
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &header); err != nil {
		return FormatDescriptor{}, nil, nil, fmt.Errorf("cram: tabix: read header: %w", errs.ErrIO)
	}
	format := FormatDescriptor{
		Preset:    Preset(header[0] &^ zeroBasedFlag),
		ZeroBased: header[0]&zeroBasedFlag != 0,
		NameCol:   int(header[1]),
		BeginCol:  int(header[2]),
		EndCol:    int(header[3]),
		Meta:      byte(header[4]),
		SkipLines: int(header[5]),
	}

	var lnm int32
	if err := binary.Read(r, endian.GetLittleEndianEngine(), &lnm); err != nil {
		return FormatDescriptor{}, nil, nil, fmt.Errorf("cram: tabix: read l_nm: %w", errs.ErrIO)
	}
	raw := make([]byte, lnm)
	if _, err := io.ReadFull(r, raw); err != nil {
		return FormatDescriptor{}, nil, nil, fmt.Errorf("cram: tabix: read names: %w", errs.ErrIO)
	}
	names := strings.Split(strings.TrimSuffix(string(raw), "\x00"), "\x00")
	if len(raw) == 0 {
		names = nil
	}

	ix, err := binning.Deserialize(r, nil)
	if err != nil {
		return FormatDescriptor{}, nil, nil, err
	}

	return format, names, ix, nil
}
