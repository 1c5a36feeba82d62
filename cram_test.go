package cram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biocodecs/cram/refdict"
	"github.com/biocodecs/cram/tabix"
)

func TestIndexedWriterRecordsFeatures(t *testing.T) {
	dict := refdict.Dictionary{{Name: "chr1", Length: 1000000}}

	var buf bytes.Buffer
	w := NewIndexedWriter(&buf, dict)

	require.NoError(t, w.WriteFeature(0, 100, 200, []byte("record-one")))
	require.NoError(t, w.WriteFeature(0, 300, 320, []byte("record-two")))

	idx, err := w.Finish()
	require.NoError(t, err)
	require.NotNil(t, idx)
	require.Equal(t, 1, idx.References())

	chunks := idx.Chunks(0, 100, 200)
	require.NotEmpty(t, chunks)
}

func TestIndexedWriterRejectsUnorderedFeature(t *testing.T) {
	dict := refdict.Dictionary{{Name: "chr1", Length: 1000000}}

	var buf bytes.Buffer
	w := NewIndexedWriter(&buf, dict)

	require.NoError(t, w.WriteFeature(0, 300, 320, []byte("record-one")))
	err := w.WriteFeature(0, 100, 200, []byte("record-two"))
	require.Error(t, err)
}

func TestWriteAndOpenTabixIndex(t *testing.T) {
	dict := refdict.Dictionary{{Name: "chr1", Length: 1000000}}

	var stream bytes.Buffer
	w := NewIndexedWriter(&stream, dict)
	require.NoError(t, w.WriteFeature(0, 100, 200, []byte("record-one")))

	idx, err := w.Finish()
	require.NoError(t, err)

	format := tabix.NewFormatDescriptor(tabix.PresetBED)

	var indexBuf bytes.Buffer
	require.NoError(t, WriteTabixIndex(idx, format, []string{"chr1"}, &indexBuf))

	gotFormat, names, gotIdx, err := OpenTabixIndex(&indexBuf)
	require.NoError(t, err)
	require.Equal(t, format, gotFormat)
	require.Equal(t, []string{"chr1"}, names)
	require.Equal(t, 1, gotIdx.References())
}

func TestNewFactoryAndIndexAreUsable(t *testing.T) {
	f := NewFactory()
	require.NotNil(t, f)

	dict := refdict.Dictionary{{Name: "chrX", Length: 500}}
	idx := NewIndex(dict)
	require.NotNil(t, idx)
	require.Equal(t, 0, idx.References())
}
