package bgzf_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biocodecs/cram/bgzf"
	"github.com/biocodecs/cram/sliceformat"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf)

	start := w.Tell()
	n, err := w.Write([]byte("hello, genome"))
	require.NoError(t, err)
	require.Equal(t, 13, n)
	end := w.Tell()
	require.NoError(t, w.Close())

	r := bgzf.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekVirtual(start))

	got := make([]byte, int(end.Uncompressed())-int(start.Uncompressed()))
	readN, err := r.Read(got)
	require.NoError(t, err)
	require.Equal(t, len(got), readN)
	require.Equal(t, "hello, genome", string(got))
}

func TestWriteSpansMultipleBlocks(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf)

	big := bytes.Repeat([]byte{'x'}, 200000)
	mid := len(big) / 2

	start := w.Tell()
	_, err := w.Write(big[:mid])
	require.NoError(t, err)
	midVO := w.Tell()
	_, err = w.Write(big[mid:])
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.True(t, start.Less(midVO))

	r := bgzf.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekVirtual(start))

	got := make([]byte, len(big))
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	require.Equal(t, big, got)
}

func TestSeekVirtualIntoSecondBlock(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf)

	big := bytes.Repeat([]byte{'a'}, 70000)
	_, err := w.Write(big)
	require.NoError(t, err)
	mid := w.Tell()
	_, err = w.Write([]byte("marker"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := bgzf.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekVirtual(mid))

	got := make([]byte, len("marker"))
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	require.Equal(t, "marker", string(got))
}

func TestWithCompressionOverridesAlgorithm(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf, bgzf.WithCompression(sliceformat.CompressionNone))

	_, err := w.Write([]byte("no compression, please"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := bgzf.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekVirtual(0))

	got := make([]byte, len("no compression, please"))
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	require.Equal(t, "no compression, please", string(got))
}

func TestDefaultCompressionIsZstd(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf)

	payload := bytes.Repeat([]byte("genome"), 1000)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Less(t, buf.Len(), len(payload))

	r := bgzf.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekVirtual(0))

	got := make([]byte, len(payload))
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
