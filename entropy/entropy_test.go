package entropy_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biocodecs/cram/bitio"
	"github.com/biocodecs/cram/entropy"
	"github.com/biocodecs/cram/huffman"
)

func TestBetaWorkedExample(t *testing.T) {
	// descriptor {offset: 3, width: 5}; inputs [-3, 0, 1, 28] map to
	// n = v + offset = [0, 3, 4, 31], each written as 5 bits MSB-first:
	// 00000 00011 00100 11111 (20 bits, zero-padded to 24) = 0x00 0xC9 0xF0.
	b, err := entropy.NewBeta(3, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	inputs := []int64{-3, 0, 1, 28}
	for _, v := range inputs {
		require.NoError(t, b.Write(w, v))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x00, 0xC9, 0xF0}, buf.Bytes())

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for _, v := range inputs {
		got, err := b.Read(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBetaRejectsOutOfRange(t *testing.T) {
	b, err := entropy.NewBeta(0, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	require.Error(t, b.Write(w, 8)) // 2^3, out of range
}

func TestGammaRoundTrip(t *testing.T) {
	g := entropy.NewGamma(1) // offset 1 so v=0 maps to n=1

	for v := int64(0); v < 200; v++ {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		require.NoError(t, g.Write(w, v))
		require.NoError(t, w.Flush())

		r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
		got, err := g.Read(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestSubexponentialRoundTrip(t *testing.T) {
	for k := 0; k <= 4; k++ {
		s, err := entropy.NewSubexponential(0, k)
		require.NoError(t, err)

		for v := int64(0); v < 500; v++ {
			var buf bytes.Buffer
			w := bitio.NewWriter(&buf)
			require.NoError(t, s.Write(w, v))
			require.NoError(t, w.Flush())

			r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
			got, err := s.Read(r)
			require.NoError(t, err, "k=%d v=%d", k, v)
			require.Equal(t, v, got, "k=%d v=%d", k, v)
		}
	}
}

func TestSubexponentialRejectsNegativeK(t *testing.T) {
	_, err := entropy.NewSubexponential(0, -1)
	require.Error(t, err)
}

func TestGolombBitLengths(t *testing.T) {
	// m=5, offset=0. Per the §4.3 construction (q ones + 0 terminator,
	// then truncated-binary remainder with ceil=3, threshold=3), the
	// correct bit lengths for [0, 1, 4, 5, 12] are [3, 3, 4, 4, 5].
	g, err := entropy.NewGolomb(0, 5)
	require.NoError(t, err)

	inputs := []int64{0, 1, 4, 5, 12}
	wantLengths := []int64{3, 3, 4, 4, 5}

	for i, v := range inputs {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		require.NoError(t, g.Write(w, v))
		require.NoError(t, w.Flush())
		require.Equal(t, wantLengths[i], w.BitsWritten(), "v=%d", v)

		r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
		got, err := g.Read(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestGolombRejectsSmallM(t *testing.T) {
	_, err := entropy.NewGolomb(0, 1)
	require.Error(t, err)
}

func TestGolombRiceRoundTrip(t *testing.T) {
	gr, err := entropy.NewGolombRice(0, 3)
	require.NoError(t, err)

	for v := int64(0); v < 300; v++ {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		require.NoError(t, gr.Write(w, v))
		require.NoError(t, w.Flush())

		r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
		got, err := gr.Read(r)
		require.NoError(t, err, "v=%d", v)
		require.Equal(t, v, got, "v=%d", v)
	}
}

func TestHuffmanCanonicalEncodeMatchesWorkedExample(t *testing.T) {
	const (
		symA int32 = iota
		symB
		symC
		symD
		symE
	)

	params := huffman.Params{
		Symbols: []int32{symA, symB, symC, symD, symE},
		Lengths: []uint8{2, 2, 2, 3, 3},
	}
	codec, err := entropy.NewHuffmanCodec(params)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	seq := []int32{symA, symB, symA, symC, symD, symE}
	for _, s := range seq {
		require.NoError(t, codec.Write(w, s))
	}
	require.NoError(t, w.Flush())

	// ABACDE -> 00 01 00 10 110 111, 14 bits, zero-padded to 16:
	// 0001001011011100 = 0x12 0xDC.
	require.Equal(t, []byte{0x12, 0xDC}, buf.Bytes())

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for _, want := range seq {
		got, err := codec.Read(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestHuffmanSingleSymbolWritesZeroBits(t *testing.T) {
	codec, err := entropy.NewHuffmanCodec(huffman.Params{
		Symbols: []int32{42},
		Lengths: []uint8{7},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < 10; i++ {
		require.NoError(t, codec.Write(w, 42))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, 0, buf.Len())

	r := bitio.NewReader(bytes.NewReader(nil))
	got, err := codec.Read(r)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestHuffmanUnknownSymbolFails(t *testing.T) {
	codec, err := entropy.NewHuffmanCodec(huffman.Params{
		Symbols: []int32{1, 2},
		Lengths: []uint8{1, 1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	require.Error(t, codec.Write(w, 99))
}
