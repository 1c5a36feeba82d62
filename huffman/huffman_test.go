package huffman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biocodecs/cram/huffman"
)

const (
	symA int32 = iota
	symB
	symC
	symD
	symE
)

func TestCanonicalizeMatchesWorkedExample(t *testing.T) {
	// Symbols [A,B,C,D,E] with lengths [2,2,2,3,3]:
	// canonical codewords A=00, B=01, C=10, D=110, E=111.
	p := huffman.Params{
		Symbols: []int32{symA, symB, symC, symD, symE},
		Lengths: []uint8{2, 2, 2, 3, 3},
	}
	codes, err := huffman.Canonicalize(p)
	require.NoError(t, err)

	want := map[int32]huffman.Code{
		symA: {Symbol: symA, Length: 2, Bits: 0b00},
		symB: {Symbol: symB, Length: 2, Bits: 0b01},
		symC: {Symbol: symC, Length: 2, Bits: 0b10},
		symD: {Symbol: symD, Length: 3, Bits: 0b110},
		symE: {Symbol: symE, Length: 3, Bits: 0b111},
	}
	require.Len(t, codes, 5)
	for _, c := range codes {
		exp, ok := want[c.Symbol]
		require.True(t, ok)
		require.Equal(t, exp, c)
	}
}

func TestCanonicalizeSingleSymbolIsZeroBits(t *testing.T) {
	codes, err := huffman.Canonicalize(huffman.Params{
		Symbols: []int32{symA},
		Lengths: []uint8{5},
	})
	require.NoError(t, err)
	require.Len(t, codes, 1)
	require.Equal(t, uint8(0), codes[0].Length)
}

func TestCanonicalizeMismatchedLengthsRejected(t *testing.T) {
	_, err := huffman.Canonicalize(huffman.Params{
		Symbols: []int32{symA, symB},
		Lengths: []uint8{1},
	})
	require.Error(t, err)
}

func TestFromFrequenciesSatisfiesKraftEquality(t *testing.T) {
	freqs := map[int32]int64{symA: 45, symB: 13, symC: 12, symD: 16, symE: 9}
	p, err := huffman.FromFrequencies(freqs)
	require.NoError(t, err)

	codes, err := huffman.Canonicalize(p)
	require.NoError(t, err)

	var sum float64
	for _, c := range codes {
		sum += 1.0 / float64(uint32(1)<<c.Length)
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestFromFrequenciesSingleSymbol(t *testing.T) {
	p, err := huffman.FromFrequencies(map[int32]int64{symA: 100})
	require.NoError(t, err)
	require.Equal(t, []uint8{0}, p.Lengths)
}

func TestIdenticalDescriptorsProduceIdenticalCodes(t *testing.T) {
	p := huffman.Params{
		Symbols: []int32{symA, symB, symC, symD, symE},
		Lengths: []uint8{2, 2, 2, 3, 3},
	}
	c1, err := huffman.Canonicalize(p)
	require.NoError(t, err)
	c2, err := huffman.Canonicalize(p)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestDecodeTableRoundTrip(t *testing.T) {
	p := huffman.Params{
		Symbols: []int32{symA, symB, symC, symD, symE},
		Lengths: []uint8{2, 2, 2, 3, 3},
	}
	codes, err := huffman.Canonicalize(p)
	require.NoError(t, err)

	enc := huffman.NewEncodeTable(codes)
	dec := huffman.NewDecodeTable(codes)

	for _, c := range codes {
		got, ok := dec.Lookup(c.Bits, c.Length)
		require.True(t, ok)
		require.Equal(t, c.Symbol, got)
		require.Equal(t, c, enc[c.Symbol])
	}
}
