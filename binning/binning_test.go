package binning_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biocodecs/cram/binning"
	"github.com/biocodecs/cram/errs"
	"github.com/biocodecs/cram/refdict"
	"github.com/biocodecs/cram/voffset"
)

func TestReg2BinLeafWindow(t *testing.T) {
	require.Equal(t, 4681, binning.Reg2Bin(0, 100))
}

func TestReg2BinCrossesIntoHigherLevel(t *testing.T) {
	// beg=100000, end=200000 straddles a 2^14 and a 2^17 boundary but
	// shares a common 2^20 window, landing in the 73..584 level.
	require.Equal(t, 73, binning.Reg2Bin(100000, 200000))
}

func TestReg2BinsIncludesBin0(t *testing.T) {
	bins := binning.Reg2Bins(0, 100)
	require.Contains(t, bins, 0)
	require.Contains(t, bins, 4681)
}

func dict() refdict.Dictionary {
	return refdict.Dictionary{{Name: "chr1", Length: 1 << 28}}
}

func mustVO(t *testing.T, compressed uint64, uncompressed uint32) voffset.VirtualOffset {
	t.Helper()
	vo, err := voffset.New(compressed, uncompressed)
	require.NoError(t, err)
	return vo
}

func TestAddFeatureAndChunksRoundTrip(t *testing.T) {
	ix := binning.NewIndex(dict())

	begin := mustVO(t, 101, 0)
	end := mustVO(t, 228, 0)
	require.NoError(t, ix.AddFeature(0, 0, 100, begin, end))

	ix = ix.Finish(mustVO(t, 500, 0))

	chunks := ix.Chunks(0, 0, 100)
	require.Len(t, chunks, 1)
	require.Equal(t, begin, chunks[0].Begin)
	require.Equal(t, end, chunks[0].End)
}

func TestAddFeatureCoalescesTouchingChunks(t *testing.T) {
	ix := binning.NewIndex(dict())

	require.NoError(t, ix.AddFeature(0, 0, 50, mustVO(t, 10, 0), mustVO(t, 20, 0)))
	require.NoError(t, ix.AddFeature(0, 50, 100, mustVO(t, 20, 0), mustVO(t, 40, 0)))
	ix = ix.Finish(mustVO(t, 100, 0))

	chunks := ix.Chunks(0, 0, 100)
	require.Len(t, chunks, 1)
	require.Equal(t, mustVO(t, 10, 0), chunks[0].Begin)
	require.Equal(t, mustVO(t, 40, 0), chunks[0].End)
}

func TestAddFeatureRejectsDescendingStart(t *testing.T) {
	ix := binning.NewIndex(dict())
	require.NoError(t, ix.AddFeature(0, 100, 200, mustVO(t, 1, 0), mustVO(t, 2, 0)))

	err := ix.AddFeature(0, 50, 60, mustVO(t, 3, 0), mustVO(t, 4, 0))
	require.ErrorIs(t, err, errs.ErrUnorderedFeature)
}

func TestAddFeatureRejectsInvalidInterval(t *testing.T) {
	ix := binning.NewIndex(dict())
	err := ix.AddFeature(0, 100, 100, mustVO(t, 1, 0), mustVO(t, 2, 0))
	require.ErrorIs(t, err, errs.ErrInvalidInterval)
}

func TestFinishFillsTrailingEmptyReferences(t *testing.T) {
	d := refdict.Dictionary{{Name: "chr1", Length: 100}, {Name: "chr2", Length: 100}}
	ix := binning.NewIndex(d)
	require.NoError(t, ix.AddFeature(0, 0, 10, mustVO(t, 1, 0), mustVO(t, 2, 0)))
	ix = ix.Finish(mustVO(t, 10, 0))

	require.Equal(t, 2, ix.References())
	require.Empty(t, ix.Chunks(1, 0, 10))
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	ix := binning.NewIndex(dict())
	begin := mustVO(t, 101, 0)
	end := mustVO(t, 228, 0)
	require.NoError(t, ix.AddFeature(0, 0, 100, begin, end))
	ix = ix.Finish(mustVO(t, 500, 0))

	var buf bytes.Buffer
	require.NoError(t, ix.Serialize(&buf))

	got, err := binning.Deserialize(&buf, dict())
	require.NoError(t, err)

	chunks := got.Chunks(0, 0, 100)
	require.Len(t, chunks, 1)
	require.Equal(t, begin, chunks[0].Begin)
	require.Equal(t, end, chunks[0].End)

	require.Equal(t, ix.LinearIndex(0), got.LinearIndex(0))
	require.Equal(t, begin, got.LinearIndex(0)[0])
}

func TestMergeCombinesLinearIndexElementwise(t *testing.T) {
	part0 := binning.NewIndex(dict())
	require.NoError(t, part0.AddFeature(0, 0, 50, mustVO(t, 10, 0), mustVO(t, 20, 0)))
	part0 = part0.Finish(mustVO(t, 30, 0))

	part1 := binning.NewIndex(dict())
	require.NoError(t, part1.AddFeature(0, 0, 50, mustVO(t, 5, 0), mustVO(t, 15, 0)))
	require.NoError(t, part1.AddFeature(0, 300000, 300050, mustVO(t, 15, 0), mustVO(t, 25, 0)))
	part1 = part1.Finish(mustVO(t, 30, 0))

	merged := binning.Merge([]*binning.Index{part0, part1}, []uint64{0, 100})

	linear := merged.LinearIndex(0)
	require.Len(t, linear, 19) // part1's window 18 (300000>>14) extends the array past part0's length 1.
	require.Equal(t, mustVO(t, 10, 0), linear[0])      // min(part0's 10, part1's shifted 100+5)
	require.Equal(t, mustVO(t, 100+15, 0), linear[18]) // only part1 touched this window
}

func TestAddFeatureUpdatesLinearIndexWithMinimum(t *testing.T) {
	ix := binning.NewIndex(dict())

	require.NoError(t, ix.AddFeature(0, 1, 100, mustVO(t, 0, 0x1), mustVO(t, 0, 0x2)))
	require.NoError(t, ix.AddFeature(0, 150, 250, mustVO(t, 0, 0x2), mustVO(t, 0, 0x3)))
	ix = ix.Finish(mustVO(t, 0, 0x3))

	linear := ix.LinearIndex(0)
	require.NotEmpty(t, linear)
	require.Equal(t, mustVO(t, 0, 0x1), linear[0])
}

func TestLinearIndexPrunesUnrelatedHigherLevelChunk(t *testing.T) {
	ix := binning.NewIndex(dict())

	// A broad feature lands in a higher-level bin that also covers the
	// window the query below touches, but its chunk ends long before that
	// window's linear-index offset, so it must be pruned.
	require.NoError(t, ix.AddFeature(0, 0, 200000, mustVO(t, 5, 0), mustVO(t, 6, 0)))
	require.NoError(t, ix.AddFeature(0, 300000, 300050, mustVO(t, 50, 0), mustVO(t, 60, 0)))
	ix = ix.Finish(mustVO(t, 100, 0))

	chunks := ix.Chunks(0, 300000, 300050)
	require.Len(t, chunks, 1)
	require.Equal(t, mustVO(t, 50, 0), chunks[0].Begin)
}

func TestMergeShiftsAndCombinesParts(t *testing.T) {
	part0 := binning.NewIndex(dict())
	require.NoError(t, part0.AddFeature(0, 0, 50, mustVO(t, 10, 0), mustVO(t, 20, 0)))
	part0 = part0.Finish(mustVO(t, 30, 0))

	part1 := binning.NewIndex(dict())
	require.NoError(t, part1.AddFeature(0, 0, 50, mustVO(t, 5, 0), mustVO(t, 15, 0)))
	part1 = part1.Finish(mustVO(t, 20, 0))

	merged := binning.Merge([]*binning.Index{part0, part1}, []uint64{0, 100})

	chunks := merged.Chunks(0, 0, 50)
	require.Len(t, chunks, 2)
	require.Equal(t, mustVO(t, 10, 0), chunks[0].Begin)
	require.Equal(t, mustVO(t, 100+5, 0), chunks[1].Begin)
}
