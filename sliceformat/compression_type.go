package sliceformat

// CompressionType names the general-purpose byte-stream compressor applied
// to a block after its codec has produced raw bytes (e.g. an external
// block, or a serialized binning/tabix index). It is independent of
// EncodingID, which names the per-data-series bit/byte codec itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
