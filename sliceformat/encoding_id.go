// Package sliceformat implements the CRAM slice compression map: the
// encoding-id/parameter grammar that names a concrete codec per data
// series, and the factory that binds a parsed descriptor to the slice's
// actual bit/byte streams.
package sliceformat

// EncodingID tags which codec family a compression-map entry selects.
type EncodingID uint8

const (
	Null EncodingID = iota
	External
	Golomb
	Huffman
	ByteArrayLen
	ByteArrayStop
	Beta
	Subexponential
	GolombRice
	Gamma
)

func (e EncodingID) String() string {
	switch e {
	case Null:
		return "Null"
	case External:
		return "External"
	case Golomb:
		return "Golomb"
	case Huffman:
		return "Huffman"
	case ByteArrayLen:
		return "ByteArrayLen"
	case ByteArrayStop:
		return "ByteArrayStop"
	case Beta:
		return "Beta"
	case Subexponential:
		return "Subexponential"
	case GolombRice:
		return "GolombRice"
	case Gamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}
