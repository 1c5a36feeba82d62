package huffman

// EncodeTable maps a symbol to its canonical codeword for writing.
type EncodeTable map[int32]Code

// NewEncodeTable builds a lookup from symbol to Code.
func NewEncodeTable(codes []Code) EncodeTable {
	t := make(EncodeTable, len(codes))
	for _, c := range codes {
		t[c.Symbol] = c
	}

	return t
}

// DecodeTable supports progressive bit-by-bit decoding: accumulate one bit
// at a time and probe Lookup after each one; a hit at the codeword's exact
// length returns the symbol.
//
// DecodeTable keeps one small map per codeword length, keyed by codeword
// value; it is not a flat array indexed by codeword value. The maps are
// adequate for CRAM's alphabets (at most a few hundred symbols).
type DecodeTable struct {
	byLength map[uint8]map[uint32]int32
	maxLen   uint8
}

// NewDecodeTable builds a DecodeTable from a canonical code table.
func NewDecodeTable(codes []Code) *DecodeTable {
	dt := &DecodeTable{byLength: make(map[uint8]map[uint32]int32)}
	for _, c := range codes {
		m, ok := dt.byLength[c.Length]
		if !ok {
			m = make(map[uint32]int32)
			dt.byLength[c.Length] = m
		}
		m[c.Bits] = c.Symbol
		if c.Length > dt.maxLen {
			dt.maxLen = c.Length
		}
	}

	return dt
}

// MaxLength returns the longest codeword length in the table.
func (dt *DecodeTable) MaxLength() uint8 { return dt.maxLen }

// Lookup returns the symbol encoded by bits at the given codeword length, if
// any codeword of that exact length matches.
func (dt *DecodeTable) Lookup(bits uint32, length uint8) (int32, bool) {
	m, ok := dt.byLength[length]
	if !ok {
		return 0, false
	}
	s, ok := m[bits]

	return s, ok
}
