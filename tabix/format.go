// Package tabix implements the tabix on-disk descriptor and the
// partitioned-file index merge algorithm layered on top of binning.Index.
package tabix

// Preset names a well-known tabular genomic format so FormatDescriptor
// fields don't need to be filled in by hand for common cases.
type Preset uint8

const (
	PresetGeneric Preset = iota
	PresetSAM
	PresetVCF
	PresetGFF
	PresetBED
)

// FormatDescriptor records which columns of a tab-delimited file carry the
// reference name and interval, and how to recognize header lines.
type FormatDescriptor struct {
	Preset    Preset
	NameCol   int
	BeginCol  int
	EndCol    int
	Meta      byte
	SkipLines int
	ZeroBased bool
}

// presetDescriptors are the column layouts of the well-known formats.
var presetDescriptors = map[Preset]FormatDescriptor{
	PresetSAM: {Preset: PresetSAM, NameCol: 2, BeginCol: 3, EndCol: 3, Meta: '@', SkipLines: 0, ZeroBased: false},
	PresetVCF: {Preset: PresetVCF, NameCol: 0, BeginCol: 1, EndCol: 1, Meta: '#', SkipLines: 0, ZeroBased: false},
	PresetGFF: {Preset: PresetGFF, NameCol: 0, BeginCol: 3, EndCol: 4, Meta: '#', SkipLines: 0, ZeroBased: false},
	PresetBED: {Preset: PresetBED, NameCol: 0, BeginCol: 1, EndCol: 2, Meta: '#', SkipLines: 0, ZeroBased: true},
}

// NewFormatDescriptor returns the column layout for a well-known preset.
func NewFormatDescriptor(p Preset) FormatDescriptor {
	if d, ok := presetDescriptors[p]; ok {
		return d
	}
	return FormatDescriptor{Preset: PresetGeneric}
}
