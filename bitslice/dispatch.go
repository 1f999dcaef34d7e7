package bitslice

// VectorLevel identifies the widest vector unit the host CPU offers.
//
// The plane kernels in this package are portable scalar Go; the compiler is
// free to auto-vectorize them. The level is detected for diagnostics only
// (benchmark output, demo banners) and never selects a different code path.
type VectorLevel int

const (
	// VectorScalar indicates no vector unit was detected.
	VectorScalar VectorLevel = iota

	// VectorAVX2 indicates x86-64 AVX2 (256-bit vectors).
	VectorAVX2

	// VectorAVX512 indicates x86-64 AVX-512 (512-bit vectors).
	VectorAVX512

	// VectorNEON indicates ARM NEON (128-bit vectors).
	VectorNEON
)

// String returns a human-readable name for the vector level.
func (v VectorLevel) String() string {
	switch v {
	case VectorScalar:
		return "scalar"
	case VectorAVX2:
		return "avx2"
	case VectorAVX512:
		return "avx512"
	case VectorNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected vector unit for this host.
// Set by init() in dispatch_*.go files.
var currentLevel VectorLevel

// CurrentLevel returns the vector unit detected on this host.
func CurrentLevel() VectorLevel {
	return currentLevel
}

// CurrentName returns the human-readable name of the detected vector unit,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}
