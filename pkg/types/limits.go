package types

// ============================================================================
// Photoshop File Header Limits
// ============================================================================
// These constants define the ranges the file format documents for the
// header fields. Pixel ceilings differ between the standard (PSD) and large
// document (PSB) variants.

const (
	// MinChannels is the smallest supported channel count.
	MinChannels = 1

	// MaxChannels is the largest supported channel count, alpha channels
	// included.
	MaxChannels = 56

	// MinPixels is the smallest supported width or height.
	MinPixels = 1

	// MaxPixels is the width/height ceiling of a standard document.
	MaxPixels = 30000

	// MaxLargePixels is the width/height ceiling of a large document.
	MaxLargePixels = 300000
)

// pixelCeilings is indexed by Variant.
var pixelCeilings = [...]uint32{
	VariantStandard:      MaxPixels,
	VariantLargeDocument: MaxLargePixels,
}

// PixelCeiling returns the maximum width/height for v. Unknown variants get
// the standard ceiling.
func PixelCeiling(v Variant) uint32 {
	if int(v) >= len(pixelCeilings) {
		return MaxPixels
	}
	return pixelCeilings[v]
}
