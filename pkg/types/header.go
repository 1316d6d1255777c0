package types

import (
	"fmt"
	"strings"
)

// Version is the on-disk version word of the file header.
type Version uint16

const (
	VersionPSD Version = 1 // standard document
	VersionPSB Version = 2 // large document
)

func (v Version) String() string {
	switch v {
	case VersionPSD:
		return "PSD"
	case VersionPSB:
		return "PSB"
	default:
		return fmt.Sprintf("Version(%d)", uint16(v))
	}
}

// Variant is the document class selected once when a header is built. It
// decides which pixel ceiling applies to width and height.
type Variant uint8

const (
	VariantStandard Variant = iota
	VariantLargeDocument
)

// VariantOf maps a version word to its variant. Anything but VersionPSB is
// treated as standard.
func VariantOf(v Version) Variant {
	if v == VersionPSB {
		return VariantLargeDocument
	}
	return VariantStandard
}

// Version returns the version word written for the variant.
func (v Variant) Version() Version {
	if v == VariantLargeDocument {
		return VersionPSB
	}
	return VersionPSD
}

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantLargeDocument:
		return "large-document"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ColorMode enumerates the color modes a header can declare.
// (The numbers align with the on-disk values.)
type ColorMode uint16

const (
	ColorModeBitmap       ColorMode = 0
	ColorModeGrayscale    ColorMode = 1
	ColorModeIndexed      ColorMode = 2
	ColorModeRGB          ColorMode = 3
	ColorModeCMYK         ColorMode = 4
	ColorModeMultichannel ColorMode = 7
	ColorModeDuotone      ColorMode = 8
	ColorModeLab          ColorMode = 9
)

var colorModeNames = map[ColorMode]string{
	ColorModeBitmap:       "Bitmap",
	ColorModeGrayscale:    "Grayscale",
	ColorModeIndexed:      "Indexed",
	ColorModeRGB:          "RGB",
	ColorModeCMYK:         "CMYK",
	ColorModeMultichannel: "Multichannel",
	ColorModeDuotone:      "Duotone",
	ColorModeLab:          "Lab",
}

// String returns the documented name, or UNKNOWN_MODE_<n> for codes the
// format does not define.
func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_MODE_%d", uint16(m))
}

// Known reports whether m is one of the eight documented modes.
func (m ColorMode) Known() bool {
	_, ok := colorModeNames[m]
	return ok
}

// ParseColorMode resolves a mode name case-insensitively.
func ParseColorMode(name string) (ColorMode, error) {
	for m, n := range colorModeNames {
		if strings.EqualFold(n, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q", name)
}

// Depth is the number of bits per channel.
type Depth uint16

const (
	Depth1  Depth = 1
	Depth8  Depth = 8
	Depth16 Depth = 16
	Depth32 Depth = 32
)

// IsCanonical reports whether d is one of 1, 8, 16 or 32.
func (d Depth) IsCanonical() bool {
	switch d {
	case Depth1, Depth8, Depth16, Depth32:
		return true
	}
	return false
}
