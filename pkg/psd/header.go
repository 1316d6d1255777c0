package psd

import (
	"errors"
	"fmt"

	"github.com/joshuapare/psdkit/internal/format"
	"github.com/joshuapare/psdkit/pkg/types"
)

// HeaderSize is the encoded size of the file header section in bytes.
const HeaderSize = format.HeaderSize

// Signature is the magic every header starts with.
const Signature = format.Signature

const (
	defaultNumChannels = 3
	defaultDepth       = types.Depth8
	defaultColorMode   = types.ColorModeRGB
)

// Header is the decoded file header section.
//
// The zero value is not a valid header; use NewHeader, NewDefaultHeader or
// Decode. The variant is chosen once at creation and never changes, so the
// pixel ceiling applied by SetWidth and SetHeight is stable for the life of
// the Header.
type Header struct {
	variant     types.Variant
	numChannels uint16
	height      uint32
	width       uint32
	depth       types.Depth
	colorMode   types.ColorMode
}

// newHeader returns a header of the given variant with the documented
// defaults and 1x1 dimensions.
func newHeader(v types.Variant) *Header {
	return &Header{
		variant:     v,
		numChannels: defaultNumChannels,
		height:      types.MinPixels,
		width:       types.MinPixels,
		depth:       defaultDepth,
		colorMode:   defaultColorMode,
	}
}

// NewDefaultHeader returns a 1x1 standard RGB header with 3 channels at 8 bits.
func NewDefaultHeader() *Header {
	return newHeader(types.VariantStandard)
}

// NewHeader returns an RGB header with 3 channels at 8 bits and the given
// dimensions. When either dimension exceeds the standard ceiling the header
// is created as a large document (version 2).
func NewHeader(width, height int) (*Header, error) {
	v := types.VariantStandard
	if width > types.MaxPixels || height > types.MaxPixels {
		v = types.VariantLargeDocument
	}
	h := newHeader(v)
	if err := h.SetWidth(width); err != nil {
		return nil, err
	}
	if err := h.SetHeight(height); err != nil {
		return nil, err
	}
	return h, nil
}

// ---- Accessors ----

// Signature returns "8BPS".
func (h *Header) Signature() string { return format.Signature }

// Version returns the on-disk version word implied by the variant.
func (h *Header) Version() types.Version { return h.variant.Version() }

// Variant returns the document variant fixed at creation.
func (h *Header) Variant() types.Variant { return h.variant }

// IsLargeDocument reports whether the header describes a PSB document.
func (h *Header) IsLargeDocument() bool { return h.variant == types.VariantLargeDocument }

// NumChannels returns the channel count, alpha channels included.
func (h *Header) NumChannels() int { return int(h.numChannels) }

// Height returns the image height in pixels.
func (h *Header) Height() int { return int(h.height) }

// Width returns the image width in pixels.
func (h *Header) Width() int { return int(h.width) }

// Depth returns the bits per channel.
func (h *Header) Depth() types.Depth { return h.depth }

// ColorMode returns the declared color mode.
func (h *Header) ColorMode() types.ColorMode { return h.colorMode }

// ---- Validated setters ----

// SetNumChannels sets the channel count. Supported range is 1 to 56.
func (h *Header) SetNumChannels(n int) error {
	if n < types.MinChannels || n > types.MaxChannels {
		return types.RangeError("numChannels", int64(n), types.MinChannels, types.MaxChannels)
	}
	h.numChannels = uint16(n)
	return nil
}

// SetHeight sets the height. Supported range is 1 to the variant ceiling.
func (h *Header) SetHeight(px int) error {
	v, err := h.checkPixels("height", px)
	if err != nil {
		return err
	}
	h.height = v
	return nil
}

// SetWidth sets the width. Supported range is 1 to the variant ceiling.
func (h *Header) SetWidth(px int) error {
	v, err := h.checkPixels("width", px)
	if err != nil {
		return err
	}
	h.width = v
	return nil
}

func (h *Header) checkPixels(field string, px int) (uint32, error) {
	ceiling := types.PixelCeiling(h.variant)
	if px < types.MinPixels || int64(px) > int64(ceiling) {
		return 0, types.RangeError(field, int64(px), types.MinPixels, int64(ceiling))
	}
	return uint32(px), nil
}

// SetDepth sets the bits per channel. Any value is stored; use
// Depth.IsCanonical to check for 1, 8, 16 or 32.
func (h *Header) SetDepth(d types.Depth) { h.depth = d }

// SetColorMode sets the color mode. Undocumented codes are stored as-is.
func (h *Header) SetColorMode(m types.ColorMode) { h.colorMode = m }

// Validate re-checks every range invariant. Headers built through the
// constructors and setters always pass; a zero Header does not.
func (h *Header) Validate() error {
	if h == nil {
		return errors.New("psd header: nil header")
	}
	if h.numChannels < types.MinChannels || h.numChannels > types.MaxChannels {
		return types.RangeError("numChannels", int64(h.numChannels), types.MinChannels, types.MaxChannels)
	}
	ceiling := types.PixelCeiling(h.variant)
	if h.height < types.MinPixels || h.height > ceiling {
		return types.RangeError("height", int64(h.height), types.MinPixels, int64(ceiling))
	}
	if h.width < types.MinPixels || h.width > ceiling {
		return types.RangeError("width", int64(h.width), types.MinPixels, int64(ceiling))
	}
	return nil
}

// String renders a one-line summary, e.g. "PSD 800x796 RGB 8-bit 4ch".
func (h *Header) String() string {
	return fmt.Sprintf("%s %dx%d %s %d-bit %dch",
		h.Version(), h.width, h.height, h.colorMode, h.depth, h.numChannels)
}
