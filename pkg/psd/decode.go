package psd

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/psdkit/internal/buf"
	"github.com/joshuapare/psdkit/internal/format"
	"github.com/joshuapare/psdkit/internal/mmfile"
	"github.com/joshuapare/psdkit/pkg/types"
)

// DecodeOptions controls decoding behavior.
type DecodeOptions struct {
	// Offset is the position of the header section within the buffer.
	// Default: 0
	Offset int

	// StrictDepth rejects depths other than 1, 8, 16 and 32 with
	// ErrFieldOutOfRange. Photoshop itself only writes those, but the
	// format does not forbid others, so the default accepts any value.
	// Default: false
	StrictDepth bool

	// StrictColorMode rejects color mode codes outside the eight documented
	// modes with ErrFieldOutOfRange.
	// Default: false
	StrictColorMode bool

	// TextEncoding decodes the signature bytes. Nil means UTF-8.
	// Default: nil
	TextEncoding encoding.Encoding
}

// DefaultDecodeOptions returns the permissive defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// IsPSD reports whether b starts with the file header signature. It only
// sniffs; use Decode to validate the rest of the header.
func IsPSD(b []byte) bool {
	return format.IsPSD(b, format.SignatureOffset)
}

// Decode parses the header section at the start of b.
func Decode(b []byte) (*Header, error) {
	return DecodeWithOptions(b, DefaultDecodeOptions())
}

// DecodeAt parses the header section starting at off within b.
func DecodeAt(b []byte, off int) (*Header, error) {
	opts := DefaultDecodeOptions()
	opts.Offset = off
	return DecodeWithOptions(b, opts)
}

// DecodeWithOptions parses the header section at opts.Offset within b.
//
// Fields are read in on-disk order. The signature is checked before anything
// else is read; a mismatch returns ErrInvalidSignature. The version selects
// the variant, then channel count, height and width go through the Header's
// validating setters, so a corrupt value returns ErrFieldOutOfRange. A
// buffer too short for any field returns ErrBufferUnderrun. No partial
// Header is returned on error.
func DecodeWithOptions(b []byte, opts DecodeOptions) (*Header, error) {
	off := opts.Offset
	c := buf.NewCursor(b).WithEncoding(opts.TextEncoding)

	sig, err := c.ReadFixedStringAt(format.SignatureSize, off+format.SignatureOffset)
	if err != nil {
		return nil, fmt.Errorf("psd header: %w", err)
	}
	if sig != format.Signature {
		return nil, fmt.Errorf("psd header: signature %q: %w", sig, types.ErrInvalidSignature)
	}

	version, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("psd header: version: %w", err)
	}

	// Reserved bytes are never inspected.
	c.Skip(format.ReservedSize)

	// The channel count sits at a fixed position after the reserved zone.
	channels, err := c.ReadU16At(off + format.ChannelsOffset)
	if err != nil {
		return nil, fmt.Errorf("psd header: channels: %w", err)
	}
	height, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("psd header: height: %w", err)
	}
	width, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("psd header: width: %w", err)
	}
	depth, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("psd header: depth: %w", err)
	}
	mode, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("psd header: color mode: %w", err)
	}

	v := types.Version(version)
	if v != types.VersionPSD && v != types.VersionPSB {
		return nil, fmt.Errorf("psd header: %w",
			types.RangeError("version", int64(version), int64(types.VersionPSD), int64(types.VersionPSB)))
	}

	h := newHeader(types.VariantOf(v))
	if err := h.SetNumChannels(int(channels)); err != nil {
		return nil, fmt.Errorf("psd header: %w", err)
	}
	if err := h.SetHeight(int(height)); err != nil {
		return nil, fmt.Errorf("psd header: %w", err)
	}
	if err := h.SetWidth(int(width)); err != nil {
		return nil, fmt.Errorf("psd header: %w", err)
	}

	d := types.Depth(depth)
	if opts.StrictDepth && !d.IsCanonical() {
		return nil, fmt.Errorf("psd header: %w", &types.Error{
			Kind: types.ErrKindRange,
			Msg:  fmt.Sprintf("depth %d: supported values are 1, 8, 16 and 32", depth),
			Err:  types.ErrFieldOutOfRange,
		})
	}
	h.SetDepth(d)

	m := types.ColorMode(mode)
	if opts.StrictColorMode && !m.Known() {
		return nil, fmt.Errorf("psd header: %w", &types.Error{
			Kind: types.ErrKindRange,
			Msg:  fmt.Sprintf("color mode %d: not a documented mode", mode),
			Err:  types.ErrFieldOutOfRange,
		})
	}
	h.SetColorMode(m)

	return h, nil
}

// DecodeFile maps the document at path and decodes its header section.
func DecodeFile(path string) (*Header, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("psd: open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	log().Debug("decoding header", "path", path, "size", len(data))

	h, err := Decode(data)
	if err != nil {
		log().Debug("header rejected", "path", path, "error", err)
		return nil, err
	}
	log().Debug("header decoded",
		"path", path,
		"variant", h.Variant().String(),
		"width", h.Width(),
		"height", h.Height(),
		"channels", h.NumChannels(),
		"colorMode", h.ColorMode().String(),
	)
	return h, nil
}
