package psd

import (
	"fmt"

	"github.com/joshuapare/psdkit/internal/buf"
	"github.com/joshuapare/psdkit/internal/format"
	"github.com/joshuapare/psdkit/internal/writer"
)

// Sink receives encoded section bytes.
type Sink interface {
	WriteSection(buf []byte) error
}

// Encode returns the canonical 26-byte form of h. The reserved zone is
// always zero. Headers built through this package's constructors and
// setters always encode; Encode does not re-validate.
func Encode(h *Header) []byte {
	out := make([]byte, format.HeaderSize)
	c := buf.NewCursor(out).
		WriteFixedString(format.Signature).
		WriteU16(uint16(h.Version())).
		Skip(format.ReservedSize).
		WriteU16(h.numChannels).
		WriteU32(h.height).
		WriteU32(h.width).
		WriteU16(uint16(h.depth)).
		WriteU16(uint16(h.colorMode))

	if err := c.Err(); err != nil || c.Tell() != format.HeaderSize {
		// Only reachable if the layout constants are inconsistent.
		panic(fmt.Sprintf("psd: header encoded to %d bytes (err=%v), want %d", c.Tell(), err, format.HeaderSize))
	}
	return out
}

// EncodeTo validates h and hands its encoded form to s.
func EncodeTo(s Sink, h *Header) error {
	if err := h.Validate(); err != nil {
		return err
	}
	return s.WriteSection(Encode(h))
}

// WriteFile atomically writes the encoded header to path.
func WriteFile(path string, h *Header) error {
	if err := EncodeTo(&writer.FileWriter{Path: path}, h); err != nil {
		return fmt.Errorf("psd: write %s: %w", path, err)
	}
	log().Debug("header written", "path", path, "header", h.String())
	return nil
}
