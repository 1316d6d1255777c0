package testutil

import (
	"os"
	"testing"

	"github.com/joshuapare/psdkit/internal/buf"
	"github.com/joshuapare/psdkit/internal/format"
)

// HeaderOpts describes a raw header for HeaderBytes. Zero fields are written
// as zero, so tests can build malformed headers directly.
type HeaderOpts struct {
	Signature   string // defaults to "8BPS" when empty
	Version     uint16
	Reserved    [format.ReservedSize]byte
	NumChannels uint16
	Height      uint32
	Width       uint32
	Depth       uint16
	ColorMode   uint16
}

// HeaderBytes lays out o in the 26-byte header form without any validation.
func HeaderBytes(t *testing.T, o HeaderOpts) []byte {
	t.Helper()

	if o.Signature == "" {
		o.Signature = format.Signature
	}
	out := make([]byte, format.HeaderSize)
	c := buf.NewCursor(out).
		WriteFixedString(o.Signature).
		WriteU16At(o.Version, format.VersionOffset)
	copy(out[format.ReservedOffset:format.ReservedOffset+format.ReservedSize], o.Reserved[:])
	c.WriteU16At(o.NumChannels, format.ChannelsOffset).
		WriteU32(o.Height).
		WriteU32(o.Width).
		WriteU16(o.Depth).
		WriteU16(o.ColorMode)
	if err := c.Err(); err != nil {
		t.Fatalf("HeaderBytes: %v", err)
	}
	return out
}

// ReadFixture resolves a fixture path from the repository root and returns
// its contents. Calls t.Skip if the fixture is not found.
func ReadFixture(t *testing.T, relativePath string) []byte {
	t.Helper()
	data, err := os.ReadFile(ResolveFixture(t, relativePath))
	if err != nil {
		t.Fatalf("read fixture %s: %v", relativePath, err)
	}
	return data
}

// ResolveFixture returns a usable path to a fixture, trying the repository
// root and the usual package depths.
func ResolveFixture(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From package one level deep
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/psd/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}
