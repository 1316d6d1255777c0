// Package format houses the byte layout of the Photoshop file header. The
// goal is to keep offsets and sizes in one place, independent from the
// public API, so the decoder and encoder cannot drift apart.
package format

// Signature is the four-byte signature at the start of every PSD/PSB file.
// Layout:
//
//	0x00  '8' 'B' 'P' 'S'
const Signature = "8BPS"

// File header layout (big-endian):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	  0      4    '8' 'B' 'P' 'S'
//	  4      2    Version (1 = PSD, 2 = PSB)
//	  6      6    Reserved, must be zero
//	 12      2    Number of channels, alpha included
//	 14      4    Height in pixels
//	 18      4    Width in pixels
//	 22      2    Depth, bits per channel
//	 24      2    Color mode
const (
	SignatureOffset = 0
	SignatureSize   = 4

	VersionOffset = 4
	VersionSize   = 2

	ReservedOffset = 6
	ReservedSize   = 6

	ChannelsOffset = 12
	ChannelsSize   = 2

	HeightOffset = 14
	HeightSize   = 4

	WidthOffset = 18
	WidthSize   = 4

	DepthOffset = 22
	DepthSize   = 2

	ColorModeOffset = 24
	ColorModeSize   = 2

	// HeaderSize is the total size of the file header section in bytes.
	HeaderSize = ColorModeOffset + ColorModeSize // 26
)

// IsPSD is a fast, zero-alloc check for the signature at off.
func IsPSD(b []byte, off int) bool {
	if off < 0 || len(b) < off+SignatureSize {
		return false
	}
	return string(b[off:off+SignatureSize]) == Signature
}
