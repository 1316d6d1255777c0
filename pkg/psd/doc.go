// Package psd decodes and encodes the File Header Section of Photoshop
// documents: the 26-byte structure that opens every PSD and PSB file and
// declares the image geometry and color encoding.
//
// Every later section of a document depends on the header's channel count,
// depth, dimensions, color mode and variant to pick its own decoding, so
// Header exposes those through accessors and a canonical View.
//
// Decode and Encode are pure: they work on caller-owned byte slices, hold no
// shared state and never block. A Header is mutated only through its
// validating setters; the document variant (standard or large) is fixed
// when the Header is created.
//
// Example:
//
//	h, err := psd.Decode(data)
//	if errors.Is(err, types.ErrInvalidSignature) {
//		// not a Photoshop document
//	}
//	fmt.Println(h.Width(), h.Height(), h.ColorMode())
package psd
