package testutil

// Fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
// Each fixture holds the file header section of a reference document
// followed by an empty color mode data section.
const (
	FixtureRGBA         = "testdata/fixture/rgba.psd"
	FixtureRGBA16       = "testdata/fixture/rgba-16bit.psd"
	FixtureRGBA32       = "testdata/fixture/rgba-32bit.psd"
	FixtureCMYK         = "testdata/fixture/cmyk.psd"
	FixtureLab          = "testdata/fixture/lab.psd"
	FixtureMultichannel = "testdata/fixture/multichannel.psd"
	FixtureIndexed      = "testdata/fixture/indexed.psd"
	FixtureGrayscale    = "testdata/fixture/grayscale.psd"
	FixtureBitmap       = "testdata/fixture/bitmap.psd"
	FixtureDuotone      = "testdata/fixture/duotone.psd"
	FixturePSB          = "testdata/fixture/rgba.psb"
)
