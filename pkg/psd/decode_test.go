package psd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/psdkit/internal/testutil"
	"github.com/joshuapare/psdkit/pkg/types"
)

func TestDecodeFixtures(t *testing.T) {
	tests := []struct {
		fixture string
		large   bool
		want    View
	}{
		{testutil.FixtureRGBA, false, View{"8BPS", 1, 4, 796, 800, 8, "RGB"}},
		{testutil.FixtureRGBA16, false, View{"8BPS", 1, 4, 796, 800, 16, "RGB"}},
		{testutil.FixtureRGBA32, false, View{"8BPS", 1, 4, 796, 800, 32, "RGB"}},
		{testutil.FixtureCMYK, false, View{"8BPS", 1, 5, 796, 800, 8, "CMYK"}},
		{testutil.FixtureLab, false, View{"8BPS", 1, 4, 796, 800, 8, "Lab"}},
		{testutil.FixtureMultichannel, false, View{"8BPS", 1, 3, 796, 800, 8, "Multichannel"}},
		{testutil.FixtureIndexed, false, View{"8BPS", 1, 1, 796, 800, 8, "Indexed"}},
		{testutil.FixtureGrayscale, false, View{"8BPS", 1, 2, 796, 800, 8, "Grayscale"}},
		{testutil.FixtureBitmap, false, View{"8BPS", 1, 1, 796, 800, 1, "Bitmap"}},
		{testutil.FixtureDuotone, false, View{"8BPS", 1, 1, 796, 800, 8, "Duotone"}},
		{testutil.FixturePSB, true, View{"8BPS", 2, 4, 796, 800, 8, "RGB"}},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			data := testutil.ReadFixture(t, tt.fixture)
			h, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.large, h.IsLargeDocument())
			assert.Equal(t, tt.want, h.View())
		})
	}
}

func TestDecodeColorModeNames(t *testing.T) {
	names := map[uint16]string{
		0: "Bitmap",
		1: "Grayscale",
		2: "Indexed",
		3: "RGB",
		4: "CMYK",
		7: "Multichannel",
		8: "Duotone",
		9: "Lab",
	}
	for code, name := range names {
		raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
			Version: 1, NumChannels: 3, Height: 10, Width: 10, Depth: 8, ColorMode: code,
		})
		h, err := DecodeWithOptions(raw, DecodeOptions{StrictColorMode: true})
		require.NoError(t, err, name)
		assert.Equal(t, name, h.View().ColorMode)
	}
}

func TestDecodeAtOffset(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 1, NumChannels: 4, Height: 796, Width: 800, Depth: 8, ColorMode: 3,
	})
	padded := append([]byte{0xAA, 0xBB, 0xCC}, raw...)

	h, err := DecodeAt(padded, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, h.NumChannels())
	assert.Equal(t, 796, h.Height())
	assert.Equal(t, 800, h.Width())

	_, err = Decode(padded)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestDecodeIgnoresReserved(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version:     1,
		Reserved:    [6]byte{1, 2, 3, 4, 5, 6},
		NumChannels: 3, Height: 1, Width: 1, Depth: 8, ColorMode: 3,
	})
	h, err := Decode(raw)
	require.NoError(t, err)

	// Re-encoding normalises the reserved zone.
	assert.Equal(t, make([]byte, 6), Encode(h)[6:12])
}

func TestDecodeInvalidSignature(t *testing.T) {
	for _, sig := range []string{"8BPX", "regf", "\x00\x00\x00\x00", "8bps"} {
		raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
			Signature: sig, Version: 1, NumChannels: 3, Height: 1, Width: 1, Depth: 8, ColorMode: 3,
		})
		_, err := Decode(raw)
		require.ErrorIs(t, err, types.ErrInvalidSignature, "signature %q", sig)
		require.NotErrorIs(t, err, types.ErrFieldOutOfRange)
		kind, ok := types.KindOf(err)
		require.True(t, ok)
		require.Equal(t, types.ErrKindFormat, kind)
	}
}

func TestDecodeInvalidSignatureStopsReading(t *testing.T) {
	// Only the signature is present; a decoder that kept reading would
	// report an underrun instead.
	_, err := Decode([]byte("GIF8"))
	require.ErrorIs(t, err, types.ErrInvalidSignature)
	require.NotErrorIs(t, err, types.ErrBufferUnderrun)
}

func TestDecodeBufferUnderrun(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 1, NumChannels: 3, Height: 1, Width: 1, Depth: 8, ColorMode: 3,
	})

	for _, n := range []int{0, 3, 5, 12, 13, 17, 21, 23, 25} {
		_, err := Decode(raw[:n])
		require.ErrorIs(t, err, types.ErrBufferUnderrun, "length %d", n)
	}

	_, err := DecodeAt(raw, 1)
	require.Error(t, err)

	_, err = DecodeAt(raw, -1)
	require.ErrorIs(t, err, types.ErrBufferUnderrun)

	_, err = DecodeAt(raw, len(raw))
	require.ErrorIs(t, err, types.ErrBufferUnderrun)
}

func TestDecodeFieldOutOfRange(t *testing.T) {
	base := testutil.HeaderOpts{Version: 1, NumChannels: 3, Height: 100, Width: 100, Depth: 8, ColorMode: 3}

	tests := []struct {
		name   string
		mutate func(o *testutil.HeaderOpts)
	}{
		{"zero channels", func(o *testutil.HeaderOpts) { o.NumChannels = 0 }},
		{"57 channels", func(o *testutil.HeaderOpts) { o.NumChannels = 57 }},
		{"zero height", func(o *testutil.HeaderOpts) { o.Height = 0 }},
		{"zero width", func(o *testutil.HeaderOpts) { o.Width = 0 }},
		{"standard height above max", func(o *testutil.HeaderOpts) { o.Height = 30001 }},
		{"standard width above max", func(o *testutil.HeaderOpts) { o.Width = 30001 }},
		{"large height above max", func(o *testutil.HeaderOpts) { o.Version = 2; o.Height = 300001 }},
		{"large width above max", func(o *testutil.HeaderOpts) { o.Version = 2; o.Width = 300001 }},
		{"huge width", func(o *testutil.HeaderOpts) { o.Width = 0xFFFFFFFF }},
		{"version 0", func(o *testutil.HeaderOpts) { o.Version = 0 }},
		{"version 3", func(o *testutil.HeaderOpts) { o.Version = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.mutate(&o)
			_, err := Decode(testutil.HeaderBytes(t, o))
			require.ErrorIs(t, err, types.ErrFieldOutOfRange)
			require.NotErrorIs(t, err, types.ErrInvalidSignature)
		})
	}
}

func TestDecodeVariantFromVersion(t *testing.T) {
	// Small dimensions with version 2 are still a large document.
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 2, NumChannels: 3, Height: 10, Width: 10, Depth: 8, ColorMode: 3,
	})
	h, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, h.IsLargeDocument())
	require.NoError(t, h.SetWidth(types.MaxLargePixels))

	raw = testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 2, NumChannels: 3, Height: 300000, Width: 300000, Depth: 8, ColorMode: 3,
	})
	h, err = Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, 300000, h.Width())
	assert.Equal(t, 300000, h.Height())
}

func TestDecodeDepthPolicy(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 1, NumChannels: 3, Height: 10, Width: 10, Depth: 24, ColorMode: 3,
	})

	h, err := Decode(raw)
	require.NoError(t, err, "depth is not validated by default")
	assert.Equal(t, types.Depth(24), h.Depth())

	_, err = DecodeWithOptions(raw, DecodeOptions{StrictDepth: true})
	require.ErrorIs(t, err, types.ErrFieldOutOfRange)

	for _, d := range []uint16{1, 8, 16, 32} {
		ok := testutil.HeaderBytes(t, testutil.HeaderOpts{
			Version: 1, NumChannels: 3, Height: 10, Width: 10, Depth: d, ColorMode: 3,
		})
		_, err := DecodeWithOptions(ok, DecodeOptions{StrictDepth: true})
		require.NoError(t, err, "depth %d", d)
	}
}

func TestDecodeColorModePolicy(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 1, NumChannels: 3, Height: 10, Width: 10, Depth: 8, ColorMode: 5,
	})

	h, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN_MODE_5", h.View().ColorMode)

	_, err = DecodeWithOptions(raw, DecodeOptions{StrictColorMode: true})
	require.ErrorIs(t, err, types.ErrFieldOutOfRange)
}

func TestDecodeTextEncoding(t *testing.T) {
	raw := testutil.HeaderBytes(t, testutil.HeaderOpts{
		Version: 1, NumChannels: 3, Height: 10, Width: 10, Depth: 8, ColorMode: 3,
	})
	h, err := DecodeWithOptions(raw, DecodeOptions{TextEncoding: charmap.Macintosh})
	require.NoError(t, err)
	assert.Equal(t, "8BPS", h.Signature())

	raw[0] = 0xA5 // bullet in Mac Roman, invalid UTF-8
	_, err = DecodeWithOptions(raw, DecodeOptions{TextEncoding: charmap.Macintosh})
	require.ErrorIs(t, err, types.ErrInvalidSignature)
	_, err = Decode(raw)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestIsPSD(t *testing.T) {
	assert.True(t, IsPSD(testutil.ReadFixture(t, testutil.FixtureRGBA)))
	assert.True(t, IsPSD(testutil.ReadFixture(t, testutil.FixturePSB)))
	assert.False(t, IsPSD([]byte("\x89PNG\r\n\x1a\n")))
	assert.False(t, IsPSD([]byte("8B")))
	assert.False(t, IsPSD(nil))
}
