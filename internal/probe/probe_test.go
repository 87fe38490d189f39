package probe

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helper builders ---

func opaqueNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	return img
}

func translucentNRGBA(w, h int) *image.NRGBA {
	img := opaqueNRGBA(w, h)
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

// --- Inspect tests ---

func TestInspect_Formats(t *testing.T) {
	paletted := image.NewPaletted(image.Rect(0, 0, 8, 4), color.Palette{color.Black, color.White})
	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, paletted, nil))

	tests := []struct {
		name   string
		data   []byte
		format string
		w, h   int
		mode   ColorMode
	}{
		{"opaque png", encodePNG(t, opaqueNRGBA(30, 20)), "png", 30, 20, ModeRGB},
		{"alpha png", encodePNG(t, translucentNRGBA(30, 20)), "png", 30, 20, ModeAlpha},
		{"palette png", encodePNG(t, paletted), "png", 8, 4, ModePalette},
		{"gray png", encodePNG(t, image.NewGray(image.Rect(0, 0, 5, 6))), "png", 5, 6, ModeGray},
		{"color jpeg", encodeJPEG(t, opaqueNRGBA(40, 10)), "jpeg", 40, 10, ModeRGB},
		{"gray jpeg", encodeJPEG(t, image.NewGray(image.Rect(0, 0, 9, 9))), "jpeg", 9, 9, ModeGray},
		{"gif", gifBuf.Bytes(), "gif", 8, 4, ModePalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.format, info.Format)
			assert.Equal(t, tt.w, info.Width)
			assert.Equal(t, tt.h, info.Height)
			assert.Equal(t, tt.mode, info.Mode, "mode %s", info.Mode)
		})
	}
}

func TestInspect_Corrupt(t *testing.T) {
	_, err := Inspect(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)

	data := encodePNG(t, opaqueNRGBA(4, 4))
	_, err = Inspect(bytes.NewReader(data[:10]))
	assert.Error(t, err)
}

func TestInspectFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/g/a.png", encodePNG(t, opaqueNRGBA(12, 7)), 0o644))

	info, err := InspectFile(fs, "/g/a.png")
	require.NoError(t, err)
	assert.Equal(t, "12x7", info.Resolution())

	_, err = InspectFile(fs, "/g/missing.png")
	assert.Error(t, err)
}

// --- ColorMode tests ---

func TestModeOf(t *testing.T) {
	tests := []struct {
		model color.Model
		want  ColorMode
	}{
		{color.RGBAModel, ModeRGB},
		{color.RGBA64Model, ModeRGB},
		{color.YCbCrModel, ModeRGB},
		{color.NRGBAModel, ModeAlpha},
		{color.NRGBA64Model, ModeAlpha},
		{color.NYCbCrAModel, ModeAlpha},
		{color.AlphaModel, ModeAlpha},
		{color.GrayModel, ModeGray},
		{color.Gray16Model, ModeGray},
		{color.CMYKModel, ModeCMYK},
		{color.Palette{color.Black}, ModePalette},
		{color.ModelFunc(func(c color.Color) color.Color { return c }), ModeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ModeOf(tt.model))
	}
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "rgba", ModeAlpha.String())
	assert.Equal(t, "palette", ModePalette.String())
	assert.Equal(t, "mode(42)", ColorMode(42).String())
}

func TestResolution_Unknown(t *testing.T) {
	info := &ImageInfo{}
	assert.Equal(t, "unknown", info.Resolution())
}
