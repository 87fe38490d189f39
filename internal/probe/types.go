package probe

import (
	"fmt"
	"image/color"
)

// ColorMode classifies a decoded image's pixel layout. The pipeline only
// cares whether alpha must survive resize and encode; the other modes are
// carried for logging.
type ColorMode int

const (
	ModeUnknown ColorMode = iota
	ModeRGB               // Opaque truecolor (JPEG YCbCr, PNG RGB).
	ModeGray              // 8/16-bit grayscale.
	ModePalette           // Palette-indexed (GIF, PNG-8).
	ModeAlpha             // Carries a per-pixel alpha channel.
	ModeCMYK              // CMYK JPEG.
)

var modeNames = map[ColorMode]string{
	ModeUnknown: "unknown",
	ModeRGB:     "rgb",
	ModeGray:    "gray",
	ModePalette: "palette",
	ModeAlpha:   "rgba",
	ModeCMYK:    "cmyk",
}

func (m ColorMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ModeOf maps a decoder's color model to a ColorMode.
//
// Premultiplied RGBA models map to ModeRGB: the registered decoders only
// produce them for opaque truecolor (PNG color type 2), while images with
// real alpha come back as NRGBA or NYCbCrA.
func ModeOf(m color.Model) ColorMode {
	if _, ok := m.(color.Palette); ok {
		return ModePalette
	}
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return ModeRGB
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel,
		color.AlphaModel, color.Alpha16Model:
		return ModeAlpha
	case color.GrayModel, color.Gray16Model:
		return ModeGray
	case color.CMYKModel:
		return ModeCMYK
	}
	return ModeUnknown
}

// ImageInfo is the header-level description of one image file.
type ImageInfo struct {
	Format string // Decoder name: "png", "jpeg", "gif", "webp".
	Width  int
	Height int
	Mode   ColorMode
}

// Resolution returns "WxH", or "unknown" for empty dimensions.
func (i *ImageInfo) Resolution() string {
	if i.Width <= 0 || i.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}
