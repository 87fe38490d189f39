package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	_ "golang.org/x/image/webp" // register WebP for imaging.Decode

	"github.com/backmassage/webpsweep/internal/probe"
)

// optimizeMethod is libwebp's slowest, smallest-output compression method.
const optimizeMethod = 6

// WebP decodes PNG/JPEG/GIF/WebP input and encodes lossy WebP output.
type WebP struct {
	autoOrient bool
}

// NewWebP returns the production codec. When autoOrient is set, JPEG EXIF
// orientation is applied to the pixels on decode.
func NewWebP(autoOrient bool) *WebP {
	return &WebP{autoOrient: autoOrient}
}

var _ Codec = (*WebP)(nil)

// Decode parses data fully into memory. The returned Image does not retain
// data. Mode comes from the decoded buffer, so a rotated image reports the
// NRGBA buffer imaging produced.
func (c *WebP) Decode(data []byte) (*Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &Image{Pixels: img, Mode: probe.ModeOf(img.ColorModel())}, nil
}

// Resize resamples with the Lanczos filter. The result is always NRGBA, so
// palette sources come back as ModeAlpha.
func (c *WebP) Resize(img *Image, width, height int) *Image {
	mode := img.Mode
	if mode == probe.ModePalette {
		mode = probe.ModeAlpha
	}
	return &Image{
		Pixels: imaging.Resize(img.Pixels, width, height, imaging.Lanczos),
		Mode:   mode,
	}
}

// ConvertMode converts img to a non-premultiplied RGBA buffer when mode is
// ModeAlpha. Converting to the image's current mode is a no-op.
func (c *WebP) ConvertMode(img *Image, mode probe.ColorMode) (*Image, error) {
	if mode != probe.ModeAlpha {
		if mode == img.Mode {
			return img, nil
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnsupportedMode, img.Mode, mode)
	}
	if _, ok := img.Pixels.(*image.NRGBA); ok {
		return &Image{Pixels: img.Pixels, Mode: probe.ModeAlpha}, nil
	}
	return &Image{
		Pixels: imaging.Clone(img.Pixels),
		Mode:   probe.ModeAlpha,
	}, nil
}

// Encode writes lossy WebP. libwebp imports non-premultiplied RGBA, so any
// other buffer type is copied to NRGBA first.
func (c *WebP) Encode(w io.Writer, img *Image, opts EncodeOptions) error {
	options, err := encoderOptions(opts)
	if err != nil {
		return err
	}
	pix, ok := img.Pixels.(*image.NRGBA)
	if !ok {
		pix = imaging.Clone(img.Pixels)
	}
	if err := webp.Encode(w, pix, options); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// encoderOptions maps EncodeOptions onto libwebp's lossy preset.
func encoderOptions(opts EncodeOptions) (*encoder.Options, error) {
	if opts.Quality < 0 || opts.Quality > 100 {
		return nil, fmt.Errorf("%w: %d", ErrQuality, opts.Quality)
	}
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(opts.Quality))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if opts.Optimize {
		options.Method = optimizeMethod
	}
	return options, nil
}
