package codec

import (
	"image"
	"io"

	"github.com/backmassage/webpsweep/internal/probe"
)

// Image is a decoded pixel buffer plus the metadata the pipeline needs.
// It is owned by a single file's processing step and never shared.
type Image struct {
	Pixels image.Image
	Mode   probe.ColorMode // Color mode of Pixels.
}

// Width returns the pixel width.
func (i *Image) Width() int { return i.Pixels.Bounds().Dx() }

// Height returns the pixel height.
func (i *Image) Height() int { return i.Pixels.Bounds().Dy() }

// EncodeOptions controls the output encoder.
type EncodeOptions struct {
	Quality  int  // 0-100, lossy fidelity.
	Optimize bool // Spend more CPU for smaller output (libwebp method 6).
}

// Codec is the capability the pipeline calls into for every candidate.
type Codec interface {
	// Decode parses a whole encoded file. Errors wrap ErrDecode.
	Decode(data []byte) (*Image, error)
	// Resize resamples img to exactly width×height.
	Resize(img *Image, width, height int) *Image
	// ConvertMode converts img to mode. Only ModeAlpha is a supported target.
	ConvertMode(img *Image, mode probe.ColorMode) (*Image, error)
	// Encode writes img to w in the output format. Errors wrap ErrEncode or
	// ErrQuality.
	Encode(w io.Writer, img *Image, opts EncodeOptions) error
}
