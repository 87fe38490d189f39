package probe

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	"github.com/spf13/afero"
	_ "golang.org/x/image/webp" // register WebP
)

// ErrEmptyImage is returned for headers that decode to a zero-area image.
var ErrEmptyImage = errors.New("image has zero width or height")

// Inspect reads an image header from r and returns its format, dimensions,
// and color mode. Pixel data is not decoded.
func Inspect(r io.Reader) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyImage
	}
	return &ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   ModeOf(cfg.ColorModel),
	}, nil
}

// InspectFile opens path on fs, inspects its header, and closes it.
func InspectFile(fs afero.Fs, path string) (*ImageInfo, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Inspect(f)
}
