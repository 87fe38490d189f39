// Package check provides pre-pipeline validation: a codec self-test that
// proves the WebP encoder is linked and working, and the scan-root
// preflight whose failure is fatal to the whole run.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/backmassage/webpsweep/internal/codec"
	"github.com/backmassage/webpsweep/internal/probe"
)

// Sentinel errors returned by CheckRoot when the scan root is unusable.
var (
	ErrRootNotFound   = errors.New("scan root does not exist")
	ErrRootNotDir     = errors.New("scan root is not a directory")
	ErrRootUnreadable = errors.New("scan root is not readable")
)

// Sentinel errors returned by CheckCodec.
var (
	ErrCodecEncode    = errors.New("codec self-test: encode failed")
	ErrCodecRoundTrip = errors.New("codec self-test: decoded output does not match")
)

// CheckRoot verifies that root exists, is a directory, and can be listed.
// It touches nothing.
func CheckRoot(fs afero.Fs, root string) error {
	fi, err := fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	f, err := fs.Open(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}
	return nil
}

// CheckCodec encodes a tiny semi-transparent image and decodes it back,
// confirming dimensions survive. Run once before the pipeline so a broken
// encoder fails fast instead of failing every file.
func CheckCodec(c codec.Codec, quality int) error {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 128})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 64})
	src.SetNRGBA(1, 1, color.NRGBA{A: 0})

	var buf bytes.Buffer
	err := c.Encode(&buf, &codec.Image{Pixels: src, Mode: probe.ModeAlpha}, codec.EncodeOptions{Quality: quality, Optimize: true})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodecEncode, err)
	}

	out, err := c.Decode(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodecRoundTrip, err)
	}
	if out.Width() != 2 || out.Height() != 2 {
		return fmt.Errorf("%w: got %dx%d, want 2x2", ErrCodecRoundTrip, out.Width(), out.Height())
	}
	return nil
}
