package codec

import "errors"

// Sentinel errors. Codec methods wrap the underlying library error with one
// of these so callers can classify failures with errors.Is.
var (
	ErrDecode          = errors.New("decode failed")
	ErrEncode          = errors.New("encode failed")
	ErrQuality         = errors.New("quality out of range 0-100")
	ErrUnsupportedMode = errors.New("unsupported color mode conversion")
)
