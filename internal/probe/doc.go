// Package probe inspects image headers without decoding pixel data.
//
// Inspect reads only as much of the file as the registered decoder needs to
// report format, dimensions, and color model, so the planner can decide
// whether a file needs resizing before paying for a full decode. Decoders for
// PNG, JPEG, GIF and WebP are registered by this package.
package probe
