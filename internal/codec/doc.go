// Package codec is the image codec capability used by the pipeline: decode
// bytes to a pixel buffer, resize with a Lanczos filter, normalize the color
// mode, and encode lossy WebP at a quality level.
//
// The pipeline depends only on the [Codec] interface. [WebP] is the
// production implementation: decoding and resampling come from
// disintegration/imaging (with golang.org/x/image/webp registered for WebP
// input), encoding from kolesa-team/go-webp (libwebp).
package codec
