// Package pipeline is the batch re-encoder: it discovers candidate images
// under the scan root, runs each one through probe → plan → decode →
// resize → normalize → encode → atomic commit → original cleanup, and folds
// the typed per-file outcomes into a RunStats tally.
//
// Files are processed sequentially in lexical path order. A failure at any
// stage is confined to its file: the original is left byte-for-byte intact
// and no partial target or temp file remains. Only scan-root setup errors
// abort the run.
package pipeline
