// Package naming derives output paths and tracks which candidate owns each
// output path within a run.
//
// TargetPath swaps a file's extension for the output extension, keeping the
// stem's case. A file that already carries the output extension (in any
// case) maps to itself, so it is rewritten in place rather than beside a
// differently-cased twin. TargetClaims rejects a second candidate mapping to
// an already-owned target (e.g. "a.png" next to "a.jpg" or "a.webp").
package naming
