package naming

import (
	"path/filepath"
	"strings"
)

// TargetPath returns path with its extension replaced by outputExt
// (e.g. ".webp"). When the extension already equals outputExt
// case-insensitively, path is returned unchanged.
func TargetPath(path, outputExt string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, outputExt) {
		return path
	}
	return strings.TrimSuffix(path, ext) + outputExt
}
