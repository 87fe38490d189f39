package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Discover walks root on fs and collects regular files whose lowercase
// extension is in exts, sorted lexicographically for deterministic
// processing order. Symlinks and other special files are ignored.
//
// Subdirectories that cannot be read are returned in unreadable and the
// walk continues; only a failure on root itself is an error.
func Discover(fs afero.Fs, root string, exts map[string]bool) (files, unreadable []string, err error) {
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			unreadable = append(unreadable, path)
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(files)
	sort.Strings(unreadable)
	return files, unreadable, nil
}
