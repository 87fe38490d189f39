package pipeline

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// tempPattern names in-flight outputs. The ".tmp" extension keeps them out
// of discovery if a crash leaves one behind.
const tempPattern = ".webpsweep-*.tmp"

// commitFile writes data to target atomically: it writes a temp file in the
// target's directory, syncs and closes it, applies perm, then renames it over
// target. On any failure the temp file is removed and target is untouched.
func commitFile(fs afero.Fs, target string, data []byte, perm os.FileMode) (err error) {
	tmp, err := afero.TempFile(fs, filepath.Dir(target), tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}
		if !closed {
			err = multierr.Append(err, tmp.Close())
		}
		if rmErr := fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = multierr.Append(err, rmErr)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = fs.Chmod(tmpName, perm); err != nil {
		return err
	}
	return fs.Rename(tmpName, target)
}
