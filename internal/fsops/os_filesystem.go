package fsops

import (
	"errors"
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem using real os package calls
type OSFileSystem struct{}

// IsFile reports whether path refers to a regular file, following symlinks.
// A missing path is not an error; any other stat failure is returned as is.
func (OSFileSystem) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}
