// Package fsutil checks for and creates directories.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrFileAlreadyExists is returned by EnsureDirectory when something other
// than a directory already occupies the path.
var ErrFileAlreadyExists = errors.New("file already exists")

// FileExists reports whether anything exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirectoryExists reports whether a directory exists at path.
// Symlinks are followed.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDirectory creates the directory at path, including any missing
// parents, unless one is already there.
func EnsureDirectory(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s: %w", path, ErrFileAlreadyExists)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}
