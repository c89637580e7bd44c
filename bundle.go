// bundle.go re-exports bundle and directory helpers.
package tiny

import (
	"context"

	"github.com/grindlemire/go-tiny/internal/bundle"
	"github.com/grindlemire/go-tiny/internal/fsutil"
)

// Bundle is a directory with an info dictionary.
type Bundle = bundle.Bundle

// BundleOption configures a Bundle.
type BundleOption = bundle.Option

var (
	// ErrNoInfo is returned when a bundle directory has no info file.
	ErrNoInfo = bundle.ErrNoInfo
	// ErrFileAlreadyExists is returned when a file blocks a directory path.
	ErrFileAlreadyExists = fsutil.ErrFileAlreadyExists
)

// OpenBundle returns the bundle rooted at dir.
func OpenBundle(dir string, opts ...BundleOption) (*Bundle, error) {
	return bundle.Open(dir, opts...)
}

// WithoutBundleCache disables key-path memoization.
func WithoutBundleCache() BundleOption {
	return bundle.WithoutCache()
}

// BundleValue looks up keyPath in b's info dictionary as a T.
func BundleValue[T any](ctx context.Context, b *Bundle, keyPath string) (T, bool, error) {
	return bundle.Value[T](ctx, b, keyPath)
}

// DiscoverBundles lists bundle directories under root matching pattern.
func DiscoverBundles(root, pattern string) ([]string, error) {
	return bundle.Discover(root, pattern)
}

// EnsureDirectory makes sure a directory exists at path.
func EnsureDirectory(path string) error {
	return fsutil.EnsureDirectory(path)
}

// DirectoryExists reports whether path is an existing directory.
func DirectoryExists(path string) bool {
	return fsutil.DirectoryExists(path)
}
