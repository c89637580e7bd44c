package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Discover returns every directory below root that holds an info file and
// whose slash-separated path relative to root matches pattern. An empty
// pattern matches everything. Results are sorted; root itself is not included.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid bundle pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	root = filepath.Clean(root)

	var (
		mu      sync.Mutex
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil || !ok {
			return err
		}
		if _, ok := findInfo(p); !ok {
			return nil
		}

		mu.Lock()
		matches = append(matches, p)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover bundles in %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}
