package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-tiny/internal/debug"
	"github.com/grindlemire/go-tiny/internal/fsutil"
)

// runMkdir implements the mkdir subcommand. Every path is attempted; the
// command fails if any of them could not be assured.
func runMkdir(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tiny mkdir <path...>")
	}

	var errorCount int
	for _, path := range args {
		if err := fsutil.EnsureDirectory(path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
			continue
		}
		debug.Log("ensured directory %s", path)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d path(s) could not be created", errorCount)
	}
	return nil
}
