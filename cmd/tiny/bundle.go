package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/grindlemire/go-tiny/internal/bundle"
	"github.com/grindlemire/go-tiny/internal/config"
	"github.com/grindlemire/go-tiny/internal/debug"
)

// runInfo implements the info subcommand. It prints the value at a key path
// in the bundle's info dictionary. An empty key path prints the whole
// dictionary.
func runInfo(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: tiny info <bundle-dir> [key.path]")
	}

	opts := []bundle.Option{bundle.WithLogger(debug.Logger())}
	if !cfg.Bundle.Cache {
		opts = append(opts, bundle.WithoutCache())
	}
	b, err := bundle.Open(args[0], opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(args) == 1 {
		info, err := b.Info(ctx)
		if err != nil {
			return err
		}
		return writeJSON(w, info)
	}

	value, found, err := b.Object(ctx, args[1], cfg.Bundle.Cache)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s: no value at %q", b.InfoPath(), args[1])
	}
	return writeJSON(w, value)
}

// runFind implements the find subcommand. It prints one bundle directory per
// line.
func runFind(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: tiny find <root> [pattern]")
	}

	pattern := cfg.Bundle.Pattern
	if len(args) == 2 {
		pattern = args[1]
	}

	dirs, err := bundle.Discover(args[0], pattern)
	if err != nil {
		return err
	}
	debug.Log("found %d bundle(s) under %s matching %s", len(dirs), args[0], pattern)

	for _, dir := range dirs {
		if _, err := fmt.Fprintln(w, dir); err != nil {
			return err
		}
	}
	return nil
}
