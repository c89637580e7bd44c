// Package main provides the tiny CLI for rectangle geometry and bundle
// inspection.
//
// Usage:
//
//	tiny rect <op> <rect> [args...]    Evaluate a geometry operation
//	tiny mkdir <path...>               Make sure directories exist
//	tiny info <bundle-dir> [key.path]  Print an info dictionary value
//	tiny find <root> [pattern]         List bundle directories
//	tiny help                          Show help
//
// Examples:
//
//	tiny rect center 0,0,10,10 50,50
//	tiny rect scale 0,0,10,10 2 2 5,5
//	tiny info ./Assets.bundle display.name
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/grindlemire/go-tiny/internal/config"
	"github.com/grindlemire/go-tiny/internal/debug"
)

const version = "0.1.0"

const usage = `tiny - rectangle geometry and bundle tooling

Usage:
  tiny <command> [args...]

Commands:
  rect        Evaluate a rectangle operation and print the result as JSON
  mkdir       Make sure directories exist, creating parents as needed
  info        Print a value from a bundle's info dictionary as JSON
  find        List bundle directories below a root
  version     Print version information
  help        Show this help message

Rect operations (rects are x,y,w,h and points are x,y):
  from-points <point> <point>
  anchor      <rect> <anchor>
  set-anchor  <rect> <anchor> <point>
  align       <rect> <mode> <ref> [margin]
  center      <rect> <point>
  contain     <rect> <ref>
  translate   <rect> <dx> <dy>
  polar       <rect> <distance> <angle>
  scale       <rect> <sw> <sh> [pivot]
  inset       <rect> <all | top,right,bottom,left>
  bound       <rect> <container>
  flip        <rect> <container> [horizontal | vertical | both]
  round       <rect>
  equal       <rect> <rect> [tolerance]
  contains    <rect> <point>

Anchors:
  top-left top-right bottom-left bottom-right
  center-left center-right center-top center-bottom center

Align modes:
  inner-left outer-left inner-right outer-right
  inner-top outer-top inner-bottom outer-bottom center

Environment:
  TINY_DEBUG            Write debug logs to this file
  TINY_LOG_LEVEL        Debug log level (default debug)
  TINY_LOG_DEV          Use the console log encoder
  TINY_BUNDLE_CACHE     Memoize info lookups (default true)
  TINY_BUNDLE_PATTERN   Default pattern for find (default **)

Examples:
  tiny rect center 0,0,10,10 50,50
  tiny rect align 0,0,10,10 inner-right 0,0,100,100 5
  tiny rect scale 0,0,10,10 2 2 5,5
  tiny mkdir ./out/cache
  tiny info ./Assets.bundle display.name
  tiny find ./resources '**/*.bundle'
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cfg := config.LoadOrDefault()
	if cfg.DebugEnabled() {
		err := debug.InitConfig(debug.Config{
			Path:        cfg.Debug,
			Level:       cfg.Log.Level,
			Development: cfg.Log.Dev,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log disabled: %v\n", err)
		}
		defer debug.Close()
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "rect":
		err = runRect(os.Stdout, args)
	case "mkdir":
		err = runMkdir(args)
	case "info":
		err = runInfo(os.Stdout, cfg, args)
	case "find":
		err = runFind(os.Stdout, cfg, args)
	case "version":
		fmt.Printf("tiny version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		debug.Close()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
