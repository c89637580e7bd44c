// Package debug provides optional file-based debug logging backed by zap.
//
// When the TINY_DEBUG environment variable is set to a file path, the tiny
// CLI calls [Init] with it and debug messages are appended to that file.
// Otherwise logging is a no-op and [Logger] hands out a no-op *zap.Logger.
package debug
