package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-tiny/internal/fsutil"
)

var (
	logger    *zap.Logger
	closeSink func()
	mu        sync.Mutex
)

// Config controls where and how debug output is written.
type Config struct {
	Path        string // log file; "debug.log" when empty
	Level       string // "debug", "info", "warn", "error"
	Development bool   // console encoding instead of JSON
}

// Init initializes debug logging to the specified file path at debug level.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	return InitConfig(Config{Path: path, Level: "debug"})
}

// InitConfig initializes debug logging with full control over level and encoding.
// Calling it again replaces the previous logger.
func InitConfig(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(cfg)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(cfg Config) error {
	if cfg.Path == "" {
		cfg.Path = "debug.log"
	}
	if cfg.Level == "" {
		cfg.Level = "debug"
	}

	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := fsutil.EnsureDirectory(dir); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	sink, closeFile, err := zap.Open(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	enc := zapcore.NewJSONEncoder(encoderConfig(cfg.Development))
	if cfg.Development {
		enc = zapcore.NewConsoleEncoder(encoderConfig(true))
	}
	opts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	_ = closeLocked()
	logger = zap.New(zapcore.NewCore(enc, sink, level), opts...)
	closeSink = closeFile
	return nil
}

// closeLocked flushes the logger and releases its file. Caller must hold mu.
func closeLocked() error {
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	logger = nil
	if closeSink != nil {
		closeSink()
		closeSink = nil
	}
	return err
}

// Close flushes the debug logger and closes its file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	return closeLocked()
}

// Enabled reports whether Init has been called.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes a formatted message to the debug log at debug level.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Sugar().Debugf(format, args...)
}

// Logger returns the current logger, or a no-op logger if debug logging is off.
// A logger obtained before Close stops writing once Close releases the file.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		return zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			CallerKey:      "C",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "M",
			StacktraceKey:  "S",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}

	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
