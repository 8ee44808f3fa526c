package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	OutputStderr  = "stderr"
	OutputFile    = "file"
	OutputDiscard = "discard"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg, opening cfg.File when the output
// is a file. If the file cannot be opened the logger writes to stderr and the
// result records the fallback.
func NewLoggerWithPath(cfg Config) LogPathResult {
	switch cfg.Output {
	case OutputDiscard:
		return LogPathResult{Logger: zerolog.Nop()}
	case OutputFile:
		if cfg.File == "" {
			return LogPathResult{
				Logger:         NewLogger(os.Stderr, cfg),
				FallbackUsed:   true,
				FallbackReason: "no log file configured",
			}
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return LogPathResult{
				Logger:         NewLogger(os.Stderr, cfg),
				FallbackUsed:   true,
				FallbackReason: err.Error(),
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return LogPathResult{
				Logger:         NewLogger(os.Stderr, cfg),
				FallbackUsed:   true,
				FallbackReason: err.Error(),
			}
		}
		// Files always get JSON lines.
		fileCfg := cfg
		fileCfg.Format = FormatJSON
		return LogPathResult{
			Logger:    NewLogger(f, fileCfg),
			UsingFile: true,
			FilePath:  cfg.File,
			file:      f,
		}
	default:
		return LogPathResult{Logger: NewLogger(os.Stderr, cfg)}
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
