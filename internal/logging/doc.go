// Package logging builds the zerolog loggers used across userdir.
//
// Loggers are constructed from a Config (level, format, output, file) and
// carried through a context.Context so that commands, the directory client and
// the TUI all log with the same trace ID. When a log file cannot be opened the
// logger falls back to stderr and reports why.
package logging
