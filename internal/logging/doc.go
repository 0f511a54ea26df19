// Package logging builds the slog loggers used throughout gamekeeper.
// It offers a compact console format for interactive runs and a JSON
// format for captured logs, with output fanned out to stdout/stderr
// and the configured log directory.
package logging
