// Package logging builds slog loggers from configuration.
package logging
