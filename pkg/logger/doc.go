// Package logger builds slog loggers for the service.
//
// The factory defaults to JSON at info level for log aggregation; development
// setups switch to text with the LOG_FORMAT/LOG_LEVEL variables. Attr helpers
// keep attribute keys consistent across packages.
package logger
