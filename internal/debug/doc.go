// Package debug provides optional file-based debug logging.
//
// When the REALM_DEBUG environment variable is set to a file path, debug
// records are appended to that file through a log/slog text handler.
// Otherwise, logging is a no-op.
package debug
