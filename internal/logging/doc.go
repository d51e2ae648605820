// Package logging provides structured logging for csvpage.
//
// This package wraps a zap logger with convenience functions. Standard output
// carries the rendered rows, so log output always goes to stderr, and it is
// silent unless a level is requested.
//
// # Log Levels
//
//   - Debug: terminal probe results, page boundaries, input handling
//   - Info: source loaded, session finished
//   - Warn: fallbacks taken (no terminal, unreadable input)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// An empty level falls back to the CSVPAGE_LOG_LEVEL environment variable.
// When neither is set logging is disabled.
//
// # Domain Helpers
//
//	logging.LogProbe("/dev/stdout", "ok", 24, 80)
//	logging.LogLoad("data.csv", 1200, 10)
//	logging.LogPage(0, 23, 1200)
package logging
