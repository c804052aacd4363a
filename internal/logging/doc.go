// Package logging assembles the structured slog loggers used for wordfreq
// diagnostics.
//
// It owns the console and JSON handlers and centralizes level plumbing, so
// every diagnostic line (skipped files, unreadable directories, non-UTF8
// content) has the same shape. Diagnostics always go to a writer separate
// from the report output, stderr by default, and the console handler only
// colorizes level labels when that writer is a terminal. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
