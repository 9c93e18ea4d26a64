// Package logging assembles the structured slog loggers used by chanreg.
//
// A run logs to two sinks at once: a console sink at the configured level
// (pretty or JSON) and a size-rotated JSON file sink that always records
// debug detail. Every record carries the run id so one run can be isolated
// in the file. Components derive tagged loggers through NewComponentLogger;
// tests use NewNop.
package logging
