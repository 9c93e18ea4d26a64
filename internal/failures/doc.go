// Package failures defines the error taxonomy shared by the reconciliation
// stages.
//
// Stage code tags errors with one of the exported sentinel markers through
// Wrap so the CLI can classify a failure (structural schema problem, missing
// input, configuration, lock contention) without string matching. Row-level
// anomalies are logged, never returned, and only use ErrRowAnomaly when they
// are surfaced to callers for inspection.
package failures
