// Package workflow orchestrates the chanreg batch stages.
//
// A Runner owns one run: it takes the workspace lock, executes the enrich
// and/or merge stage against the configured inputs, writes every artifact
// atomically, and returns a report.Summary with the counts the CLI renders.
// Structural input problems abort a stage before any row is processed; row
// anomalies are only logged and counted.
//
// Stages check the context between phases so an interrupt never leaves a
// half-written output behind.
package workflow
