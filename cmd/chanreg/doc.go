// Package main hosts the chanreg CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, builds the run
// logger, and hands each invocation to internal/workflow. Commands only parse
// flags and render summaries; reconciliation logic lives in the internal
// packages.
package main
