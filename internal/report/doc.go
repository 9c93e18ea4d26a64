// Package report models the counts produced by one chanreg run and renders
// them as the YAML run summary requested with --summary.
package report
