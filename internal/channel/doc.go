// Package channel holds the channel metadata model shared by the enrichment
// and merge stages: immutable records, normalized lookup keys, enrichment
// results, and merge audit entries.
package channel
