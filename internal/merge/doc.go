// Package merge collapses aggregated candidates into one winner per identity
// key.
//
// The identity key is the candidate's xmltv id when it has one and its loose
// normalized name otherwise. Candidates without a usable name are set aside
// as unmatched. When two candidates share a key the incumbent keeps its place
// unless the challenger carries an id the incumbent lacks, or comes from the
// primary source when the incumbent does not. Every losing candidate is
// recorded as a collision so the decision can be audited.
package merge
