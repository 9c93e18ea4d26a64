// Package normalize reduces channel display names to comparison keys.
//
// Two variants exist and are not interchangeable. Loose keys the merge stage:
// it drops provider, quality, and timeshift tokens and keeps word boundaries
// as single spaces. Strict keys the preferred index: it drops quality and
// numeric timeshift tokens and squeezes everything else to bare
// alphanumerics. Both are pure, idempotent, and never fail.
package normalize
