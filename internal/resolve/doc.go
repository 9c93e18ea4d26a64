// Package resolve matches baseline channel records against the preferred
// index.
//
// Matching is tiered and stops at the first hit: exact id, then strict name
// within the record's country, then strict name under the null country. A
// record whose country disagrees with the registry can still match through
// the null-country tier when the registry entry has no country.
package resolve
