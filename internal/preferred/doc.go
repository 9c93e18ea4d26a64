// Package preferred loads the authoritative preferred-channel registry and
// builds the read-only lookup index the resolver queries.
//
// The index answers two questions: which record owns an exact id, and which
// record owns a strict-normalized name within a country. Both lookups are
// first-write-wins in input order; later duplicates are logged at debug and
// otherwise ignored.
package preferred
