// Package tabular reads and writes the flat CSV files every stage exchanges.
//
// Reading strips a UTF-8 byte order mark, trims header names and cells, and
// tolerates ragged rows. Columns are looked up by logical field through a
// Schema of aliases so the rest of the system never touches raw header names.
// Writing always goes through an atomic file replacement.
package tabular
