// Package aggregate flattens the candidate sources into one ordered stream of
// channel records.
//
// Each source arrives as a table with its own header conventions; a fixed
// alias schema maps them onto name, id, and site. Input order is priority
// order, so the first input is the highest-priority source. A source whose
// file was missing contributes nothing and only produces a warning.
package aggregate
