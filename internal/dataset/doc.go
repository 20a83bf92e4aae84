// Package dataset extracts the games catalog from its source file into an
// in-memory table.
//
// Two source formats are supported: CSV exports and XLSX workbooks (first
// sheet). Both produce the same Table: a header, raw string rows, and a
// name-based column lookup. The extractor validates shape only: the 13
// documented catalog columns must be present and at least one data row must
// exist. All typed interpretation (play counts, ratings, genre lists) is
// left to the analytics package.
package dataset
