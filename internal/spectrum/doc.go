// Package spectrum reads a binned load spectrum (stress amplitude and cycle
// count per row) from a delimited text table.
//
// Layout:
//   - first non-comment record is the header; columns are found by name
//     (case-insensitive), so extra columns and any column order are fine
//   - '#' starts a comment line; blank lines are ignored
//   - comma by default, tab for .tsv/.tab; gzip is detected transparently
//   - "-" reads standard input
//
// Value checks (positive stress, non-negative counts) belong to the damage
// package; this package only rejects text that is not a number.
package spectrum
