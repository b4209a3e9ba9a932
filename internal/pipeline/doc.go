// Package pipeline folds a validated spectrum across worker goroutines.
//
// Rows are split into contiguous chunks; each chunk produces its own
// compensated partial sum and breakdown slice, and partials are merged in
// chunk order, so a given Threads/ChunkSize always yields the same bits.
// Validation runs once, sequentially, before any worker starts.
package pipeline
