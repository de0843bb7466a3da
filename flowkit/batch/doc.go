// Package batch processes a slice with bounded concurrency while preserving
// input order.
//
// Items are processed in contiguous chunks of at most the concurrency limit;
// a chunk fully settles before the next one starts, so no more than the limit
// is ever in flight. The first per-item failure aborts the batch: its error is
// surfaced unchanged, no partial results are returned, and later chunks never
// start.
package batch
