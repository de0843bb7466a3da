// Package safe provides panic-free helpers for slices and decimal math.
//
// Core APIs include the order-preserving Chunk partitioner used by batch,
// bounds-checked slice accessors (First, Last, At), and decimal division
// helpers (Divide, Percentage).
//
// Functions that can fail return explicit errors instead of panicking, so
// callers can handle failures predictably in production paths.
package safe
