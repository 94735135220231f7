// Package ring provides a fixed-capacity circular sample buffer, the
// storage primitive behind delay lines, comb filters, and echo effects.
// Writes advance a single cursor that wraps at the end of storage; reads
// address samples a fixed number of writes back in history and never move
// the cursor.
package ring
