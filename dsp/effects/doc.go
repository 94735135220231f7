// Package effects provides reusable non-I/O effect kernels built on the
// delay core.
//
// Effects in this package:
//   - Echo: feedback echo with dry/wet mix.
//
// All effects are designed for real-time processing with zero-allocation
// hot paths and support both single-sample and buffer-based processing.
package effects
