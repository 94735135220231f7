// Package response measures the frequency response of per-sample audio
// processors from their impulse response. A delay with feedback is a comb
// filter; this package makes its peaks and notches visible.
package response
