package ring

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by buffer construction and reads.
var (
	ErrInvalidSize  = errors.New("ring: buffer size must be > 0")
	ErrDelayTooLong = errors.New("ring: requested delay exceeds buffer size")
)

// BufferT is a fixed-capacity circular sample buffer with a single write
// cursor. Writes always go to the slot under the cursor, which then wraps
// to the start at the end of storage; reads address samples relative to
// the cursor. The buffer is never resized after construction.
type BufferT[F algofft.Float] struct {
	samples  []F
	writePos int
}

// Buffer is the single-precision form used by real-time delay lines.
type Buffer = BufferT[float32]

// Buffer64 is the double-precision form used by the analysis stack.
type Buffer64 = BufferT[float64]

// NewT returns a zero-filled buffer holding size samples.
func NewT[F algofft.Float](size int) (*BufferT[F], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &BufferT[F]{samples: make([]F, size)}, nil
}

// New returns a zero-filled single-precision buffer holding size samples.
func New(size int) (*Buffer, error) {
	return NewT[float32](size)
}

// New64 returns a zero-filled double-precision buffer holding size samples.
func New64(size int) (*Buffer64, error) {
	return NewT[float64](size)
}

// Len returns the buffer capacity in samples.
func (b *BufferT[F]) Len() int {
	return len(b.samples)
}

// Write stores one sample at the cursor and advances it, wrapping at the
// end of storage. After Write the cursor points at the slot that receives
// the next sample.
func (b *BufferT[F]) Write(sample F) {
	b.samples[b.writePos] = sample
	b.writePos++
	if b.writePos >= len(b.samples) {
		b.writePos = 0
	}
}

// Read returns the sample written delay writes ago: Read(1) is the most
// recently written sample, Read(Len()) the oldest one still held, and
// Read(0) the slot the next Write overwrites. Read does not move the
// cursor or mutate storage. A delay outside [0, Len()] addresses history
// the buffer does not hold and returns an error wrapping ErrDelayTooLong
// instead of silently aliasing another slot.
func (b *BufferT[F]) Read(delay int) (F, error) {
	size := len(b.samples)
	if delay < 0 || delay > size {
		return 0, fmt.Errorf("%w: delay %d, size %d", ErrDelayTooLong, delay, size)
	}
	// writePos-delay can go negative by at most size, so a single
	// addition before the modulo keeps the index non-negative.
	readPos := (b.writePos - delay + size) % size
	return b.samples[readPos], nil
}

// Reset zeroes the storage and rewinds the cursor.
func (b *BufferT[F]) Reset() {
	for i := range b.samples {
		b.samples[i] = 0
	}
	b.writePos = 0
}
