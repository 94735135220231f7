package delay

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-delay/dsp/ring"
)

// FeedbackT is a feedback delay line: each tick reads a delayed sample,
// mixes it back into the incoming sample through a feedback coefficient,
// and writes the sum. Delay length and feedback are per-call arguments
// rather than stored state, so callers can modulate both at sample
// granularity without a setter surface.
type FeedbackT[F algofft.Float] struct {
	buf *ring.BufferT[F]
}

// Feedback is the single-precision feedback delay.
type Feedback = FeedbackT[float32]

// Feedback64 is the double-precision feedback delay.
type Feedback64 = FeedbackT[float64]

// NewFeedbackT returns a feedback delay whose buffer holds size samples.
// The size is the maximum deliverable delay length.
func NewFeedbackT[F algofft.Float](size int) (*FeedbackT[F], error) {
	buf, err := ring.NewT[F](size)
	if err != nil {
		return nil, err
	}
	return &FeedbackT[F]{buf: buf}, nil
}

// NewFeedback returns a single-precision feedback delay of the given size.
func NewFeedback(size int) (*Feedback, error) {
	return NewFeedbackT[float32](size)
}

// NewFeedback64 returns a double-precision feedback delay of the given size.
func NewFeedback64(size int) (*Feedback64, error) {
	return NewFeedbackT[float64](size)
}

// Tick processes one sample. It reads the sample delaySamples writes back
// (any fractional part is truncated toward zero, not interpolated), writes
// input + delayed*feedback, and returns the delayed sample. The return
// value reflects buffer state strictly prior to this tick. A delay outside
// [0, Len()] returns ring.ErrDelayTooLong and leaves the buffer untouched.
func (d *FeedbackT[F]) Tick(input, delaySamples, feedback F) (F, error) {
	out, err := d.buf.Read(int(delaySamples))
	if err != nil {
		return 0, err
	}
	d.buf.Write(input + out*feedback)
	return out, nil
}

// Len returns the maximum delay length in samples.
func (d *FeedbackT[F]) Len() int {
	return d.buf.Len()
}

// Reset clears the delay history.
func (d *FeedbackT[F]) Reset() {
	d.buf.Reset()
}
