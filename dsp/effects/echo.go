package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-delay/dsp/delay"
)

const (
	defaultEchoTimeSeconds = 0.25
	defaultEchoFeedback    = 0.35
	defaultEchoMix         = 0.25
	maxEchoTimeSeconds     = 2.0
	minEchoTimeSeconds     = 0.001
)

// Echo is a feedback echo with dry/wet mix built on a delay line.
type Echo struct {
	sampleRate   float64
	delaySeconds float64
	feedback     float64
	mix          float64

	delaySamples float64
	line         *delay.Feedback64
}

// NewEcho creates an echo with practical defaults.
func NewEcho(sampleRate float64) (*Echo, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("echo sample rate must be > 0: %f", sampleRate)
	}
	e := &Echo{
		sampleRate:   sampleRate,
		delaySeconds: defaultEchoTimeSeconds,
		feedback:     defaultEchoFeedback,
		mix:          defaultEchoMix,
	}
	if err := e.reconfigureLine(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetSampleRate updates sample rate. The delay history is discarded.
func (e *Echo) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("echo sample rate must be > 0: %f", sampleRate)
	}
	e.sampleRate = sampleRate
	return e.reconfigureLine()
}

// SetTime sets delay time in seconds.
func (e *Echo) SetTime(seconds float64) error {
	if seconds < minEchoTimeSeconds || seconds > maxEchoTimeSeconds ||
		math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("echo time must be in [%f, %f]: %f",
			minEchoTimeSeconds, maxEchoTimeSeconds, seconds)
	}
	e.delaySeconds = seconds
	e.updateDelaySamples()
	return nil
}

// SetFeedback sets feedback amount in [0, 0.99].
func (e *Echo) SetFeedback(feedback float64) error {
	if feedback < 0 || feedback > 0.99 || math.IsNaN(feedback) || math.IsInf(feedback, 0) {
		return fmt.Errorf("echo feedback must be in [0, 0.99]: %f", feedback)
	}
	e.feedback = feedback
	return nil
}

// SetMix sets wet amount in [0, 1].
func (e *Echo) SetMix(mix float64) error {
	if mix < 0 || mix > 1 || math.IsNaN(mix) || math.IsInf(mix, 0) {
		return fmt.Errorf("echo mix must be in [0, 1]: %f", mix)
	}
	e.mix = mix
	return nil
}

// Reset clears echo state.
func (e *Echo) Reset() {
	e.line.Reset()
}

// ProcessSample processes one sample.
func (e *Echo) ProcessSample(input float64) float64 {
	// delaySamples is kept within [1, line capacity], so Tick cannot fail.
	delayed, _ := e.line.Tick(input, e.delaySamples, e.feedback)
	return input*(1-e.mix) + delayed*e.mix
}

// ProcessTap processes one sample and returns the dry and wet paths
// separately, for callers that mix or route the two themselves.
func (e *Echo) ProcessTap(input float64) delay.Tap64 {
	delayed, _ := e.line.Tick(input, e.delaySamples, e.feedback)
	return delay.Tap64{Left: input, Right: delayed}
}

// ProcessInPlace applies the echo to buf in place.
func (e *Echo) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = e.ProcessSample(buf[i])
	}
}

// SampleRate returns sample rate in Hz.
func (e *Echo) SampleRate() float64 { return e.sampleRate }

// Time returns delay time in seconds.
func (e *Echo) Time() float64 { return e.delaySeconds }

// Feedback returns feedback amount in [0, 0.99].
func (e *Echo) Feedback() float64 { return e.feedback }

// Mix returns wet amount in [0, 1].
func (e *Echo) Mix() float64 { return e.mix }

// reconfigureLine sizes the delay line for the maximum delay time at the
// current sample rate, so SetTime never reallocates.
func (e *Echo) reconfigureLine() error {
	size := int(math.Ceil(maxEchoTimeSeconds*e.sampleRate)) + 1
	line, err := delay.NewFeedback64(size)
	if err != nil {
		return err
	}
	e.line = line
	e.updateDelaySamples()
	return nil
}

func (e *Echo) updateDelaySamples() {
	samples := math.Round(delay.SecondsToSamples(e.delaySeconds, int(math.Round(e.sampleRate))))
	if samples < 1 {
		samples = 1
	}
	if limit := float64(e.line.Len()); samples > limit {
		samples = limit
	}
	e.delaySamples = samples
}
