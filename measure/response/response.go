package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response measurement functions.
var (
	ErrNilProcessor      = errors.New("response: processor is nil")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrInvalidFFTSize    = errors.New("response: fft size must be positive")
	ErrEmptyResponse     = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// dbFloor is the level reported for zero-magnitude bins.
const dbFloor = -300.0

// Processor is a per-sample audio processor, as implemented by the
// effects package.
type Processor interface {
	ProcessSample(input float64) float64
}

// ImpulseResponse feeds a unit impulse through p and records length output
// samples. The processor should start from cleared state.
func ImpulseResponse(p Processor, length int) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	out := make([]float64, length)
	out[0] = p.ProcessSample(1)
	for i := 1; i < length; i++ {
		out[i] = p.ProcessSample(0)
	}
	return out, nil
}

// Magnitude returns the single-sided magnitude spectrum (fftSize/2+1 bins)
// of ir, zero-padded or truncated to fftSize.
func Magnitude(ir []float64, fftSize int) ([]float64, error) {
	freq, err := spectrum(ir, fftSize)
	if err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// Power returns the single-sided power spectrum |X[k]|^2 (fftSize/2+1
// bins) of ir, zero-padded or truncated to fftSize.
func Power(ir []float64, fftSize int) ([]float64, error) {
	freq, err := spectrum(ir, fftSize)
	if err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)
	return out, nil
}

// MagnitudeDB returns the magnitude spectrum in dB (20*log10 convention),
// with zero bins floored at -300 dB.
func MagnitudeDB(ir []float64, fftSize int) ([]float64, error) {
	mag, err := Magnitude(ir, fftSize)
	if err != nil {
		return nil, err
	}

	for i, m := range mag {
		if m <= 0 {
			mag[i] = dbFloor
			continue
		}
		db := 20 * math.Log10(m)
		if db < dbFloor {
			db = dbFloor
		}
		mag[i] = db
	}
	return mag, nil
}

// BinFrequencies returns the center frequency in Hz of each single-sided
// spectrum bin for the given FFT size and sample rate.
func BinFrequencies(fftSize int, sampleRate float64) ([]float64, error) {
	if fftSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	out := make([]float64, fftSize/2+1)
	for i := range out {
		out[i] = float64(i) * sampleRate / float64(fftSize)
	}
	return out, nil
}

// spectrum zero-pads ir to fftSize and returns its forward FFT.
func spectrum(ir []float64, fftSize int) ([]complex128, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	n := len(ir)
	if n > fftSize {
		n = fftSize
	}
	for i := 0; i < n; i++ {
		padded[i] = complex(ir[i], 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}
	return freq, nil
}
