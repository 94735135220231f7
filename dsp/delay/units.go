package delay

import algofft "github.com/MeKo-Christian/algo-fft"

// SecondsToSamples converts a duration in seconds to a sample count at the
// given sample rate. The result keeps any fractional part; Tick truncates.
func SecondsToSamples[F algofft.Float](seconds F, sampleRate int) F {
	return F(sampleRate) * seconds
}
