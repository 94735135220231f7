// Command combinfo prints the comb-filter magnitude response of a
// feedback echo configuration.
//
// Usage:
//
//	combinfo [flags]
//
// Examples:
//
//	combinfo -time 0.005 -feedback 0.7
//	combinfo -rate 44100 -time 0.01 -mix 1 -fft 8192
//	combinfo -extrema 16
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-delay/dsp/effects"
	"github.com/cwbudde/algo-delay/measure/response"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	timeSec := flag.Float64("time", 0.005, "delay time in seconds")
	feedback := flag.Float64("feedback", 0.5, "feedback amount in [0, 0.99]")
	mix := flag.Float64("mix", 1, "wet mix in [0, 1]")
	fftSize := flag.Int("fft", 4096, "FFT size, rounded up to a power of two")
	extrema := flag.Int("extrema", 8, "number of response extrema to print")
	flag.Parse()

	if err := run(*rate, *timeSec, *feedback, *mix, *fftSize, *extrema); err != nil {
		fmt.Fprintln(os.Stderr, "combinfo:", err)
		os.Exit(1)
	}
}

func run(rate, timeSec, feedback, mix float64, fftSize, extrema int) error {
	echo, err := effects.NewEcho(rate)
	if err != nil {
		return err
	}
	if err := echo.SetTime(timeSec); err != nil {
		return err
	}
	if err := echo.SetFeedback(feedback); err != nil {
		return err
	}
	if err := echo.SetMix(mix); err != nil {
		return err
	}

	fftSize = nextPowerOf2(fftSize)

	ir, err := response.ImpulseResponse(echo, fftSize)
	if err != nil {
		return err
	}

	mags, err := response.MagnitudeDB(ir, fftSize)
	if err != nil {
		return err
	}

	freqs, err := response.BinFrequencies(fftSize, rate)
	if err != nil {
		return err
	}

	fmt.Printf("rate=%g Hz  time=%g s  feedback=%g  mix=%g  fft=%d\n\n",
		rate, timeSec, feedback, mix, fftSize)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "type\tfrequency [Hz]\tlevel [dB]")

	count := 0
	for i := 1; i < len(mags)-1 && count < extrema; i++ {
		switch {
		case mags[i] > mags[i-1] && mags[i] > mags[i+1]:
			fmt.Fprintf(w, "peak\t%.1f\t%+.2f\n", freqs[i], mags[i])
			count++
		case mags[i] < mags[i-1] && mags[i] < mags[i+1]:
			fmt.Fprintf(w, "notch\t%.1f\t%+.2f\n", freqs[i], mags[i])
			count++
		}
	}

	return w.Flush()
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
