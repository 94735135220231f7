package delay

import algofft "github.com/MeKo-Christian/algo-fft"

// TapT carries the two outputs of a tap point, such as left/right or
// dry/wet. It is a plain value pair; composition layers decide what the
// two slots mean.
type TapT[F algofft.Float] struct {
	Left  F
	Right F
}

// Tap is the single-precision tap pair.
type Tap = TapT[float32]

// Tap64 is the double-precision tap pair.
type Tap64 = TapT[float64]
