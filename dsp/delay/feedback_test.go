package delay

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-delay/dsp/ring"
)

// --- construction and validation ---

func TestNewFeedbackValidation(t *testing.T) {
	if _, err := NewFeedback(0); !errors.Is(err, ring.ErrInvalidSize) {
		t.Fatalf("size=0: got %v want ErrInvalidSize", err)
	}

	if _, err := NewFeedback(-3); !errors.Is(err, ring.ErrInvalidSize) {
		t.Fatalf("size=-3: got %v want ErrInvalidSize", err)
	}
}

func TestNewFeedbackLen(t *testing.T) {
	d, err := NewFeedback(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}
}

// --- tick semantics ---

func TestTickNoFeedback(t *testing.T) {
	d, err := NewFeedback(3)
	if err != nil {
		t.Fatal(err)
	}

	// First tick on an all-zero buffer: no history yet, output is 0 and
	// the input is stored.
	out, err := d.Tick(1.0, 2, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 0 {
		t.Fatalf("first tick: got %v want 0", out)
	}

	// The stored sample comes back one tick later at delay 1.
	out, err = d.Tick(0.0, 1, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 1.0 {
		t.Fatalf("second tick: got %v want 1", out)
	}
}

func TestTickFeedback(t *testing.T) {
	d, err := NewFeedback(3)
	if err != nil {
		t.Fatal(err)
	}

	// Prime the line with a single write of 2.0.
	if _, err := d.Tick(2.0, 0, 0.0); err != nil {
		t.Fatal(err)
	}

	// The delayed sample is returned and 0 + 2*0.5 = 1 is written back.
	out, err := d.Tick(0.0, 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if out != 2.0 {
		t.Fatalf("tick: got %v want 2", out)
	}

	out, err = d.Tick(0.0, 1, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 1.0 {
		t.Fatalf("feedback write-back: got %v want 1", out)
	}
}

func TestTickEchoDecay(t *testing.T) {
	d, err := NewFeedback(4)
	if err != nil {
		t.Fatal(err)
	}

	// A unit impulse with 50% feedback at delay 3 repeats every 3 ticks
	// at half the previous amplitude.
	input := []float32{1, 0, 0, 0, 0, 0, 0, 0, 0}
	want := []float32{0, 0, 0, 1, 0, 0, 0.5, 0, 0}

	for i, in := range input {
		out, err := d.Tick(in, 3, 0.5)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if out != want[i] {
			t.Fatalf("tick %d: got %v want %v", i, out, want[i])
		}
	}
}

func TestTickTruncatesFractionalDelay(t *testing.T) {
	d, err := NewFeedback(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 8; i++ {
		if _, err := d.Tick(float32(i), 0, 0); err != nil {
			t.Fatal(err)
		}
	}

	// 2.9 truncates to 2, never rounds up to 3.
	out, err := d.Tick(0, 2.9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 7 {
		t.Fatalf("fractional delay 2.9: got %v want 7 (delay 2)", out)
	}
}

func TestTickDelayTooLong(t *testing.T) {
	d, err := NewFeedback(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Tick(1, 0, 0) //nolint:errcheck

	if _, err := d.Tick(0, 5, 0); !errors.Is(err, ring.ErrDelayTooLong) {
		t.Fatalf("delay=5: got %v want ErrDelayTooLong", err)
	}

	// The failed tick must not have advanced the buffer.
	out, err := d.Tick(0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 1 {
		t.Fatalf("after failed tick: got %v want 1", out)
	}
}

// TestTickModulation verifies that delay length can change between ticks,
// since the line carries no stored parameter state.
func TestTickModulation(t *testing.T) {
	d, err := NewFeedback(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 8; i++ {
		if _, err := d.Tick(float32(i), 0, 0); err != nil {
			t.Fatal(err)
		}
	}

	// Same history read at different per-call delay lengths. Each tick
	// writes a zero, shifting the history by one.
	out, _ := d.Tick(0, 1, 0)
	if out != 8 {
		t.Fatalf("delay 1: got %v want 8", out)
	}
	out, _ = d.Tick(0, 3, 0)
	if out != 7 {
		t.Fatalf("delay 3: got %v want 7", out)
	}
	out, _ = d.Tick(0, 8, 0)
	if out != 3 {
		t.Fatalf("delay 8: got %v want 3", out)
	}
}

func TestFeedbackReset(t *testing.T) {
	d, err := NewFeedback(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Tick(1, 0, 0) //nolint:errcheck
	d.Tick(2, 0, 0) //nolint:errcheck
	d.Reset()

	out, err := d.Tick(0, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 0 {
		t.Fatalf("after reset: got %v want 0", out)
	}
}

func TestFeedback64(t *testing.T) {
	d, err := NewFeedback64(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Tick(0.125, 0, 0) //nolint:errcheck

	out, err := d.Tick(0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != 0.125 {
		t.Fatalf("got %v want 0.125", out)
	}
}

// --- unit conversion ---

func TestSecondsToSamples(t *testing.T) {
	if got := SecondsToSamples(1.0, 48000); got != 48000.0 {
		t.Fatalf("1s at 48kHz: got %v want 48000", got)
	}

	if got := SecondsToSamples(0.0, 44100); got != 0.0 {
		t.Fatalf("0s: got %v want 0", got)
	}

	if got := SecondsToSamples[float32](0.5, 44100); got != 22050.0 {
		t.Fatalf("0.5s at 44.1kHz: got %v want 22050", got)
	}
}

// --- benchmarks ---

func BenchmarkTick(b *testing.B) {
	d, _ := NewFeedback(4096)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d.Tick(1, 1000, 0.5) //nolint:errcheck
	}
}
