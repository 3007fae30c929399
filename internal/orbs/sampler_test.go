package orbs

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestSampleCount(t *testing.T) {
	p := defaultPalette(t)
	for _, n := range []int{1, 7, 120, 500} {
		if got := len(Sample(newTestRand(1), n, p)); got != n {
			t.Fatalf("Sample(%d) returned %d orbs", n, got)
		}
	}
	if got := Sample(newTestRand(1), 0, p); got != nil {
		t.Fatalf("expected nil for zero count, got %d orbs", len(got))
	}
}

func TestSampleRanges(t *testing.T) {
	p := defaultPalette(t)
	for seed := uint64(0); seed < 20; seed++ {
		for i, o := range Sample(newTestRand(seed), 200, p) {
			checkInt(t, i, "size", o.Size, 10, 40)
			checkInt(t, i, "left", o.Left, 0, 100)
			checkInt(t, i, "top", o.Top, 0, 100)
			checkFloat(t, i, "duration", o.Duration, 8, 24)
			checkFloat(t, i, "delay", o.Delay, -8, 0)
			checkInt(t, i, "dx", o.DX, -70, 70)
			checkInt(t, i, "dy", o.DY, -40, 40)
			checkInt(t, i, "blur", o.Blur, 3, 12)
			checkInt(t, i, "colorStop", o.ColorStop, 0, PaletteSize-1)
			checkFloat(t, i, "opacity", o.Opacity, 0.25, 0.75)

			if d := o.Duration * 10; math.Abs(d-math.Round(d)) > 1e-9 {
				t.Fatalf("orb %d: duration %v has more than one decimal", i, o.Duration)
			}
			if d := o.Delay * 100; math.Abs(d-math.Round(d)) > 1e-9 {
				t.Fatalf("orb %d: delay %v has more than two decimals", i, o.Delay)
			}
		}
	}
}

func TestSampleUsesWholePalette(t *testing.T) {
	p := defaultPalette(t)
	seen := make(map[int]bool)
	for _, o := range Sample(newTestRand(42), 500, p) {
		seen[o.ColorStop] = true
	}
	if len(seen) != PaletteSize {
		t.Fatalf("expected all %d palette entries to be used, saw %d", PaletteSize, len(seen))
	}
}

func TestPulseDuration(t *testing.T) {
	if got := (Orb{Duration: 6}).PulseDuration(); got != 4 {
		t.Fatalf("expected pulse floor of 4s, got %v", got)
	}
	if got := (Orb{Duration: 20}).PulseDuration(); got != 10 {
		t.Fatalf("expected half duration, got %v", got)
	}
}

func checkInt(t *testing.T, i int, name string, v, lo, hi int) {
	t.Helper()
	if v < lo || v > hi {
		t.Fatalf("orb %d: %s %d outside [%d, %d]", i, name, v, lo, hi)
	}
}

func checkFloat(t *testing.T, i int, name string, v, lo, hi float64) {
	t.Helper()
	if v < lo || v > hi {
		t.Fatalf("orb %d: %s %v outside [%v, %v]", i, name, v, lo, hi)
	}
}
