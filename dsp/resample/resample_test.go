package resample

import (
	"math"
	"testing"
)

func TestRationalIdentity(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}

	out, err := Rational(in, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("length: got %d, want %d", len(out), len(in))
	}

	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: got %g, want %g", i, out[i], in[i])
		}
	}
}

func TestRationalInvalid(t *testing.T) {
	if _, err := Rational([]float64{1}, 0, 2); err != ErrInvalidRatio {
		t.Errorf("up=0: got %v, want ErrInvalidRatio", err)
	}
	if _, err := Rational([]float64{1}, 2, -1); err != ErrInvalidRatio {
		t.Errorf("down<0: got %v, want ErrInvalidRatio", err)
	}
}

func TestResampleInvalidRate(t *testing.T) {
	if _, err := Resample([]float64{1}, 0, 2); err != ErrInvalidRate {
		t.Errorf("inRate=0: got %v, want ErrInvalidRate", err)
	}
	if _, err := Resample([]float64{1}, 100, math.NaN()); err != ErrInvalidRate {
		t.Errorf("NaN outRate: got %v, want ErrInvalidRate", err)
	}
}

func TestResampleEmpty(t *testing.T) {
	out, err := Resample(nil, 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("empty input: got %d samples", len(out))
	}
}

func TestDownsampleOutputLength(t *testing.T) {
	in := make([]float64, 1000) // 10 s at 100 Hz

	out, err := Resample(in, 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 20 {
		t.Errorf("length: got %d, want 20", len(out))
	}
}

func TestDownsamplePreservesDC(t *testing.T) {
	in := make([]float64, 2000)
	for i := range in {
		in[i] = 5.0
	}

	out, err := Resample(in, 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Edge samples droop because the signal is zero outside its support;
	// check the interior.
	for i := 5; i < len(out)-5; i++ {
		if math.Abs(out[i]-5.0) > 1e-3 {
			t.Errorf("index %d: got %g, want 5.0", i, out[i])
		}
	}
}

func TestDownsamplePreservesSlowTrend(t *testing.T) {
	// A 0.05 Hz sine at 100 Hz is far below the 1 Hz Nyquist of the 2 Hz
	// output and must survive the conversion, time-aligned.
	const (
		inRate  = 100.0
		outRate = 2.0
		freq    = 0.05
	)

	in := make([]float64, 6000) // 60 s
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * freq * float64(i) / inRate)
	}

	out, err := Resample(in, inRate, outRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 10; i < len(out)-10; i++ {
		want := math.Sin(2 * math.Pi * freq * float64(i) / outRate)
		if math.Abs(out[i]-want) > 5e-3 {
			t.Errorf("index %d: got %g, want %g", i, out[i], want)
		}
	}
}

func TestDownsampleRejectsHighFrequency(t *testing.T) {
	// A 10 Hz sine at 100 Hz is far above the 1 Hz output Nyquist and must be
	// strongly attenuated rather than aliased.
	const inRate = 100.0

	in := make([]float64, 4000)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 10 * float64(i) / inRate)
	}

	out, err := Resample(in, inRate, 2, WithQuality(QualityBest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var peak float64
	for _, v := range out[5 : len(out)-5] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak > 1e-2 {
		t.Errorf("stopband leakage: peak %g", peak)
	}
}

func TestUpsampleInterpolates(t *testing.T) {
	const inRate = 10.0

	in := make([]float64, 200)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 0.5 * float64(i) / inRate)
	}

	out, err := Resample(in, inRate, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 400 {
		t.Fatalf("length: got %d, want 400", len(out))
	}

	for i := 40; i < len(out)-40; i++ {
		want := math.Sin(2 * math.Pi * 0.5 * float64(i) / 20.0)
		if math.Abs(out[i]-want) > 5e-3 {
			t.Errorf("index %d: got %g, want %g", i, out[i], want)
		}
	}
}

func TestConversionIsDelayFree(t *testing.T) {
	// A symmetric pulse must keep its center: with the peak at input
	// sample 100, a 1:2 conversion peaks at output sample 200, and the
	// neighborhood stays symmetric. A fractional group-delay error shows
	// up here as a skewed peak.
	in := make([]float64, 200)
	for i := range in {
		d := (float64(i) - 100) / 8
		in[i] = math.Exp(-d * d)
	}

	out, err := Resample(in, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peak := 0
	for i, v := range out {
		if v > out[peak] {
			peak = i
		}
	}

	if peak != 200 {
		t.Fatalf("peak at index %d, want 200", peak)
	}

	for k := 1; k <= 16; k++ {
		if diff := math.Abs(out[200-k] - out[200+k]); diff > 2e-3 {
			t.Errorf("asymmetry %g at offset %d", diff, k)
		}
	}
}

func TestApproximateRatio(t *testing.T) {
	tests := []struct {
		v        float64
		up, down int
	}{
		{0.02, 1, 50}, // 100 Hz -> 2 Hz
		{2.0, 2, 1},
		{1.5, 3, 2},
		{1.0, 1, 1},
	}

	for _, tt := range tests {
		up, down := approximateRatio(tt.v, 4096)
		if up != tt.up || down != tt.down {
			t.Errorf("approximateRatio(%g): got %d/%d, want %d/%d", tt.v, up, down, tt.up, tt.down)
		}
	}
}

func TestQualityProfiles(t *testing.T) {
	fast := QualityProfile(QualityFast)
	best := QualityProfile(QualityBest)

	if fast.TapsPerPhase >= best.TapsPerPhase {
		t.Errorf("fast taps %d should be below best taps %d", fast.TapsPerPhase, best.TapsPerPhase)
	}
}
