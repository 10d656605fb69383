package spectrum

import (
	"math"
	"testing"
)

func TestIntegrateFlatDensity(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0, 1, 2, 3, 4},
		Power:       []float64{1, 1, 1, 1, 1},
	}

	// Bins with 1 <= f < 3 are f=1 and f=2; one trapezoid of width 1.
	got := Integrate(psd, Band{Low: 1, High: 3})
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("got %g, want 1", got)
	}

	// Full range covers bins 0..3.
	got = Integrate(psd, Band{Low: 0, High: 4})
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("full range: got %g, want 3", got)
	}
}

func TestIntegrateEmptyBand(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0, 1, 2},
		Power:       []float64{1, 1, 1},
	}

	if got := Integrate(psd, Band{Low: 10, High: 20}); got != 0 {
		t.Errorf("out-of-range band: got %g, want 0", got)
	}

	// A single bin cannot form a trapezoid.
	if got := Integrate(psd, Band{Low: 1, High: 1.5}); got != 0 {
		t.Errorf("single-bin band: got %g, want 0", got)
	}
}

func TestPowerBandSelectivity(t *testing.T) {
	in := sine(10, 100, 4096)

	bands := []Band{
		{Low: 8, High: 12},  // contains the tone
		{Low: 30, High: 40}, // disjoint
	}

	out, err := Power(in, 100, bands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}

	if out[0].Power <= 0 {
		t.Fatalf("tone band power: got %g, want > 0", out[0].Power)
	}

	if out[1].Power > out[0].Power/100 {
		t.Errorf("disjoint band %g should be far below tone band %g", out[1].Power, out[0].Power)
	}
}

func TestBandString(t *testing.T) {
	b := Band{Low: 0.12, High: 0.4}
	if got := b.String(); got != "0.12-0.40Hz" {
		t.Errorf("got %q, want %q", got, "0.12-0.40Hz")
	}
}
