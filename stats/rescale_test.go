package stats

import (
	"math"
	"testing"
)

func TestRescaleToUnitRange(t *testing.T) {
	out, err := Rescale([]float64{10, 20, 30}, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0, 0.5, 1}
	for i, v := range out {
		if !almostEqual(v, want[i], tolerance) {
			t.Errorf("out[%d] = %g, want %g", i, v, want[i])
		}
	}
}

func TestRescaleRoundTrip(t *testing.T) {
	data := []float64{3.5, -1.2, 0, 7.9, 2.2}

	unit, err := Rescale(data, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	min := NaNMin(data)
	max := NaNMax(data)

	for i, v := range unit {
		back := v*(max-min) + min
		if !almostEqual(back, data[i], 1e-12) {
			t.Errorf("round trip: got %g, want %g", back, data[i])
		}
	}
}

func TestRescalePassesNaNThrough(t *testing.T) {
	out, err := Rescale([]float64{0, math.NaN(), 10}, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsNaN(out[1]) {
		t.Errorf("out[1] = %g, want NaN", out[1])
	}

	if out[0] != 0 || out[2] != 1 {
		t.Errorf("got [%g, _, %g], want [0, _, 1]", out[0], out[2])
	}
}

func TestRescaleConstantInput(t *testing.T) {
	if _, err := Rescale([]float64{5, 5, 5}, 0, 1); err != ErrConstantInput {
		t.Errorf("got %v, want ErrConstantInput", err)
	}
}
