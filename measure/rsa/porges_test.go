package rsa

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-biosig/internal/testutil"
)

func TestEpochLogVariancesTruncationInvariance(t *testing.T) {
	signal := testutil.Noise(5, 1, 150)

	full := epochLogVariances(signal, 60)
	truncated := epochLogVariances(signal[:120], 60)

	if len(full) != 3 || len(truncated) != 2 {
		t.Fatalf("got %d/%d epochs, want 3/2", len(full), len(truncated))
	}

	// Cutting the signal at an epoch boundary must leave prior epochs
	// untouched.
	testutil.RequireSliceNearlyEqual(t, truncated, full[:2], 0)
}

func TestEpochLogVariancesConstantEpoch(t *testing.T) {
	signal := make([]float64, 120)
	for i := 60; i < 120; i++ {
		signal[i] = math.Sin(float64(i))
	}

	logs := epochLogVariances(signal, 60)

	if len(logs) != 2 {
		t.Fatalf("got %d epochs, want 2", len(logs))
	}

	if !math.IsInf(logs[0], -1) {
		t.Errorf("constant epoch log variance = %g, want -Inf", logs[0])
	}
}

func TestEpochLogVariancesSkipsSingleSampleEpoch(t *testing.T) {
	signal := testutil.Noise(9, 1, 61)

	if logs := epochLogVariances(signal, 60); len(logs) != 1 {
		t.Errorf("got %d epochs, want 1 (trailing single sample skipped)", len(logs))
	}
}

func TestPorgesBohrerFiniteOnModulatedRate(t *testing.T) {
	// Two minutes of heart rate at 100 Hz modulated at 0.25 Hz, inside
	// the respiration band.
	signal := testutil.HeartRate(70, 5, 0.25, 100, 12000)

	got, err := PorgesBohrer(signal, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("estimate = %g, want finite", got)
	}
}

func TestPorgesBohrerShortSignal(t *testing.T) {
	// One second of input resamples to too few points for the 21-sample
	// trend filter.
	signal := make([]float64, 100)

	if _, err := PorgesBohrer(signal, 100, nil); err == nil {
		t.Fatal("expected error for short signal")
	}
}
