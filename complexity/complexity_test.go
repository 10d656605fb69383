package complexity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-biosig/stats"
)

func TestApproximateEntropyConstantSignal(t *testing.T) {
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = 1.5
	}

	if got := ApproximateEntropy(signal, 2, 1, 0.2); got != 0 {
		t.Errorf("got %g, want 0", got)
	}
}

func TestApproximateEntropyNoiseExceedsSine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	n := 300
	sine := make([]float64, n)
	noise := make([]float64, n)

	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * float64(i) / 25)
		noise[i] = rng.NormFloat64()
	}

	rSine := 0.2 * stats.SD(sine, 1)
	rNoise := 0.2 * stats.SD(noise, 1)

	apSine := ApproximateEntropy(sine, 2, 1, rSine)
	apNoise := ApproximateEntropy(noise, 2, 1, rNoise)

	if apNoise <= apSine {
		t.Errorf("noise ApEn %g not above sine ApEn %g", apNoise, apSine)
	}
}

func TestApproximateEntropyShortSignal(t *testing.T) {
	if got := ApproximateEntropy([]float64{1, 2}, 2, 1, 0.2); !math.IsNaN(got) {
		t.Errorf("got %g, want NaN", got)
	}
}

func TestOptimalToleranceTraditional(t *testing.T) {
	signal := []float64{1, 3, 2, 5, 4, 6, 2, 3}

	r, err := OptimalTolerance(signal, 0, 0, MethodTraditional)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 0.2 * stats.SD(signal, 1)
	if math.Abs(r-want) > 1e-12 {
		t.Errorf("got %g, want %g", r, want)
	}
}

func TestOptimalToleranceMaxApEn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	signal := make([]float64, 200)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/40) + 0.3*rng.NormFloat64()
	}

	r, err := OptimalTolerance(signal, 1, 2, MethodMaxApEn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs, apens, err := ToleranceSweep(signal, 1, 2)
	if err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	if len(rs) != 39 {
		t.Fatalf("grid has %d candidates, want 39", len(rs))
	}

	best := 0
	for i, v := range apens {
		if v > apens[best] {
			best = i
		}
	}

	if r != rs[best] {
		t.Errorf("got r=%g, want grid argmax %g", r, rs[best])
	}

	sd := stats.SD(signal, 1)
	if r < 0.02*sd-1e-12 || r > 0.78*sd+1e-12 {
		t.Errorf("r=%g outside candidate range [%g, %g]", r, 0.02*sd, 0.78*sd)
	}
}

func TestOptimalToleranceConstantSignal(t *testing.T) {
	signal := make([]float64, 50)

	if _, err := OptimalTolerance(signal, 1, 2, MethodMaxApEn); err != ErrConstantSignal {
		t.Errorf("got %v, want ErrConstantSignal", err)
	}
}
