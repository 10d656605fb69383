package viz

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-biosig/complexity"
	"github.com/cwbudde/algo-biosig/dsp/spectrum"
	"github.com/cwbudde/algo-biosig/measure/rsa"
)

func TestPSDPlot(t *testing.T) {
	signal := make([]float64, 1024)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 0.25 * float64(i) / 2)
	}

	psd, err := spectrum.Welch(signal, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := PSDPlot(psd, []spectrum.Band{{Low: 0.12, High: 0.40}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p == nil {
		t.Fatal("nil plot")
	}
}

func TestDensityPlot(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	x := make([]float64, 400)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	p, err := DensityPlot(x, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p == nil {
		t.Fatal("nil plot")
	}
}

func TestToleranceSweepPlot(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	signal := make([]float64, 150)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/30) + 0.2*rng.NormFloat64()
	}

	rs, apens, err := complexity.ToleranceSweep(signal, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := ToleranceSweepPlot(rs, apens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p == nil {
		t.Fatal("nil plot")
	}
}

func TestToleranceSweepPlotEmpty(t *testing.T) {
	if _, err := ToleranceSweepPlot(nil, nil); err != ErrEmptySweep {
		t.Errorf("got %v, want ErrEmptySweep", err)
	}
}

func TestPipelineRecorder(t *testing.T) {
	rec := NewPipelineRecorder()

	rec.ObserveStage(rsa.StageResampled, []float64{1, 2, 3})
	rec.ObserveStage(rsa.StageTrend, []float64{1, 1, 1})

	if got := rec.Signal(rsa.StageResampled); len(got) != 3 {
		t.Fatalf("recorded %d samples, want 3", len(got))
	}

	p, err := rec.Plot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p == nil {
		t.Fatal("nil plot")
	}
}
