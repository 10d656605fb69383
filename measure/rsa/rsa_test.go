package rsa

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-biosig/internal/testutil"
)

// synthFrame builds two minutes of signals at 100 Hz: 4-second breaths
// (2 s inspiration, 2 s expiration) and a heart rate modulated inside the
// respiration band.
func synthFrame() Frame {
	const n = 12000

	phase, completion := testutil.BreathPhases(4, 100, n)

	return Frame{
		"RSP_Phase":           phase,
		"RSP_PhaseCompletion": completion,
		"ECG_Rate":            testutil.HeartRate(70, 5, 0.25, 100, n),
	}
}

// synthRPeaks alternates 0.7 s and 0.9 s inter-beat intervals so every
// breath cycle has a peak-to-trough spread of 0.2 s.
func synthRPeaks(n int) []int {
	return testutil.RPeaks(n, 70, 90)
}

func TestAnalyze(t *testing.T) {
	frame := synthFrame()
	rpeaks := synthRPeaks(12000)

	result, err := Analyze(frame, rpeaks, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 30 inspiration onsets frame 29 cycles.
	if len(result.P2TValues) != 29 {
		t.Fatalf("got %d cycle values, want 29", len(result.P2TValues))
	}

	if result.UndefinedCycles != 0 {
		t.Errorf("undefined cycles = %d, want 0", result.UndefinedCycles)
	}

	if math.Abs(result.P2TMean-0.2) > 0.02 {
		t.Errorf("P2T mean = %g, want ~0.2", result.P2TMean)
	}

	if math.IsNaN(result.PorgesBohrer) || math.IsInf(result.PorgesBohrer, 0) {
		t.Errorf("Porges-Bohrer = %g, want finite", result.PorgesBohrer)
	}

	if result.CycleAlignmentWarning {
		t.Error("unexpected alignment warning")
	}
}

func TestAnalyzeTruncatedCompletionLabel(t *testing.T) {
	// Frames read from EDF recordings carry the completion column under
	// its 16-byte label.
	frame := synthFrame()
	frame["RSP_PhaseComplet"] = frame["RSP_PhaseCompletion"]
	delete(frame, "RSP_PhaseCompletion")

	result, err := Analyze(frame, synthRPeaks(12000), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.P2TValues) != 29 {
		t.Errorf("got %d cycle values, want 29", len(result.P2TValues))
	}
}

func TestAnalyzeMissingPhaseColumns(t *testing.T) {
	frame := synthFrame()
	delete(frame, "RSP_PhaseCompletion")

	if _, err := Analyze(frame, nil, 100); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("got %v, want ErrMissingColumn", err)
	}
}

func TestAnalyzeMissingRateColumn(t *testing.T) {
	frame := synthFrame()
	delete(frame, "ECG_Rate")

	if _, err := Analyze(frame, nil, 100); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("got %v, want ErrMissingColumn", err)
	}
}

func TestAnalyzeInvalidRate(t *testing.T) {
	if _, err := Analyze(synthFrame(), nil, 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("got %v, want ErrInvalidRate", err)
	}
}

func TestAnalyzeLengthMismatch(t *testing.T) {
	frame := synthFrame()
	frame["RSP_Phase"] = frame["RSP_Phase"][:100]

	if _, err := Analyze(frame, nil, 100); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

type stageRecorder struct {
	stages []Stage
}

func (r *stageRecorder) ObserveStage(stage Stage, samples []float64) {
	r.stages = append(r.stages, stage)
}

func TestAnalyzeObserverSeesPipeline(t *testing.T) {
	rec := &stageRecorder{}

	if _, err := Analyze(synthFrame(), synthRPeaks(12000), 100, WithObserver(rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Stage{StageResampled, StageTrend, StageDetrended, StageBandLimited}

	if len(rec.stages) != len(want) {
		t.Fatalf("observed %d stages, want %d", len(rec.stages), len(want))
	}

	for i, s := range rec.stages {
		if s != want[i] {
			t.Errorf("stage %d = %v, want %v", i, s, want[i])
		}
	}
}
