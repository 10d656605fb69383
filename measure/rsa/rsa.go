package rsa

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Column name fragments Analyze looks for in the input frame.
const (
	phaseColumnFragment = "RSP_Phase"

	// EDF caps labels at 16 bytes, so "RSP_PhaseCompletion" can arrive
	// truncated to "RSP_PhaseComplet"; match the fragment both forms
	// share.
	completionColumnFragment = "Complet"

	rateColumnFragment = "ECG_Rate"
)

var (
	// ErrMissingColumn indicates that the frame lacks the respiration-phase
	// or heart-rate columns the analysis needs.
	ErrMissingColumn = errors.New("rsa: required column missing")

	// ErrInvalidRate indicates a non-positive sampling rate.
	ErrInvalidRate = errors.New("rsa: sampling rate must be positive")

	// ErrLengthMismatch indicates phase and completion columns of unequal
	// length.
	ErrLengthMismatch = errors.New("rsa: phase columns differ in length")
)

// Frame is a column-name to samples table, the shape produced by an
// upstream preprocessing stage.
type Frame map[string][]float64

// Result merges the two RSA estimators into one record.
type Result struct {
	// P2TValues is the peak-to-trough estimate per breath cycle in
	// seconds; undefined cycles carry NaN.
	P2TValues []float64

	// P2TMean, P2TMeanLog and P2TVariability summarize the defined
	// per-cycle values.
	P2TMean        float64
	P2TMeanLog     float64
	P2TVariability float64

	// UndefinedCycles counts breath cycles with too few R-peaks for an
	// estimate.
	UndefinedCycles int

	// PorgesBohrer is the log-variance estimate, preferable when the
	// signal-to-noise ratio is low.
	PorgesBohrer float64

	// CycleAlignmentWarning reports that inspiration and expiration
	// onsets could not be cleanly aligned. The estimates above are still
	// computed from the best-effort alignment.
	CycleAlignmentWarning bool
}

// Pipeline stages reported to an Observer.
const (
	StageResampled Stage = iota
	StageTrend
	StageDetrended
	StageBandLimited
)

// Stage identifies an intermediate signal of the Porges-Bohrer pipeline.
type Stage int

func (s Stage) String() string {
	switch s {
	case StageResampled:
		return "resampled"
	case StageTrend:
		return "trend"
	case StageDetrended:
		return "detrended"
	case StageBandLimited:
		return "band-limited"
	default:
		return "unknown"
	}
}

// Observer receives intermediate signals of the analysis pipeline, e.g. for
// plotting. Slices are owned by the pipeline and must be copied if retained.
type Observer interface {
	ObserveStage(stage Stage, samples []float64)
}

func observe(obs Observer, stage Stage, samples []float64) {
	if obs != nil {
		obs.ObserveStage(stage, samples)
	}
}

type config struct {
	observer Observer
}

// Option configures Analyze.
type Option func(*config)

// WithObserver attaches an observer to the analysis pipeline.
func WithObserver(obs Observer) Option {
	return func(cfg *config) {
		cfg.observer = obs
	}
}

// Analyze computes both RSA estimators from a preprocessed signal frame and
// the R-peak sample indices of the ECG. The frame must hold exactly two
// columns whose names contain "RSP_Phase" (the per-sample phase label and
// its completion fraction) and at least one column containing "ECG_Rate".
func Analyze(signals Frame, rpeaks []int, samplingRate float64, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if samplingRate <= 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrInvalidRate, samplingRate)
	}

	phase, completion, heartRate, err := resolveColumns(signals)
	if err != nil {
		return Result{}, err
	}

	if len(phase) != len(completion) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(phase), len(completion))
	}

	cycles := ExtractCycles(phase, completion)
	_, warn := alignCenters(cycles.InspirationOnsets, cycles.ExpirationOnsets)

	p2t := PeakToTrough(cycles.InspirationOnsets, rpeaks, samplingRate)

	pb, err := PorgesBohrer(heartRate, samplingRate, cfg.observer)
	if err != nil {
		return Result{}, err
	}

	return Result{
		P2TValues:             p2t.Values,
		P2TMean:               p2t.Mean,
		P2TMeanLog:            p2t.MeanLog,
		P2TVariability:        p2t.Variability,
		UndefinedCycles:       p2t.Undefined,
		PorgesBohrer:          pb,
		CycleAlignmentWarning: warn,
	}, nil
}

// resolveColumns locates the phase, completion and heart-rate columns by
// name fragment. Column names are scanned in sorted order so resolution is
// deterministic.
func resolveColumns(signals Frame) (phase, completion, heartRate []float64, err error) {
	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}

	sort.Strings(names)

	var phaseCols, rateCols []string

	for _, name := range names {
		if strings.Contains(name, phaseColumnFragment) {
			phaseCols = append(phaseCols, name)
		}

		if strings.Contains(name, rateColumnFragment) {
			rateCols = append(rateCols, name)
		}
	}

	if len(phaseCols) != 2 {
		return nil, nil, nil, fmt.Errorf("%w: want exactly 2 %q columns, have %d",
			ErrMissingColumn, phaseColumnFragment, len(phaseCols))
	}

	if len(rateCols) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no %q column", ErrMissingColumn, rateColumnFragment)
	}

	// The completion fraction column names itself; the other phase column
	// holds the label.
	if strings.Contains(phaseCols[0], completionColumnFragment) {
		phaseCols[0], phaseCols[1] = phaseCols[1], phaseCols[0]
	}

	return signals[phaseCols[0]], signals[phaseCols[1]], signals[rateCols[0]], nil
}
