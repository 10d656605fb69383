package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-biosig/dsp/window"
)

var (
	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("spectrum: invalid sample rate")
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("spectrum: empty signal")
)

// PSD is a one-sided power spectral density estimate. Power carries density
// units (signal units squared per Hz), so integrating over a frequency band
// yields band power.
type PSD struct {
	Frequencies []float64
	Power       []float64
}

type psdConfig struct {
	segmentLen int
	overlap    float64
	windowType window.Type
}

// PSDOption configures Welch estimation.
type PSDOption func(*psdConfig)

// WithSegmentLength overrides the Welch segment length in samples.
func WithSegmentLength(n int) PSDOption {
	return func(cfg *psdConfig) {
		if n > 0 {
			cfg.segmentLen = n
		}
	}
}

// WithOverlap sets the fractional overlap between segments in [0, 1).
func WithOverlap(frac float64) PSDOption {
	return func(cfg *psdConfig) {
		if frac >= 0 && frac < 1 {
			cfg.overlap = frac
		}
	}
}

// WithWindowType selects the segment window.
func WithWindowType(t window.Type) PSDOption {
	return func(cfg *psdConfig) {
		cfg.windowType = t
	}
}

// Welch estimates the one-sided PSD by averaging modified periodograms over
// overlapping windowed segments. Each segment has its mean removed before
// windowing. Defaults: 256-sample segments (or the whole signal if shorter),
// Hann window, 50% overlap.
func Welch(signal []float64, sampleRate float64, opts ...PSDOption) (PSD, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return PSD{}, ErrInvalidRate
	}

	if len(signal) == 0 {
		return PSD{}, ErrEmptySignal
	}

	cfg := psdConfig{
		segmentLen: 256,
		overlap:    0.5,
		windowType: window.TypeHann,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.segmentLen > len(signal) {
		cfg.segmentLen = len(signal)
	}

	segLen := cfg.segmentLen
	step := segLen - int(float64(segLen)*cfg.overlap)
	if step < 1 {
		step = 1
	}

	fftSize := nextPowerOf2(segLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return PSD{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	coeffs := window.Generate(cfg.windowType, segLen, window.WithPeriodic())
	winPower := window.PowerGain(coeffs) * float64(segLen)

	binCount := fftSize/2 + 1
	acc := make([]float64, binCount)
	inData := make([]complex128, fftSize)
	outData := make([]complex128, fftSize)

	segments := 0

	for start := 0; start+segLen <= len(signal); start += step {
		seg := signal[start : start+segLen]

		var mean float64
		for _, v := range seg {
			mean += v
		}
		mean /= float64(segLen)

		for i := range inData {
			inData[i] = 0
		}

		for i, v := range seg {
			inData[i] = complex((v-mean)*coeffs[i], 0)
		}

		if err := plan.Forward(outData, inData); err != nil {
			return PSD{}, fmt.Errorf("spectrum: fft: %w", err)
		}

		power := PowerBins(outData[:binCount])
		for i, p := range power {
			acc[i] += p
		}

		segments++
	}

	// Density scaling with one-sided doubling (DC and Nyquist excluded).
	scale := 1 / (sampleRate * winPower * float64(segments))
	for i := range acc {
		acc[i] *= scale
		if i != 0 && i != binCount-1 {
			acc[i] *= 2
		}
	}

	freqs := make([]float64, binCount)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return PSD{Frequencies: freqs, Power: acc}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
