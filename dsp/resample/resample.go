package resample

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRatio indicates an invalid up/down ratio.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// Quality controls default anti-aliasing filter settings.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

// Profile exposes default filter parameters for each quality mode.
type Profile struct {
	TapsPerPhase int
	CutoffScale  float64
	KaiserBeta   float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0}
	case QualityBest:
		return Profile{TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0}
	default:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
	maxDen       int
}

// Option configures the resampler.
type Option func(*config)

// WithQuality selects a predefined anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides taps per polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides normalized cutoff scaling in range (0, 1].
// 1.0 equals the theoretical anti-aliasing cutoff.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithMaxDenominator caps denominator size for rate-ratio approximation.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

func resolveConfig(opts []Option) config {
	cfg := config{
		quality: QualityBalanced,
		maxDen:  4096,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := QualityProfile(cfg.quality)
	if cfg.tapsPerPhase <= 0 {
		cfg.tapsPerPhase = p.TapsPerPhase
	}

	if cfg.cutoffScale <= 0 || cfg.cutoffScale > 1 {
		cfg.cutoffScale = p.CutoffScale
	}

	if cfg.kaiserBeta <= 0 {
		cfg.kaiserBeta = p.KaiserBeta
	}

	return cfg
}

// Resample converts input from inRate to outRate (Hz). The rate ratio is
// approximated by a rational factor; see [WithMaxDenominator].
func Resample(input []float64, inRate, outRate float64, opts ...Option) ([]float64, error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return nil, ErrInvalidRate
	}

	cfg := resolveConfig(opts)
	up, down := approximateRatio(outRate/inRate, cfg.maxDen)

	return Rational(input, up, down, opts...)
}

// Rational converts input using the exact conversion ratio up/down.
func Rational(input []float64, up, down int, opts ...Option) ([]float64, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	g := gcd(up, down)
	up /= g
	down /= g

	if up == 1 && down == 1 {
		out := make([]float64, len(input))
		copy(out, input)

		return out, nil
	}

	cfg := resolveConfig(opts)

	taps, err := designPrototype(up, down, cfg)
	if err != nil {
		return nil, err
	}

	if len(input) == 0 {
		return nil, nil
	}

	return convert(input, taps, up, down), nil
}

// convert evaluates the polyphase filter on the zero-stuffed upsampled input,
// centered on the prototype to compensate group delay:
//
//	y[j] = sum_n h[n] * xup[j*down - n + center]
//
// where xup[m] = x[m/up] when m is a multiple of up, and 0 otherwise. Only
// taps hitting real input samples contribute, so each output costs one
// polyphase branch.
func convert(input, taps []float64, up, down int) []float64 {
	n := len(input)
	nTaps := len(taps)
	center := (nTaps - 1) / 2

	outLen := (n*up + down - 1) / down
	out := make([]float64, outLen)

	for j := range out {
		base := j*down + center

		// First tap index aligned with an input sample: n ≡ base (mod up).
		first := base % up

		var y float64

		for k := first; k < nTaps; k += up {
			idx := (base - k) / up
			if idx < 0 {
				break
			}

			if idx >= n {
				continue
			}

			y += taps[k] * input[idx]
		}

		out[j] = y
	}

	return out
}
