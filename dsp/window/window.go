// Package window provides the window functions used for spectral estimation.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of the
// symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	denom := float64(length - 1)
	if cfg.periodic {
		denom = float64(length)
	}

	for n := range out {
		x := 2 * math.Pi * float64(n) / denom

		switch t {
		case TypeHann:
			out[n] = 0.5 - 0.5*math.Cos(x)
		case TypeHamming:
			out[n] = 0.54 - 0.46*math.Cos(x)
		case TypeBlackman:
			out[n] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
		default:
			out[n] = 1
		}
	}

	return out
}

// Apply multiplies samples by the window coefficients in-place.
// Both slices must have the same length.
func Apply(samples, coeffs []float64) {
	vecmath.MulBlockInPlace(samples, coeffs)
}

// CoherentGain returns the mean of the window coefficients. A rectangular
// window has coherent gain 1.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var sum float64
	for _, w := range coeffs {
		sum += w
	}

	return sum / float64(len(coeffs))
}

// PowerGain returns the mean of the squared window coefficients. This is the
// normalization factor for power spectral density estimates.
func PowerGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var sumSq float64
	for _, w := range coeffs {
		sumSq += w * w
	}

	return sumSq / float64(len(coeffs))
}
