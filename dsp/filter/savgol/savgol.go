// Package savgol implements Savitzky-Golay least-squares smoothing. The
// filter fits a low-order polynomial to a sliding window and evaluates it at
// the window center, which preserves slow trends far better than a moving
// average. It is symmetric, so the output is inherently zero-phase.
package savgol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow indicates an even or non-positive window length.
	ErrInvalidWindow = errors.New("savgol: window length must be odd and > 0")
	// ErrInvalidOrder indicates a polynomial order incompatible with the window.
	ErrInvalidOrder = errors.New("savgol: polynomial order must be >= 0 and < window length")
	// ErrShortSignal indicates a signal shorter than the window.
	ErrShortSignal = errors.New("savgol: signal shorter than window")
)

// Coefficients returns the central convolution kernel of the smoothing
// filter, indexed by window offset -m..m for window length 2m+1.
func Coefficients(window, order int) ([]float64, error) {
	p, err := projection(window, order)
	if err != nil {
		return nil, err
	}

	kernel := make([]float64, window)
	copy(kernel, p[0])

	return kernel, nil
}

// Smooth applies the filter over the whole signal. Interior samples use the
// central kernel; the first and last half-windows evaluate the polynomial
// fitted to the edge window at their own positions, so no padding artifacts
// are introduced.
func Smooth(signal []float64, window, order int) ([]float64, error) {
	p, err := projection(window, order)
	if err != nil {
		return nil, err
	}

	n := len(signal)
	if n < window {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortSignal, n, window)
	}

	m := window / 2
	out := make([]float64, n)

	// Interior: plain convolution with the central kernel.
	kernel := p[0]
	for i := m; i < n-m; i++ {
		var y float64
		for j := 0; j < window; j++ {
			y += kernel[j] * signal[i-m+j]
		}

		out[i] = y
	}

	// Edges: fit the polynomial to the first/last window once and evaluate it
	// at the uncovered positions.
	first := fitWindow(p, signal[:window])
	last := fitWindow(p, signal[n-window:])

	for e := 0; e < m; e++ {
		out[e] = evalPoly(first, float64(e-m))
		out[n-1-e] = evalPoly(last, float64(m-e))
	}

	return out, nil
}

// projection computes P = (A^T A)^{-1} A^T for the window's Vandermonde
// design matrix A[j][k] = (j-m)^k. Row k of P maps a window of samples to the
// k-th coefficient of the least-squares polynomial.
func projection(window, order int) ([][]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	if order < 0 || order >= window {
		return nil, fmt.Errorf("%w: order %d, window %d", ErrInvalidOrder, order, window)
	}

	m := window / 2
	terms := order + 1

	// A^T A and A^T as the augmented right-hand side.
	ata := make([][]float64, terms)
	at := make([][]float64, terms)

	for k := range ata {
		ata[k] = make([]float64, terms)
		at[k] = make([]float64, window)
	}

	for j := 0; j < window; j++ {
		t := float64(j - m)

		pow := 1.0
		powers := make([]float64, terms)
		for k := 0; k < terms; k++ {
			powers[k] = pow
			pow *= t
		}

		for k := 0; k < terms; k++ {
			at[k][j] = powers[k]
			for l := 0; l < terms; l++ {
				ata[k][l] += powers[k] * powers[l]
			}
		}
	}

	if err := solveInPlace(ata, at); err != nil {
		return nil, err
	}

	return at, nil
}

// solveInPlace solves ata * X = rhs for X by Gaussian elimination with
// partial pivoting, overwriting rhs with the solution rows.
func solveInPlace(ata, rhs [][]float64) error {
	n := len(ata)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(ata[r][col]) > abs(ata[pivot][col]) {
				pivot = r
			}
		}

		if ata[pivot][col] == 0 {
			return errors.New("savgol: singular design matrix")
		}

		ata[col], ata[pivot] = ata[pivot], ata[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		inv := 1 / ata[col][col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}

			f := ata[r][col] * inv
			for c := col; c < n; c++ {
				ata[r][c] -= f * ata[col][c]
			}

			for c := range rhs[r] {
				rhs[r][c] -= f * rhs[col][c]
			}
		}
	}

	for r := 0; r < n; r++ {
		inv := 1 / ata[r][r]
		for c := range rhs[r] {
			rhs[r][c] *= inv
		}
	}

	return nil
}

// fitWindow returns the polynomial coefficients fitted to one window of
// samples, lowest order first.
func fitWindow(p [][]float64, samples []float64) []float64 {
	coeffs := make([]float64, len(p))
	for k := range p {
		var c float64
		for j, s := range samples {
			c += p[k][j] * s
		}

		coeffs[k] = c
	}

	return coeffs
}

// evalPoly evaluates the polynomial at t relative to the window center.
func evalPoly(coeffs []float64, t float64) float64 {
	var y float64
	for k := len(coeffs) - 1; k >= 0; k-- {
		y = y*t + coeffs[k]
	}

	return y
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
