package complexity

import "math"

// ApproximateEntropy computes the approximate entropy ApEn(dim, r) of the
// signal. Template vectors of length dim are built with the given sample
// delay and compared under the Chebyshev (maximum coordinate) distance;
// self-matches are included, so the estimate is always finite. The result is
// phi(dim) - phi(dim+1).
//
// Returns NaN when the signal is too short to embed at dimension dim+1.
func ApproximateEntropy(signal []float64, dim, delay int, r float64) float64 {
	if dim < 1 || delay < 1 || r < 0 {
		return math.NaN()
	}

	if len(signal)-dim*delay < 1 {
		return math.NaN()
	}

	return phi(signal, dim, delay, r) - phi(signal, dim+1, delay, r)
}

// phi returns the mean log fraction of template vectors of length m within
// tolerance r of each other.
func phi(signal []float64, m, delay int, r float64) float64 {
	count := len(signal) - (m-1)*delay

	var sum float64

	for i := 0; i < count; i++ {
		matches := 0

		for j := 0; j < count; j++ {
			if chebyshevWithin(signal, i, j, m, delay, r) {
				matches++
			}
		}

		sum += math.Log(float64(matches) / float64(count))
	}

	return sum / float64(count)
}

// chebyshevWithin reports whether the m-point templates starting at i and j
// stay within distance r in every coordinate.
func chebyshevWithin(signal []float64, i, j, m, delay int, r float64) bool {
	for k := 0; k < m; k++ {
		d := signal[i+k*delay] - signal[j+k*delay]
		if d < 0 {
			d = -d
		}

		if d > r {
			return false
		}
	}

	return true
}
