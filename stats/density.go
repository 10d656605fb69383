package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrTooFewSamples indicates not enough data for a density estimate.
var ErrTooFewSamples = errors.New("stats: density estimation needs at least 2 samples")

// Density estimates the probability density of the samples with a Gaussian
// kernel (Silverman's bandwidth rule) evaluated at the given number of
// evenly spaced points spanning the data range, extended by three bandwidths
// on each side. points <= 0 selects the default of 100.
func Density(x []float64, points int) (xs, ys []float64, err error) {
	if len(x) < 2 {
		return nil, nil, ErrTooFewSamples
	}

	if points <= 0 {
		points = 100
	}

	h := silvermanBandwidth(x)
	if h <= 0 || math.IsNaN(h) {
		return nil, nil, ErrConstantInput
	}

	min := NaNMin(x)
	max := NaNMax(x)

	lo := min - 3*h
	hi := max + 3*h
	step := (hi - lo) / float64(points-1)

	xs = make([]float64, points)
	ys = make([]float64, points)

	norm := 1 / (float64(len(x)) * h * math.Sqrt(2*math.Pi))

	for i := range xs {
		g := lo + float64(i)*step
		xs[i] = g

		var sum float64
		for _, v := range x {
			z := (g - v) / h
			sum += math.Exp(-0.5 * z * z)
		}

		ys[i] = norm * sum
	}

	return xs, ys, nil
}

// silvermanBandwidth implements Silverman's rule of thumb:
// 0.9 * min(sd, iqr/1.34) * n^(-1/5).
func silvermanBandwidth(x []float64) float64 {
	sd := SD(x, 1)

	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	iqr := quantileSorted(sorted, 0.75) - quantileSorted(sorted, 0.25)

	spread := sd
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}

	return 0.9 * spread * math.Pow(float64(len(x)), -0.2)
}

// quantileSorted returns the linearly interpolated q-quantile of sorted data.
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
