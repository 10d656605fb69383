package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean. Returns NaN for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range x {
		sum += v
	}

	return sum / float64(len(x))
}

// Variance returns the variance with the given delta degrees of freedom
// (ddof=0 population, ddof=1 sample). Returns NaN when fewer than ddof+1
// values are present.
func Variance(x []float64, ddof int) float64 {
	n := len(x)
	if n <= ddof {
		return math.NaN()
	}

	mean := Mean(x)

	var sumSq float64
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}

	return sumSq / float64(n-ddof)
}

// SD returns the standard deviation with the given delta degrees of freedom.
func SD(x []float64, ddof int) float64 {
	return math.Sqrt(Variance(x, ddof))
}

// Median returns the middle value (mean of the two middle values for even
// lengths). Returns NaN for empty input.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// NaNMean returns the mean over non-NaN values. Returns NaN when no value is
// defined.
func NaNMean(x []float64) float64 {
	var (
		sum float64
		n   int
	)

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		sum += v
		n++
	}

	if n == 0 {
		return math.NaN()
	}

	return sum / float64(n)
}

// NaNSD returns the standard deviation over non-NaN values with the given
// delta degrees of freedom.
func NaNSD(x []float64, ddof int) float64 {
	mean := NaNMean(x)
	if math.IsNaN(mean) {
		return math.NaN()
	}

	var (
		sumSq float64
		n     int
	)

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		d := v - mean
		sumSq += d * d
		n++
	}

	if n <= ddof {
		return math.NaN()
	}

	return math.Sqrt(sumSq / float64(n-ddof))
}

// CountNaN returns the number of NaN entries.
func CountNaN(x []float64) int {
	count := 0

	for _, v := range x {
		if math.IsNaN(v) {
			count++
		}
	}

	return count
}

// NaNMin and NaNMax return the extrema over non-NaN values; NaN when no
// value is defined.
func NaNMin(x []float64) float64 {
	min := math.NaN()

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		if math.IsNaN(min) || v < min {
			min = v
		}
	}

	return min
}

// NaNMax returns the maximum over non-NaN values; NaN when no value is
// defined.
func NaNMax(x []float64) float64 {
	max := math.NaN()

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		if math.IsNaN(max) || v > max {
			max = v
		}
	}

	return max
}
