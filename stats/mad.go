package stats

import "math"

// madScale makes the MAD a consistent estimator of the standard deviation
// for normally distributed data (1 / Phi^-1(3/4)).
const madScale = 1.4826

// MAD returns the scaled median absolute deviation. Returns NaN for empty
// input.
func MAD(x []float64) float64 {
	med := Median(x)
	if math.IsNaN(med) {
		return math.NaN()
	}

	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}

	return madScale * Median(dev)
}
