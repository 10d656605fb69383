package stats

import (
	"errors"
	"math"
)

// ErrNoSpread indicates data whose scale estimate is zero or undefined.
var ErrNoSpread = errors.New("stats: cannot standardize data without spread")

// Standardize centers and scales the data to zero mean and unit standard
// deviation (ddof=1).
func Standardize(data []float64) ([]float64, error) {
	return standardize(data, Mean(data), SD(data, 1))
}

// StandardizeRobust centers on the median and scales by the MAD, which
// tolerates outliers that would distort the classic z-score.
func StandardizeRobust(data []float64) ([]float64, error) {
	return standardize(data, Median(data), MAD(data))
}

func standardize(data []float64, center, scale float64) ([]float64, error) {
	if math.IsNaN(scale) || scale == 0 {
		return nil, ErrNoSpread
	}

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = (v - center) / scale
	}

	return out, nil
}
