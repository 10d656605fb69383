package stats

import (
	"errors"
	"math"
)

// ErrConstantInput indicates that the data has no spread to rescale.
var ErrConstantInput = errors.New("stats: constant input cannot be rescaled")

// Rescale linearly maps data from its own [min, max] onto [lo, hi]. NaN
// entries are ignored when determining the source range and pass through
// unchanged.
func Rescale(data []float64, lo, hi float64) ([]float64, error) {
	min := NaNMin(data)
	max := NaNMax(data)

	if math.IsNaN(min) || min == max {
		return nil, ErrConstantInput
	}

	scale := (hi - lo) / (max - min)

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = scale*(v-min) + lo
	}

	return out, nil
}
