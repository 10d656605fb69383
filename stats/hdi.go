package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrWindowTooSmall indicates that ci (or the sample count) is too small for
// a meaningful interval.
var ErrWindowTooSmall = errors.New("stats: hdi window smaller than 2 points")

// HDI computes the highest density interval of the sample distribution: the
// narrowest window over the sorted samples that covers ceil(ci*n) points.
// Unlike equal-tailed intervals, it always contains the distribution mode(s).
//
// Among windows of equal width, the first one in scan order (lowest start
// index) wins.
func HDI(x []float64, ci float64) (low, high float64, err error) {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	windowSize := int(math.Ceil(ci * float64(len(sorted))))
	if windowSize < 2 {
		return 0, 0, fmt.Errorf("%w: ci %g over %d samples", ErrWindowTooSmall, ci, len(x))
	}

	if windowSize >= len(sorted) {
		return sorted[0], sorted[len(sorted)-1], nil
	}

	bestStart := 0
	bestWidth := math.Inf(1)

	for i := 0; i+windowSize <= len(sorted); i++ {
		width := sorted[i+windowSize-1] - sorted[i]
		if width < bestWidth {
			bestWidth = width
			bestStart = i
		}
	}

	return sorted[bestStart], sorted[bestStart+windowSize-1], nil
}
