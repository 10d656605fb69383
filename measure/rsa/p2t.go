package rsa

import (
	"math"

	"github.com/cwbudde/algo-biosig/stats"
)

// P2T holds the peak-to-trough RSA estimate: per breath cycle, the spread
// between the longest and shortest inter-beat interval.
type P2T struct {
	// Values is the RSA estimate per cycle in seconds. Cycles with fewer
	// than two inter-beat intervals carry NaN.
	Values []float64

	// Mean is the average over the defined cycle values.
	Mean float64

	// MeanLog is the natural logarithm of Mean.
	MeanLog float64

	// Variability is the sample standard deviation of the defined values.
	Variability float64

	// Undefined counts the cycles whose estimate is NaN.
	Undefined int
}

// PeakToTrough measures RSA cycle by cycle. Each pair of consecutive
// inspiration onsets [onset_i, onset_i+1) frames one cycle; the R-peaks
// inside it yield inter-beat intervals, and the cycle's estimate is the
// longest minus the shortest interval. A cycle with fewer than two
// intervals has no defined spread and contributes NaN.
func PeakToTrough(onsets, rpeaks []int, samplingRate float64) P2T {
	var p P2T

	for i := 0; i+1 < len(onsets); i++ {
		p.Values = append(p.Values, cycleSpread(onsets[i], onsets[i+1], rpeaks, samplingRate))
	}

	p.Mean = stats.NaNMean(p.Values)
	p.MeanLog = math.Log(p.Mean)
	p.Variability = stats.NaNSD(p.Values, 1)
	p.Undefined = stats.CountNaN(p.Values)

	return p
}

// cycleSpread returns max-min of the inter-beat intervals between the
// R-peaks in [start, end), or NaN when fewer than two intervals exist.
func cycleSpread(start, end int, rpeaks []int, samplingRate float64) float64 {
	var prev int

	count := 0
	minIv := math.Inf(1)
	maxIv := math.Inf(-1)

	for _, peak := range rpeaks {
		if peak < start || peak >= end {
			continue
		}

		if count > 0 {
			iv := float64(peak-prev) / samplingRate
			if iv < minIv {
				minIv = iv
			}

			if iv > maxIv {
				maxIv = iv
			}
		}

		prev = peak
		count++
	}

	// count peaks yield count-1 intervals; the spread needs at least two.
	if count < 3 {
		return math.NaN()
	}

	return maxIv - minIv
}
