package rsa

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biosig/dsp/filter/savgol"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
	"github.com/cwbudde/algo-biosig/dsp/resample"
	"github.com/cwbudde/algo-biosig/stats"
)

// Porges-Bohrer pipeline constants (Lewis et al., 2012). The heart-rate
// signal is brought to 2 Hz, detrended with a 21-point cubic smoothing
// filter, band-limited to the spontaneous respiration band and carved into
// 30-second epochs.
const (
	pbRate        = 2.0
	pbTrendWindow = 21
	pbTrendOrder  = 3
	pbBandLowHz   = 0.12
	pbBandHighHz  = 0.40
	pbBandOrder   = 2
	pbEpochSec    = 30
)

// PorgesBohrer computes the Porges-Bohrer RSA estimate of an instantaneous
// heart-rate signal: the mean natural-log variance of the respiration-band
// residual across 30-second epochs. Epoch variances use the sample
// convention (ddof=1); the trailing partial epoch is included, and epochs
// with a single sample are skipped since their sample variance is
// undefined. A constant epoch has zero variance, whose log contributes
// negative infinity to the mean.
func PorgesBohrer(heartRate []float64, samplingRate float64, obs Observer) (float64, error) {
	resampled, err := resample.Resample(heartRate, samplingRate, pbRate)
	if err != nil {
		return 0, fmt.Errorf("rsa: resampling heart rate: %w", err)
	}

	observe(obs, StageResampled, resampled)

	trend, err := savgol.Smooth(resampled, pbTrendWindow, pbTrendOrder)
	if err != nil {
		return 0, fmt.Errorf("rsa: estimating trend: %w", err)
	}

	observe(obs, StageTrend, trend)

	residual := make([]float64, len(resampled))
	for i, v := range resampled {
		residual[i] = v - trend[i]
	}

	observe(obs, StageDetrended, residual)

	filtered, err := zerophase.Bandpass(residual, pbRate, pbBandLowHz, pbBandHighHz, pbBandOrder)
	if err != nil {
		return 0, fmt.Errorf("rsa: band-limiting residual: %w", err)
	}

	observe(obs, StageBandLimited, filtered)

	return stats.Mean(epochLogVariances(filtered, int(pbEpochSec*pbRate))), nil
}

// epochLogVariances carves the signal into consecutive epochs of epochLen
// samples (the trailing partial epoch included) and returns the natural log
// of each epoch's sample variance. Single-sample epochs are skipped since
// their sample variance is undefined.
func epochLogVariances(signal []float64, epochLen int) []float64 {
	out := make([]float64, 0, (len(signal)+epochLen-1)/epochLen)

	for start := 0; start < len(signal); start += epochLen {
		end := start + epochLen
		if end > len(signal) {
			end = len(signal)
		}

		v := stats.Variance(signal[start:end], 1)
		if math.IsNaN(v) {
			continue
		}

		out = append(out, math.Log(v))
	}

	return out
}
