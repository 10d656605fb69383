package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant generates a constant-valued signal.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// HeartRate generates an instantaneous heart-rate signal around base beats
// per minute, sinusoidally modulated with the given depth at modHz.
func HeartRate(base, depth, modHz, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * modHz / sampleRate
	for i := range out {
		out[i] = base + depth*math.Sin(step*float64(i))
	}
	return out
}

// BreathPhases generates the per-sample phase label and completion fraction
// of steady breathing: each breath lasts breathSec seconds, split evenly
// between inspiration (label 1) and expiration (label 0), with the
// completion fraction restarting at 0 on every phase switch.
func BreathPhases(breathSec, sampleRate float64, length int) (phase, completion []float64) {
	phase = make([]float64, length)
	completion = make([]float64, length)

	half := int(breathSec * sampleRate / 2)
	if half < 1 {
		half = 1
	}

	for i := 0; i < length; i++ {
		pos := i % (2 * half)
		if pos < half {
			phase[i] = 1
			completion[i] = float64(pos) / float64(half)
		} else {
			phase[i] = 0
			completion[i] = float64(pos-half) / float64(half)
		}
	}

	return phase, completion
}

// RPeaks generates heartbeat sample indices below limit, cycling through
// the given inter-beat intervals (in samples).
func RPeaks(limit int, intervals ...int) []int {
	var peaks []int

	pos := 0
	for i := 0; pos < limit; i++ {
		peaks = append(peaks, pos)
		pos += intervals[i%len(intervals)]
	}

	return peaks
}
