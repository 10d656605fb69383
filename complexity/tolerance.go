package complexity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-biosig/stats"
)

// Tolerance selection methods.
const (
	// MethodMaxApEn sweeps candidate tolerances and returns the one that
	// maximizes approximate entropy (Lu et al., 2008).
	MethodMaxApEn ToleranceMethod = iota

	// MethodTraditional returns the conventional 0.2 standard deviations.
	MethodTraditional
)

// ToleranceMethod selects how OptimalTolerance picks r.
type ToleranceMethod int

var (
	// ErrConstantSignal indicates a signal without spread, for which no
	// tolerance is meaningful.
	ErrConstantSignal = errors.New("complexity: constant signal has no tolerance")

	// ErrShortSignal indicates a signal too short to embed at the requested
	// dimension and delay.
	ErrShortSignal = errors.New("complexity: signal too short")

	// ErrUnknownMethod indicates an unrecognized tolerance method.
	ErrUnknownMethod = errors.New("complexity: unknown tolerance method")
)

// Candidate tolerance grid: k * SD for k in 0.02, 0.04, ... 0.78.
const (
	sweepStart = 0.02
	sweepStop  = 0.8
	sweepStep  = 0.02
)

// OptimalTolerance estimates the similarity threshold r for entropy measures
// of the signal. delay and dimension default to 1 and 2 when non-positive.
func OptimalTolerance(signal []float64, delay, dimension int, method ToleranceMethod) (float64, error) {
	if delay <= 0 {
		delay = 1
	}

	if dimension <= 0 {
		dimension = 2
	}

	sd := stats.SD(signal, 1)
	if math.IsNaN(sd) || sd == 0 {
		return 0, ErrConstantSignal
	}

	switch method {
	case MethodTraditional:
		return 0.2 * sd, nil
	case MethodMaxApEn:
		rs, apens, err := ToleranceSweep(signal, delay, dimension)
		if err != nil {
			return 0, err
		}

		best := 0
		for i, v := range apens {
			if v > apens[best] {
				best = i
			}
		}

		return rs[best], nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, method)
	}
}

// ToleranceSweep evaluates approximate entropy over the candidate tolerance
// grid and returns the tolerances alongside their ApEn values, e.g. for
// plotting the selection curve. delay and dimension default to 1 and 2 when
// non-positive.
func ToleranceSweep(signal []float64, delay, dimension int) (rs, apens []float64, err error) {
	if delay <= 0 {
		delay = 1
	}

	if dimension <= 0 {
		dimension = 2
	}

	if len(signal)-dimension*delay < 1 {
		return nil, nil, fmt.Errorf("%w: %d samples for dimension %d delay %d",
			ErrShortSignal, len(signal), dimension, delay)
	}

	sd := stats.SD(signal, 1)
	if math.IsNaN(sd) || sd == 0 {
		return nil, nil, ErrConstantSignal
	}

	for k := sweepStart; k < sweepStop-sweepStep/2; k += sweepStep {
		rs = append(rs, k*sd)
	}

	apens = make([]float64, len(rs))
	for i, r := range rs {
		apens[i] = ApproximateEntropy(signal, dimension, delay, r)
	}

	return rs, apens, nil
}
