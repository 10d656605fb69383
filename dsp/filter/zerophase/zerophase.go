// Package zerophase applies IIR filter cascades forward and backward so the
// net result has zero phase shift. Features of the filtered signal stay
// aligned with the input, which matters when sample indices are compared
// across signals (e.g. heartbeats against respiration phases).
package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
	"github.com/cwbudde/algo-biosig/dsp/filter/design"
)

var (
	// ErrInvalidBand indicates band edges outside (0, nyquist) or in the
	// wrong order.
	ErrInvalidBand = errors.New("zerophase: invalid frequency band")
	// ErrNoSections indicates an empty coefficient cascade.
	ErrNoSections = errors.New("zerophase: empty cascade")
)

// Bandpass band-limits the signal to [lowHz, highHz] with a zero-phase
// Butterworth filter of the given order per edge.
func Bandpass(signal []float64, sampleRate, lowHz, highHz float64, order int) ([]float64, error) {
	if err := checkEdge(lowHz, sampleRate); err != nil {
		return nil, err
	}

	if err := checkEdge(highHz, sampleRate); err != nil {
		return nil, err
	}

	if lowHz >= highHz {
		return nil, fmt.Errorf("%w: low %g >= high %g", ErrInvalidBand, lowHz, highHz)
	}

	return Filter(signal, design.ButterworthBand(lowHz, highHz, order, sampleRate))
}

// Lowpass applies a zero-phase Butterworth lowpass at freq (Hz).
func Lowpass(signal []float64, sampleRate, freq float64, order int) ([]float64, error) {
	if err := checkEdge(freq, sampleRate); err != nil {
		return nil, err
	}

	return Filter(signal, design.ButterworthLP(freq, order, sampleRate))
}

// Highpass applies a zero-phase Butterworth highpass at freq (Hz).
func Highpass(signal []float64, sampleRate, freq float64, order int) ([]float64, error) {
	if err := checkEdge(freq, sampleRate); err != nil {
		return nil, err
	}

	return Filter(signal, design.ButterworthHP(freq, order, sampleRate))
}

// Filter runs the cascade forward over the signal, then backward, so phase
// distortion cancels. The signal is extended at both ends by odd reflection
// to suppress start-up transients; the extensions are stripped before
// returning.
func Filter(signal []float64, coeffs []biquad.Coefficients) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}

	n := len(signal)
	if n == 0 {
		return nil, nil
	}

	chain := biquad.NewChain(coeffs)

	padLen := 3 * (2*chain.Order() + 1)
	if padLen > n-1 {
		padLen = n - 1
	}

	work := make([]float64, padLen+n+padLen)
	for i := 0; i < padLen; i++ {
		work[i] = 2*signal[0] - signal[padLen-i]
	}

	copy(work[padLen:], signal)

	for i := 0; i < padLen; i++ {
		work[padLen+n+i] = 2*signal[n-1] - signal[n-2-i]
	}

	chain.ProcessBlock(work)
	reverse(work)
	chain.Reset()
	chain.ProcessBlock(work)
	reverse(work)

	out := make([]float64, n)
	copy(out, work[padLen:padLen+n])

	return out, nil
}

func checkEdge(freq, sampleRate float64) error {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return fmt.Errorf("%w: %g Hz at sample rate %g Hz", ErrInvalidBand, freq, sampleRate)
	}

	return nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
