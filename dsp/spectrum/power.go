package spectrum

import "fmt"

// Band is a half-open frequency range [Low, High) in Hz.
type Band struct {
	Low  float64
	High float64
}

// BandPower is the integrated spectral power within one band.
type BandPower struct {
	Band  Band
	Power float64
}

// String formats the band the way result tables label it, e.g. "0.12-0.40Hz".
func (b Band) String() string {
	return fmt.Sprintf("%.2f-%.2fHz", b.Low, b.High)
}

// Power estimates the PSD of the signal and integrates it over each requested
// band.
func Power(signal []float64, sampleRate float64, bands []Band, opts ...PSDOption) ([]BandPower, error) {
	psd, err := Welch(signal, sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]BandPower, len(bands))
	for i, band := range bands {
		out[i] = BandPower{
			Band:  band,
			Power: Integrate(psd, band),
		}
	}

	return out, nil
}

// Integrate computes the trapezoidal integral of the density over the bins
// with band.Low <= f < band.High.
func Integrate(psd PSD, band Band) float64 {
	lo, hi := -1, -1

	for i, f := range psd.Frequencies {
		if f >= band.Low && f < band.High {
			if lo < 0 {
				lo = i
			}

			hi = i
		}
	}

	if lo < 0 || hi <= lo {
		return 0
	}

	var sum float64
	for i := lo; i < hi; i++ {
		df := psd.Frequencies[i+1] - psd.Frequencies[i]
		sum += 0.5 * (psd.Power[i] + psd.Power[i+1]) * df
	}

	return sum
}
