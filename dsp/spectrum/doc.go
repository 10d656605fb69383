// Package spectrum estimates power spectral densities and band powers.
//
// The FFT itself is delegated to an external backend; this package handles
// segmenting, windowing, averaging (Welch's method), and integration of the
// resulting density over frequency bands.
package spectrum
