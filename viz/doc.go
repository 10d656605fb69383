// Package viz renders diagnostic plots for the analysis packages: power
// spectra with shaded frequency bands, sample densities with their highest
// density interval, tolerance selection curves and the intermediate signals
// of the RSA pipeline. It is an optional layer; the numeric packages never
// depend on it.
package viz
