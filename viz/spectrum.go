package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-biosig/dsp/spectrum"
)

var bandFill = color.RGBA{R: 255, G: 165, B: 0, A: 70}

// PSDPlot renders a power spectral density as a line plot with the given
// frequency bands shaded.
func PSDPlot(psd spectrum.PSD, bands []spectrum.Band) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Power Spectral Density"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Power"

	var peak float64
	for _, v := range psd.Power {
		if v > peak {
			peak = v
		}
	}

	for _, band := range bands {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: band.Low, Y: 0},
			{X: band.High, Y: 0},
			{X: band.High, Y: peak},
			{X: band.Low, Y: peak},
		})
		if err != nil {
			return nil, fmt.Errorf("viz: shading band %v: %w", band, err)
		}

		poly.Color = bandFill
		p.Add(poly)
	}

	xy := make(plotter.XYs, len(psd.Frequencies))
	for i := range xy {
		xy[i] = plotter.XY{X: psd.Frequencies[i], Y: psd.Power[i]}
	}

	line, err := plotter.NewLine(xy)
	if err != nil {
		return nil, fmt.Errorf("viz: plotting spectrum: %w", err)
	}

	p.Add(line)

	return p, nil
}
