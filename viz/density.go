package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-biosig/stats"
)

var hdiFill = color.RGBA{R: 70, G: 130, B: 180, A: 90}

// DensityPlot renders the kernel density estimate of the samples with the
// highest density interval at mass ci filled in.
func DensityPlot(x []float64, ci float64) (*plot.Plot, error) {
	xs, ys, err := stats.Density(x, 0)
	if err != nil {
		return nil, fmt.Errorf("viz: estimating density: %w", err)
	}

	low, high, err := stats.HDI(x, ci)
	if err != nil {
		return nil, fmt.Errorf("viz: locating interval: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Density with %.0f%% HDI", ci*100)
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Density"

	// Fill the density curve between the interval bounds.
	fill := plotter.XYs{{X: low, Y: 0}}
	for i := range xs {
		if xs[i] >= low && xs[i] <= high {
			fill = append(fill, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}

	fill = append(fill, plotter.XY{X: high, Y: 0})

	poly, err := plotter.NewPolygon(fill)
	if err != nil {
		return nil, fmt.Errorf("viz: filling interval: %w", err)
	}

	poly.Color = hdiFill
	p.Add(poly)

	xy := make(plotter.XYs, len(xs))
	for i := range xy {
		xy[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	line, err := plotter.NewLine(xy)
	if err != nil {
		return nil, fmt.Errorf("viz: plotting density: %w", err)
	}

	p.Add(line)

	return p, nil
}
