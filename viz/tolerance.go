package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// ErrEmptySweep indicates a tolerance sweep without candidates.
var ErrEmptySweep = errors.New("viz: empty tolerance sweep")

// ToleranceSweepPlot renders approximate entropy against candidate
// tolerances and marks the maximizing candidate, as produced by
// complexity.ToleranceSweep.
func ToleranceSweepPlot(rs, apens []float64) (*plot.Plot, error) {
	if len(rs) == 0 || len(rs) != len(apens) {
		return nil, ErrEmptySweep
	}

	p := plot.New()
	p.Title.Text = "Tolerance Selection"
	p.X.Label.Text = "r"
	p.Y.Label.Text = "ApEn"

	xy := make(plotter.XYs, len(rs))

	best := 0
	for i := range rs {
		xy[i] = plotter.XY{X: rs[i], Y: apens[i]}

		if apens[i] > apens[best] {
			best = i
		}
	}

	line, points, err := plotter.NewLinePoints(xy)
	if err != nil {
		return nil, fmt.Errorf("viz: plotting sweep: %w", err)
	}

	p.Add(line, points)

	marker, err := plotter.NewScatter(plotter.XYs{{X: rs[best], Y: apens[best]}})
	if err != nil {
		return nil, fmt.Errorf("viz: marking optimum: %w", err)
	}

	p.Add(marker)

	return p, nil
}
