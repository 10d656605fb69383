package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-biosig/measure/rsa"
)

// PipelineRecorder captures the intermediate signals of an RSA analysis.
// It implements rsa.Observer; attach it with rsa.WithObserver and render
// the recorded stages afterwards.
type PipelineRecorder struct {
	stages []rsa.Stage
	sigs   map[rsa.Stage][]float64
}

// NewPipelineRecorder returns an empty recorder.
func NewPipelineRecorder() *PipelineRecorder {
	return &PipelineRecorder{sigs: make(map[rsa.Stage][]float64)}
}

// ObserveStage stores a copy of the stage signal.
func (r *PipelineRecorder) ObserveStage(stage rsa.Stage, samples []float64) {
	if _, seen := r.sigs[stage]; !seen {
		r.stages = append(r.stages, stage)
	}

	r.sigs[stage] = append([]float64(nil), samples...)
}

// Signal returns the recorded samples for a stage, or nil when the stage
// was not observed.
func (r *PipelineRecorder) Signal(stage rsa.Stage) []float64 {
	return r.sigs[stage]
}

// Plot renders every recorded stage as a time series at the pipeline's
// 2 Hz working rate.
func (r *PipelineRecorder) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "RSA Pipeline"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"

	for _, stage := range r.stages {
		samples := r.sigs[stage]

		xy := make(plotter.XYs, len(samples))
		for i, v := range samples {
			xy[i] = plotter.XY{X: float64(i) / 2, Y: v}
		}

		line, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("viz: plotting stage %v: %w", stage, err)
		}

		p.Add(line)
		p.Legend.Add(stage.String(), line)
	}

	return p, nil
}
