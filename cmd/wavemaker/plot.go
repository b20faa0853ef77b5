package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-wavemaker/jonswap"
)

// savePlot renders the spectral density over (0, hi] to a PNG.
func savePlot(path string, params jonswap.Params, hi, step float64) error {
	var pts plotter.XYs
	for w := step; w <= hi; w += step {
		d, err := params.Density(w)
		if err != nil {
			return err
		}

		pts = append(pts, plotter.XY{X: w, Y: d})
	}

	p := plot.New()
	p.Title.Text = "JONSWAP spectral density"
	p.X.Label.Text = "w [rad/s]"
	p.Y.Label.Text = "S(w) [m²·s]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}

	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
