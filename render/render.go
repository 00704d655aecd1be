// Package render draws spectra and fit reports as static image files.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/specproj/gospectral/analysis"
	"github.com/specproj/gospectral/fit"
	"github.com/specproj/gospectral/spectrum"
)

// Options holds figure sizing and styling, mirroring the analysis plot
// settings.
type Options struct {
	Width                vg.Length
	Height               vg.Length
	SampleLineWidth      vg.Length
	FitLineWidth         vg.Length
	ConstituentLineWidth vg.Length
	ShowConstituents     bool
	PlotResiduals        bool
}

// DefaultOptions returns the default figure settings.
func DefaultOptions() Options {
	return Options{
		Width:                12 * vg.Inch,
		Height:               6 * vg.Inch,
		SampleLineWidth:      vg.Points(0.5),
		FitLineWidth:         vg.Points(0.2),
		ConstituentLineWidth: vg.Points(0.2),
	}
}

// Spectrum renders a single spectrum to the image file at path. The format
// follows the path's extension (.png, .svg, .pdf, ...).
func Spectrum(s *spectrum.Spectrum, path string, opts Options) error {
	p := newPlot(s.XUnits, s.YUnits)
	p.Title.Text = fmt.Sprintf("IR spectrum of %s", s.Title)

	line, err := plotter.NewLine(xys(s.X, s.Y))
	if err != nil {
		return err
	}
	line.Width = opts.SampleLineWidth
	p.Add(line)

	return p.Save(opts.Width, opts.Height, path)
}

// Fit renders an analysis report: the sample trace, the combined fit, and
// optionally the individual constituents or the residual spectrum.
func Fit(rep *analysis.Report, path string, opts Options) error {
	s := rep.Sample
	sampleY, err := s.YAbsorbance()
	if err != nil {
		return err
	}

	p := newPlot("Wavenumber (1/cm)", "Absorbance")
	red := color.RGBA{R: 200, A: 255}

	if opts.PlotResiduals {
		p.Title.Text = fmt.Sprintf("Residuals of IR spectrum comparison of %s", s.Title)

		residual := rep.Residual
		if residual == nil {
			residual = make([]float64, len(sampleY))
			for i := range sampleY {
				residual[i] = sampleY[i] - rep.Fit.Combined[i]
			}
		}
		line, err := plotter.NewLine(xys(s.X, residual))
		if err != nil {
			return err
		}
		line.Width = opts.SampleLineWidth
		line.Color = red
		p.Add(line)
		p.Legend.Add("Residuals", line)

		return p.Save(opts.Width, opts.Height, path)
	}

	p.Title.Text = fmt.Sprintf("IR spectrum comparison of %s", s.Title)

	sampleLine, err := plotter.NewLine(xys(s.X, sampleY))
	if err != nil {
		return err
	}
	sampleLine.Width = opts.SampleLineWidth
	sampleLine.Color = color.Black
	p.Add(sampleLine)
	p.Legend.Add(fmt.Sprintf("Sample: %s", s.Title), sampleLine)

	if opts.ShowConstituents {
		for i, c := range rep.Fit.Components {
			ys, err := fit.Interpolate(s.X, c.Ref)
			if err != nil {
				return err
			}
			for j := range ys {
				ys[j] *= c.Multiplier
			}
			line, err := plotter.NewLine(xys(s.X, ys))
			if err != nil {
				return err
			}
			line.Width = opts.ConstituentLineWidth
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(fmt.Sprintf("Reference: %s ×%.2f", c.Ref.Molform, c.Multiplier), line)
		}
	}

	fitLine, err := plotter.NewLine(xys(s.X, rep.Fit.Combined))
	if err != nil {
		return err
	}
	fitLine.Width = opts.FitLineWidth
	fitLine.Color = red
	p.Add(fitLine)
	label := "Combined fit"
	if rep.Fit.Solved {
		label = fmt.Sprintf("Combined fit (R² = %.3f)", rep.Fit.R2)
	}
	p.Legend.Add(label, fitLine)

	return p.Save(opts.Width, opts.Height, path)
}

// newPlot builds a plot with the spectroscopy convention of a descending
// wavenumber axis.
func newPlot(xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
