package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specproj/gospectral/analysis"
	"github.com/specproj/gospectral/render"
	"github.com/specproj/gospectral/spectrum"
)

func testSpectrum() *spectrum.Spectrum {
	n := 50
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 1000 + float64(i)*10
		y[i] = 0.1 + float64(i%5)/20
	}
	return &spectrum.Spectrum{
		Title:   "test scan",
		X:       x,
		Y:       y,
		NPoints: n,
		XUnits:  "1/cm",
		YUnits:  spectrum.UnitAbsorbance,
	}
}

func TestSpectrumWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.png")

	if err := render.Spectrum(testSpectrum(), path, render.DefaultOptions()); err != nil {
		t.Fatalf("Spectrum render failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Rendered file is empty")
	}
}

func TestFitWritesFile(t *testing.T) {
	sample := testSpectrum()
	ref := testSpectrum()
	ref.Molform = "CO2"

	lib := analysis.NewLibrary([]*spectrum.Spectrum{ref})
	cfg := analysis.DefaultConfig()
	cfg.BaselineCorrection = false

	reports, err := analysis.Analyze([]*spectrum.Spectrum{sample}, lib, cfg)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	opts := render.DefaultOptions()
	opts.ShowConstituents = true

	path := filepath.Join(t.TempDir(), "fit.png")
	if err := render.Fit(reports[0], path, opts); err != nil {
		t.Fatalf("Fit render failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected output file: %v", err)
	}

	opts.PlotResiduals = true
	residPath := filepath.Join(t.TempDir(), "residuals.png")
	if err := render.Fit(reports[0], residPath, opts); err != nil {
		t.Fatalf("Residual render failed: %v", err)
	}
}
