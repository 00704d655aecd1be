package spectrum

import (
	"errors"
	"math"
	"testing"
)

func driftSpectrum(n int, slope, offset float64) *Spectrum {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 1000 + float64(i)
		y[i] = slope*x[i] + offset
	}
	return &Spectrum{Title: "drift", X: x, Y: y, NPoints: n, YUnits: UnitAbsorbance}
}

func TestCorrectLinearBaselineConstantOffset(t *testing.T) {
	s := driftSpectrum(200, 0, 0.75)

	if err := s.CorrectLinearBaseline(DefaultBaselineOptions()); err != nil {
		t.Fatalf("Baseline correction failed: %v", err)
	}
	for i, v := range s.Y {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("Constant offset should be removed exactly, Y[%d]=%v", i, v)
		}
	}
}

func TestCorrectLinearBaselineDrift(t *testing.T) {
	opts := DefaultBaselineOptions()
	n := 400
	s := driftSpectrum(n, 0.002, 0.3)

	// Expected edge-window fit, computed from the pre-correction data.
	points := int(opts.Fraction * float64(n))
	if points < opts.MinPoints {
		points = opts.MinPoints
	}
	before1 := mean(s.Y[:points])
	before2 := mean(s.Y[n-points:])
	x1, x2 := s.X[0], s.X[n-1]
	slope := (before2 - before1) / (x2 - x1)
	intercept := before1 - slope*x1

	if err := s.CorrectLinearBaseline(opts); err != nil {
		t.Fatalf("Baseline correction failed: %v", err)
	}

	// Every point should have moved by exactly the fitted line.
	fresh := driftSpectrum(n, 0.002, 0.3)
	for i := range s.Y {
		want := fresh.Y[i] - (slope*fresh.X[i] + intercept)
		if math.Abs(s.Y[i]-want) > 1e-12 {
			t.Fatalf("Y[%d]: expected %v, got %v", i, want, s.Y[i])
		}
	}

	// The edge means move toward the fitted line's endpoints: the residual
	// drift across the edges shrinks by orders of magnitude.
	after1 := mean(s.Y[:points])
	after2 := mean(s.Y[n-points:])
	if math.Abs(after2-after1) > math.Abs(before2-before1)*1e-6 {
		t.Errorf("Edge means still drift after correction: before %v, after %v",
			before2-before1, after2-after1)
	}
}

func TestCorrectLinearBaselineConvertsToAbsorbance(t *testing.T) {
	n := 120
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = 0.5 // transmittance
	}
	s := &Spectrum{Title: "t", X: x, Y: y, NPoints: n, YUnits: UnitTransmittance}

	if err := s.CorrectLinearBaseline(DefaultBaselineOptions()); err != nil {
		t.Fatalf("Baseline correction failed: %v", err)
	}
	if s.YUnits != UnitAbsorbance {
		t.Errorf("Spectrum should be in absorbance after correction, got %q", s.YUnits)
	}
	// Constant transmittance converts to a constant absorbance, which the
	// correction then removes completely.
	for i, v := range s.Y {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("Y[%d]: expected 0 after correction, got %v", i, v)
		}
	}
}

func TestCorrectLinearBaselineMinPointsOverlap(t *testing.T) {
	// 60 points with MinPoints=50: the edge windows overlap. Accepted.
	s := driftSpectrum(60, 0, 1.0)

	if err := s.CorrectLinearBaseline(DefaultBaselineOptions()); err != nil {
		t.Fatalf("Overlapping windows should be accepted: %v", err)
	}
}

func TestCorrectLinearBaselineDegenerateX(t *testing.T) {
	s := &Spectrum{
		Title:   "flat-x",
		X:       []float64{5, 5, 5},
		Y:       []float64{1, 2, 3},
		NPoints: 3,
		YUnits:  UnitAbsorbance,
	}

	err := s.CorrectLinearBaseline(BaselineOptions{Fraction: 0.5, MinPoints: 1})
	if !errors.Is(err, ErrDegenerateBaseline) {
		t.Fatalf("Expected ErrDegenerateBaseline, got %v", err)
	}
}
