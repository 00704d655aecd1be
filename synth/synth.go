// Package synth generates synthetic mixture samples from reference spectra.
package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/specproj/gospectral/analysis"
	"github.com/specproj/gospectral/fit"
	"github.com/specproj/gospectral/spectrum"
)

var (
	// ErrEmptyMixture indicates a mixture with no components.
	ErrEmptyMixture = errors.New("synth: mixture has no components")
	// ErrUnknownGas indicates a mixture component absent from the library.
	ErrUnknownGas = errors.New("synth: unknown reference in mixture")
	// ErrNoOverlap indicates mixture references without a common x-range.
	ErrNoOverlap = errors.New("synth: mixture references share no overlapping x-range")
)

// Component is one gas in a synthetic mixture.
type Component struct {
	Name        string
	Coefficient float64
}

// Mixture is an ordered gas composition. Order only fixes the summation
// order, keeping generated samples bit-for-bit reproducible.
type Mixture []Component

// DefaultMixture returns the stock demonstration composition.
func DefaultMixture() Mixture {
	return Mixture{
		{"CO2", 0.65},
		{"H2O", 0.18},
		{"CO", 0.07},
		{"CH4", 0.04},
		{"C2H6", 0.02},
		{"N2O", 0.02},
		{"O3", 0.02},
	}
}

// Generate builds a synthetic absorbance sample on the common grid of the
// mixture's references: the grid starts at the largest first-x, ends at the
// smallest last-x, and steps by the smallest delta-x among them. Each
// reference is interpolated onto that grid and summed with its coefficient.
func Generate(lib *analysis.Library, mix Mixture) (*spectrum.Spectrum, error) {
	if len(mix) == 0 {
		return nil, ErrEmptyMixture
	}

	refs := make([]*spectrum.Spectrum, len(mix))
	for i, c := range mix {
		ref, ok := lib.Get(c.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGas, c.Name)
		}
		refs[i] = ref
	}

	firstX := refs[0].FirstX
	lastX := refs[0].LastX
	dx := refs[0].DeltaX
	for _, r := range refs[1:] {
		firstX = math.Max(firstX, r.FirstX)
		lastX = math.Min(lastX, r.LastX)
		dx = math.Min(dx, r.DeltaX)
	}
	if dx <= 0 || lastX < firstX {
		return nil, fmt.Errorf("%w: [%g, %g] step %g", ErrNoOverlap, firstX, lastX, dx)
	}

	n := int(math.Ceil((lastX + dx - firstX) / dx))
	x := make([]float64, n)
	for i := range x {
		x[i] = firstX + float64(i)*dx
	}

	y := make([]float64, n)
	for i, c := range mix {
		col, err := fit.Interpolate(x, refs[i])
		if err != nil {
			return nil, err
		}
		for j, v := range col {
			y[j] += c.Coefficient * v
		}
	}

	s := &spectrum.Spectrum{
		Title:   "synthetic_sample",
		X:       x,
		Y:       y,
		NPoints: n,
		XUnits:  "1/cm",
		YUnits:  spectrum.UnitAbsorbance,
		FirstX:  x[0],
		LastX:   x[n-1],
		DeltaX:  dx,
	}
	s.MinX, s.MaxX = x[0], x[n-1]
	if x[0] > x[n-1] {
		s.MinX, s.MaxX = x[n-1], x[0]
	}
	for i, v := range y {
		if i == 0 || v < s.MinY {
			s.MinY = v
		}
		if i == 0 || v > s.MaxY {
			s.MaxY = v
		}
	}
	return s, nil
}
