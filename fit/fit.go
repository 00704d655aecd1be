// Package fit implements reference-spectrum mixture fitting.
package fit

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/specproj/gospectral/spectrum"
)

var (
	// ErrMissingRefNames indicates manual multipliers supplied without the
	// reference name list pairing them to spectra.
	ErrMissingRefNames = errors.New("fit: reference names must be provided when manual multipliers are used")
	// ErrMultiplierMismatch indicates multiplier and reference name lists of
	// different lengths.
	ErrMultiplierMismatch = errors.New("fit: reference names must have the same length as the multiplier list")
	// ErrUnknownRef indicates a named reference absent from the active set.
	ErrUnknownRef = errors.New("fit: unknown reference")
	// ErrNoReferences indicates an empty active reference set.
	ErrNoReferences = errors.New("fit: no reference spectra")
)

// Options selects the fitting mode and post-solve policy.
//
// When Multipliers is non-empty the fit is manual: each multiplier applies to
// the reference named at the same position in RefNames and is used verbatim,
// with no clamping and no goodness of fit. When Multipliers is empty the
// multipliers are solved by linear least squares.
type Options struct {
	Multipliers   []float64
	RefNames      []string
	ClampNegative bool
}

// Component pairs one reference spectrum with its fitted multiplier.
type Component struct {
	Ref        *spectrum.Spectrum
	Multiplier float64
}

// Result holds the outcome of one fit: the per-reference multipliers sorted
// by value descending (ties keep the original reference order), the combined
// fit curve on the sample grid, and R squared when the multipliers were
// solved rather than supplied.
type Result struct {
	Components []Component
	Combined   []float64
	R2         float64
	Solved     bool
}

// Fit decomposes the sample spectrum over the given references. The sample
// and references are read, never mutated. Validation of manual-multiplier
// options happens before any numeric work.
func Fit(sample *spectrum.Spectrum, refs []*spectrum.Spectrum, opts Options) (*Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	if len(opts.Multipliers) > 0 {
		return fitManual(sample, refs, opts)
	}
	return fitSolve(sample, refs, opts)
}

// ValidateOptions checks the manual-multiplier pairing without touching any
// spectra.
func ValidateOptions(opts Options) error {
	if len(opts.Multipliers) == 0 {
		return nil
	}
	if len(opts.RefNames) == 0 {
		return ErrMissingRefNames
	}
	if len(opts.Multipliers) != len(opts.RefNames) {
		return fmt.Errorf("%w: %d multipliers, %d names",
			ErrMultiplierMismatch, len(opts.Multipliers), len(opts.RefNames))
	}
	return nil
}

func fitManual(sample *spectrum.Spectrum, refs []*spectrum.Spectrum, opts Options) (*Result, error) {
	byName := make(map[string]*spectrum.Spectrum, len(refs))
	for _, r := range refs {
		byName[r.Molform] = r
	}

	res := &Result{Combined: make([]float64, len(sample.X))}
	for i, name := range opts.RefNames {
		ref, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
		}

		col, err := Interpolate(sample.X, ref)
		if err != nil {
			return nil, err
		}
		m := opts.Multipliers[i]
		for j, v := range col {
			res.Combined[j] += m * v
		}
		res.Components = append(res.Components, Component{Ref: ref, Multiplier: m})
	}

	sortComponents(res.Components)
	return res, nil
}

func fitSolve(sample *spectrum.Spectrum, refs []*spectrum.Spectrum, opts Options) (*Result, error) {
	if len(refs) == 0 {
		return nil, ErrNoReferences
	}

	sampleY, err := sample.YAbsorbance()
	if err != nil {
		return nil, err
	}
	n, k := len(sampleY), len(refs)

	// Design matrix: one column per reference, resampled onto the sample grid.
	cols := make([][]float64, k)
	a := mat.NewDense(n, k, nil)
	for j, ref := range refs {
		col, err := Interpolate(sample.X, ref)
		if err != nil {
			return nil, err
		}
		cols[j] = col
		a.SetCol(j, col)
	}
	b := mat.NewDense(n, 1, sampleY)

	// Minimize ||A*m - y|| via QR. A near-singular design matrix still
	// yields a usable solution, so mat.Condition is not fatal.
	var sol mat.Dense
	if err := sol.Solve(a, b); err != nil {
		if _, nearSingular := err.(mat.Condition); !nearSingular {
			return nil, fmt.Errorf("fit: least-squares solve failed: %w", err)
		}
	}

	multipliers := make([]float64, k)
	for j := range multipliers {
		multipliers[j] = sol.At(j, 0)
	}

	if opts.ClampNegative {
		for j, m := range multipliers {
			if m < 0 {
				multipliers[j] = 0
			}
		}
	}

	res := &Result{
		Combined: make([]float64, n),
		Solved:   true,
	}
	for j, col := range cols {
		for i, v := range col {
			res.Combined[i] += multipliers[j] * v
		}
		res.Components = append(res.Components, Component{Ref: refs[j], Multiplier: multipliers[j]})
	}

	// The solver reports no residual sum of squares, so recompute it
	// explicitly from the (possibly clamped) multipliers.
	ssRes := 0.0
	for i, v := range sampleY {
		d := v - res.Combined[i]
		ssRes += d * d
	}
	meanY := 0.0
	for _, v := range sampleY {
		meanY += v
	}
	meanY /= float64(n)
	ssTot := 0.0
	for _, v := range sampleY {
		d := v - meanY
		ssTot += d * d
	}
	res.R2 = 1 - ssRes/ssTot

	sortComponents(res.Components)
	return res, nil
}

func sortComponents(components []Component) {
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Multiplier > components[j].Multiplier
	})
}
