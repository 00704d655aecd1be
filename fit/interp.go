package fit

import (
	"sort"

	"github.com/specproj/gospectral/spectrum"
)

// Interpolate resamples the reference spectrum's absorbance curve onto
// targetX using piecewise-linear interpolation. Target positions outside the
// reference's x-range yield exactly 0.0 rather than an extrapolation.
//
// The reference grid must be monotonic; that is assumed, not verified.
// Descending grids (negative delta-x files) are handled.
func Interpolate(targetX []float64, ref *spectrum.Spectrum) ([]float64, error) {
	ys, err := ref.YAbsorbance()
	if err != nil {
		return nil, err
	}

	xs := ref.X
	if len(xs) > 1 && xs[0] > xs[len(xs)-1] {
		xs, ys = reversed(xs), reversed(ys)
	}

	out := make([]float64, len(targetX))
	for i, x := range targetX {
		out[i] = interpAt(xs, ys, x)
	}
	return out, nil
}

func interpAt(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 || x < xs[0] || x > xs[n-1] {
		return 0.0
	}

	j := sort.SearchFloat64s(xs, x)
	if j == 0 {
		return ys[0]
	}

	x0, x1 := xs[j-1], xs[j]
	if x1 == x0 {
		return ys[j]
	}
	t := (x - x0) / (x1 - x0)
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

func reversed(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v
	}
	return out
}
