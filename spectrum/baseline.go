package spectrum

import "fmt"

// BaselineOptions holds options for linear baseline correction.
type BaselineOptions struct {
	Fraction  float64 // Fraction of points used at each edge
	MinPoints int     // Minimum points used at each edge
}

// DefaultBaselineOptions returns the default baseline correction settings.
func DefaultBaselineOptions() BaselineOptions {
	return BaselineOptions{Fraction: 0.20, MinPoints: 50}
}

// CorrectLinearBaseline removes linear baseline drift from the spectrum in
// place. The spectrum is first converted to absorbance. The mean absorbance
// of a window at each edge anchors a straight line through the first and
// last x-values, and that line is subtracted from every y-value.
//
// The edge windows may overlap on short spectra; that is accepted. Equal
// first and last x-values leave the slope undefined and fail with
// ErrDegenerateBaseline.
func (s *Spectrum) CorrectLinearBaseline(opts BaselineOptions) error {
	if err := s.ConvertToAbsorbance(); err != nil {
		return err
	}

	n := len(s.Y)
	if n == 0 || len(s.X) == 0 {
		return fmt.Errorf("%w in %q", ErrEmptyY, s.Title)
	}

	points := int(opts.Fraction * float64(n))
	if points < opts.MinPoints {
		points = opts.MinPoints
	}
	if points > n {
		points = n
	}

	x1, x2 := s.X[0], s.X[len(s.X)-1]
	if x1 == x2 {
		return fmt.Errorf("%w in %q", ErrDegenerateBaseline, s.Title)
	}

	y1 := mean(s.Y[:points])
	y2 := mean(s.Y[n-points:])

	slope := (y2 - y1) / (x2 - x1)
	intercept := y1 - slope*x1

	for i := range s.Y {
		s.Y[i] -= slope*s.X[i] + intercept
	}
	return nil
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
