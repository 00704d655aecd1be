// Package fit implements grid interpolation and reference-spectrum mixture
// fitting by linear least squares.
//
// The fitter expresses a sample spectrum as a weighted sum of reference
// spectra. Each reference is resampled onto the sample's wavenumber grid with
// Interpolate, the resampled curves form the columns of a design matrix, and
// the multipliers minimizing the sum of squared residuals are found with a QR
// solve:
//
//	res, err := fit.Fit(sample, refs, fit.Options{ClampNegative: true})
//	for _, c := range res.Components {
//		fmt.Printf("%s: %.3f\n", c.Ref.Molform, c.Multiplier)
//	}
//	fmt.Printf("R² = %.3f\n", res.R2)
//
// Least squares may assign small negative multipliers to counteract noise or
// imperfect baseline correction; ClampNegative clips those to zero after the
// solve, since a negative abundance has no physical meaning.
//
// Alternatively the caller supplies multipliers directly, paired by name to
// the references they apply to. Manual multipliers are used verbatim: no
// clamping, no R squared.
//
//	opts := fit.Options{
//		Multipliers: []float64{0.65, 0.18},
//		RefNames:    []string{"CO2", "H2O"},
//	}
package fit
