// Package render produces static figures from spectra and fit reports.
//
// All rendering goes through gonum.org/v1/plot; the output format follows the
// file extension passed to each function. The wavenumber axis is drawn
// descending, as spectroscopists expect.
//
//	err := render.Fit(report, "mix_fit.png", render.DefaultOptions())
package render
