// Package gospectral provides gas-phase infrared spectrum decomposition.
//
// GoSpectral estimates the composition of a gas mixture from an infrared
// absorbance or transmittance scan by expressing the measured spectrum as a
// linear combination of known pure-substance reference spectra. The
// multipliers of that combination are found by an unconstrained linear
// least-squares fit; absorbance is additive across mixture components, which
// is what makes the linear decomposition physically meaningful.
//
// # Features
//
//   - JCAMP-DX (.jdx) reference spectrum parsing with validated metadata
//   - Two-column CSV sample spectrum parsing
//   - Transmittance to absorbance conversion
//   - Linear baseline-drift correction for sample spectra
//   - Piecewise-linear resampling of references onto the sample grid
//   - Least-squares mixture fitting with optional negative-multiplier clamping
//   - Goodness of fit (R squared) and residual spectra
//   - Synthetic mixture sample generation
//   - Static PNG plots of spectra and fit overlays
//
// # Quick Start
//
// Fit a sample against a directory of references:
//
//	cfg := analysis.DefaultConfig()
//	lib, _ := analysis.LoadLibrary(cfg.RefDir, cfg)
//	sample, _ := spectrum.FromCSV("sample.csv", spectrum.CSVOptions{HeaderSize: cfg.CSVHeaderSize})
//	reports, _ := analysis.Analyze([]*spectrum.Spectrum{sample}, lib, cfg)
//	for _, c := range reports[0].Fit.Components {
//		fmt.Printf("%s: %.3f\n", c.Ref.Molform, c.Multiplier)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - spectrum: the spectrum data model, parsers, and baseline correction
//   - fit: grid interpolation and the least-squares reference fitter
//   - analysis: configuration, reference library loading, and orchestration
//   - synth: synthetic mixture sample generation
//   - render: static plot output
//
// Reference spectra in JCAMP-DX form are published by the NIST Chemistry
// WebBook (https://webbook.nist.gov/); retrieval is left to the user.
package gospectral
