// Package spectrum provides the infrared spectrum data model, file parsers,
// unit conversion, and baseline correction.
//
// A Spectrum holds parallel x (wavenumber) and y (intensity) arrays together
// with the metadata of its source file. Spectra are constructed by one of two
// parsers and never returned partially filled: a parse either yields a
// complete, validated Spectrum or an error.
//
// # Loading Spectra
//
// Reference spectra use the JCAMP-DX format published by the NIST Chemistry
// WebBook:
//
//	ref, err := spectrum.FromJDX("data/reference/CO2.jdx", nil)
//
// Sample spectra use flat two-column CSV (wavenumber, absorbance):
//
//	sample, err := spectrum.FromCSV("data/sample/scan.csv", spectrum.DefaultCSVOptions())
//
// # Absorbance
//
// Mixture fitting operates in absorbance units, where component spectra add
// linearly. YAbsorbance reads the y-values as absorbance without mutating the
// spectrum; ConvertToAbsorbance rewrites the spectrum in place and is
// idempotent. Transmittance converts via A = -log10(T); any other declared
// unit is an error.
//
// # Baseline Correction
//
// CorrectLinearBaseline removes linear drift from a sample spectrum by
// fitting a line between the mean absorbance of the two spectrum edges and
// subtracting it:
//
//	err := sample.CorrectLinearBaseline(spectrum.DefaultBaselineOptions())
//
// Baseline correction is meant for samples only; reference spectra are used
// as loaded.
package spectrum
