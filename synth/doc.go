// Package synth builds synthetic gas-mixture samples from reference spectra.
//
// A synthetic sample is the coefficient-weighted sum of reference absorbance
// curves on their common wavenumber grid. It is useful for exercising the
// fitter against a known ground-truth composition:
//
//	mix := synth.Mixture{{"CO2", 0.65}, {"H2O", 0.18}}
//	sample, err := synth.Generate(lib, mix)
//	if err == nil {
//		err = sample.SaveCSV("data/sample/synthetic_sample.csv")
//	}
package synth
