// Package analysis orchestrates gas-mixture composition estimation: it loads
// the reference library and sample spectra, applies baseline correction, and
// runs the reference fitter over each sample in turn.
//
// The package is the only part of the core coupled to presentation: every
// Report it produces carries what a renderer or CLI needs (the corrected
// sample, the ordered multipliers, the combined fit curve, and optionally the
// residual curve), and nothing else.
//
// A whole batch run with defaults:
//
//	cfg := analysis.DefaultConfig()
//	reports, err := analysis.Run(cfg)
//
// All settings travel in an explicit Config value; there is no package-level
// state, so concurrent test runs and repeated analyses stay deterministic.
// Reference spectra are loaded once per run and treated as read-only; batch
// samples are processed strictly sequentially.
package analysis
