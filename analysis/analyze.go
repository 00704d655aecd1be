package analysis

import (
	"fmt"

	"github.com/specproj/gospectral/fit"
	"github.com/specproj/gospectral/spectrum"
)

// Report holds the analysis outcome for one sample: the (possibly
// baseline-corrected) sample itself, the fit result, and the residual curve
// when requested by the configuration.
type Report struct {
	Sample   *spectrum.Spectrum
	Fit      *fit.Result
	Residual []float64
}

// Analyze fits each sample against the library's active reference set,
// strictly sequentially. Samples are corrected and converted in place;
// references are read-only and reused across samples.
func Analyze(samples []*spectrum.Spectrum, lib *Library, cfg Config) ([]*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	active := lib.All()
	if len(cfg.SelectedRefs) > 0 {
		selected := make(map[string]bool, len(cfg.SelectedRefs))
		for _, name := range cfg.SelectedRefs {
			selected[name] = true
		}
		var filtered []*spectrum.Spectrum
		for _, r := range active {
			if selected[r.Molform] {
				filtered = append(filtered, r)
			}
		}
		active = filtered
	}

	reports := make([]*Report, 0, len(samples))
	for _, s := range samples {
		if cfg.BaselineCorrection {
			if err := s.CorrectLinearBaseline(cfg.baselineOptions()); err != nil {
				return nil, fmt.Errorf("baseline correction of %q: %w", s.Title, err)
			}
		}

		res, err := fit.Fit(s, active, cfg.fitOptions())
		if err != nil {
			return nil, fmt.Errorf("fitting %q: %w", s.Title, err)
		}

		rep := &Report{Sample: s, Fit: res}
		if cfg.PlotResiduals {
			ya, err := s.YAbsorbance()
			if err != nil {
				return nil, err
			}
			rep.Residual = make([]float64, len(ya))
			for i := range ya {
				rep.Residual[i] = ya[i] - res.Combined[i]
			}
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// Run performs a full batch analysis: validate the configuration, load the
// reference library and every sample under the configured directories, and
// analyze each sample in turn. Validation failures surface before any file
// is read.
func Run(cfg Config) ([]*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib, err := LoadLibrary(cfg.RefDir, cfg)
	if err != nil {
		return nil, err
	}
	samples, err := LoadSamples(cfg.SampleDir, cfg)
	if err != nil {
		return nil, err
	}
	return Analyze(samples, lib, cfg)
}

// RunFiles analyzes the explicitly named sample files against the configured
// reference library.
func RunFiles(paths []string, cfg Config) ([]*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples := make([]*spectrum.Spectrum, 0, len(paths))
	for _, p := range paths {
		s, err := LoadSpectrum(p, cfg)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	lib, err := LoadLibrary(cfg.RefDir, cfg)
	if err != nil {
		return nil, err
	}
	return Analyze(samples, lib, cfg)
}
