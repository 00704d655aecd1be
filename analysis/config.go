package analysis

import (
	"github.com/specproj/gospectral/fit"
	"github.com/specproj/gospectral/spectrum"
)

// Config collects every adjustable analysis setting. It is threaded
// explicitly into the loader, corrector, and fitter so runs stay
// deterministic and free of process-wide state.
type Config struct {
	// Baseline correction, applied only to sample spectra.
	BaselineCorrection bool
	BaselineFraction   float64
	BaselineMinPoints  int

	// Manual fitting: when Multipliers is non-empty, RefNames must name the
	// reference each multiplier belongs to. Empty Multipliers selects the
	// least-squares solve.
	Multipliers []float64
	RefNames    []string

	// Clip negative solved multipliers to zero; they occur when the fit
	// counteracts noise rather than representing a physical abundance.
	ClampNegative bool

	// SelectedRefs restricts the active reference set to the named
	// molecular formulas. Empty means all loaded references.
	SelectedRefs []string

	// RequiredJDXFields are the metadata fields a .jdx file must carry to
	// be considered valid.
	RequiredJDXFields []string

	// CSVHeaderSize lines are skipped at the top of sample CSV files.
	CSVHeaderSize int

	// Discovery roots for reference and sample enumeration.
	RefDir    string
	SampleDir string

	// Presentation toggles consumed by reporting and rendering.
	PlotResiduals    bool
	ShowConstituents bool
}

// DefaultConfig returns the default analysis settings.
func DefaultConfig() Config {
	return Config{
		BaselineCorrection: true,
		BaselineFraction:   0.20,
		BaselineMinPoints:  50,
		ClampNegative:      true,
		RequiredJDXFields:  spectrum.DefaultRequiredFields,
		CSVHeaderSize:      spectrum.DefaultCSVHeaderSize,
		RefDir:             "data/reference",
		SampleDir:          "data/sample",
	}
}

// Validate checks the manual-multiplier pairing. It runs before any file is
// touched so a bad configuration fails without loading references.
func (c Config) Validate() error {
	return fit.ValidateOptions(c.fitOptions())
}

// fitOptions assembles fresh fitter options. Built per call so manual
// multipliers never carry mutated state from one sample to the next.
func (c Config) fitOptions() fit.Options {
	return fit.Options{
		Multipliers:   append([]float64(nil), c.Multipliers...),
		RefNames:      append([]string(nil), c.RefNames...),
		ClampNegative: c.ClampNegative,
	}
}

func (c Config) baselineOptions() spectrum.BaselineOptions {
	return spectrum.BaselineOptions{
		Fraction:  c.BaselineFraction,
		MinPoints: c.BaselineMinPoints,
	}
}

func (c Config) csvOptions() spectrum.CSVOptions {
	return spectrum.CSVOptions{HeaderSize: c.CSVHeaderSize}
}
