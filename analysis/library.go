package analysis

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specproj/gospectral/spectrum"
)

var (
	// ErrNoReferences indicates the reference directory holds no .jdx files.
	ErrNoReferences = errors.New("analysis: no reference spectra available")
	// ErrNoSamples indicates the sample directory holds no .csv files.
	ErrNoSamples = errors.New("analysis: no sample spectra available")
	// ErrUnsupportedFile indicates a spectrum path with an unknown extension.
	ErrUnsupportedFile = errors.New("analysis: unsupported spectrum file type")
)

// Library is the reference set: molecular formula to spectrum, loaded once
// per analysis run and read-only afterwards.
type Library struct {
	specs  []*spectrum.Spectrum
	byName map[string]*spectrum.Spectrum
}

// NewLibrary builds a library from already-loaded reference spectra, keyed by
// molecular formula.
func NewLibrary(refs []*spectrum.Spectrum) *Library {
	lib := &Library{byName: make(map[string]*spectrum.Spectrum, len(refs))}
	for _, r := range refs {
		lib.specs = append(lib.specs, r)
		lib.byName[r.Molform] = r
	}
	return lib
}

// LoadLibrary loads every .jdx reference under dir.
func LoadLibrary(dir string, cfg Config) (*Library, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.jdx"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoReferences, dir)
	}

	refs := make([]*spectrum.Spectrum, 0, len(paths))
	for _, p := range paths {
		s, err := spectrum.FromJDX(p, cfg.RequiredJDXFields)
		if err != nil {
			return nil, err
		}
		refs = append(refs, s)
	}
	return NewLibrary(refs), nil
}

// All returns the references in load order.
func (l *Library) All() []*spectrum.Spectrum {
	return l.specs
}

// Get returns the reference with the given molecular formula.
func (l *Library) Get(name string) (*spectrum.Spectrum, bool) {
	s, ok := l.byName[name]
	return s, ok
}

// Names returns the molecular formulas of all references in load order.
func (l *Library) Names() []string {
	names := make([]string, len(l.specs))
	for i, s := range l.specs {
		names[i] = s.Molform
	}
	return names
}

// Len returns the number of references.
func (l *Library) Len() int {
	return len(l.specs)
}

// LoadSamples loads every .csv sample under dir.
func LoadSamples(dir string, cfg Config) ([]*spectrum.Spectrum, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSamples, dir)
	}

	samples := make([]*spectrum.Spectrum, 0, len(paths))
	for _, p := range paths {
		s, err := spectrum.FromCSV(p, cfg.csvOptions())
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// LoadSpectrum loads a single spectrum file, dispatching on its extension:
// .csv parses as a tabular sample, .jdx as a JCAMP-DX spectrum.
func LoadSpectrum(path string, cfg Config) (*spectrum.Spectrum, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return spectrum.FromCSV(path, cfg.csvOptions())
	case ".jdx":
		return spectrum.FromJDX(path, cfg.RequiredJDXFields)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}
