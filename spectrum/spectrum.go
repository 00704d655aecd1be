// Package spectrum provides the infrared spectrum data model and parsers.
package spectrum

import (
	"fmt"
	"math"
	"strings"
)

// Recognized y-axis unit tags. Comparisons are case-insensitive and ignore
// surrounding whitespace; any other tag is treated as unsupported.
const (
	UnitAbsorbance    = "ABSORBANCE"
	UnitTransmittance = "TRANSMITTANCE"
)

// transmittanceFloor avoids log10(0) when converting transmittance values.
const transmittanceFloor = 1e-12

// Spectrum represents a single infrared spectrum: parallel x (wavenumber)
// and y (intensity) arrays plus the metadata carried by the source file.
// Not all loaded fields are used but may be useful in further development.
type Spectrum struct {
	Title         string
	DataType      string
	CASRegistryNo string
	Molform       string
	State         string
	XUnits        string
	YUnits        string
	XFactor       float64
	YFactor       float64
	DeltaX        float64
	FirstX        float64
	LastX         float64
	FirstY        float64
	MaxX          float64
	MinX          float64
	MaxY          float64
	MinY          float64
	NPoints       int

	X []float64
	Y []float64
}

// Len returns the number of points in the spectrum.
func (s *Spectrum) Len() int {
	return len(s.Y)
}

// Copy creates a deep copy of the spectrum.
func (s *Spectrum) Copy() *Spectrum {
	c := *s
	c.X = make([]float64, len(s.X))
	copy(c.X, s.X)
	c.Y = make([]float64, len(s.Y))
	copy(c.Y, s.Y)
	return &c
}

func normalizeUnit(u string) string {
	return strings.ToUpper(strings.TrimSpace(u))
}

// YAbsorbance returns the y-values in absorbance units without mutating the
// spectrum. Values already in absorbance are returned as-is; transmittance
// values are converted with A = -log10(T).
func (s *Spectrum) YAbsorbance() ([]float64, error) {
	switch normalizeUnit(s.YUnits) {
	case UnitAbsorbance:
		out := make([]float64, len(s.Y))
		copy(out, s.Y)
		return out, nil
	case UnitTransmittance:
		out := make([]float64, len(s.Y))
		for i, v := range s.Y {
			out[i] = -math.Log10(math.Max(v, transmittanceFloor))
		}
		return out, nil
	case "":
		return nil, fmt.Errorf("%w in %q", ErrUnsetYUnits, s.Title)
	default:
		return nil, fmt.Errorf("%w: %q in %q", ErrUnsupportedYUnits, s.YUnits, s.Title)
	}
}

// ConvertToAbsorbance converts the spectrum to absorbance units in place.
// The conversion is idempotent: a spectrum already in absorbance is left
// untouched.
func (s *Spectrum) ConvertToAbsorbance() error {
	switch normalizeUnit(s.YUnits) {
	case UnitAbsorbance:
		return nil
	case UnitTransmittance:
		for i, v := range s.Y {
			s.Y[i] = -math.Log10(math.Max(v, transmittanceFloor))
		}
		s.YUnits = UnitAbsorbance
		return nil
	case "":
		return fmt.Errorf("%w in %q", ErrUnsetYUnits, s.Title)
	default:
		return fmt.Errorf("%w: %q in %q", ErrUnsupportedYUnits, s.YUnits, s.Title)
	}
}
