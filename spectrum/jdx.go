package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultRequiredFields lists the metadata fields that must parse for a
// JCAMP-DX file to be considered valid. The x and y arrays are not listed
// because they are always checked separately.
var DefaultRequiredFields = []string{
	"title",
	"molform",
	"yunits",
	"firstx",
	"deltax",
	"npoints",
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindFloat
	kindInt
)

// jdxLabels maps JCAMP-DX labels to field names and the kind of value each
// label carries. The table is fixed at definition time; unknown labels are
// ignored during parsing.
var jdxLabels = map[string]struct {
	field string
	kind  fieldKind
}{
	"TITLE":           {"title", kindString},
	"DATA TYPE":       {"data_type", kindString},
	"CAS REGISTRY NO": {"cas_registry_no", kindString},
	"MOLFORM":         {"molform", kindString},
	"STATE":           {"state", kindString},
	"XUNITS":          {"xunits", kindString},
	"YUNITS":          {"yunits", kindString},
	"XFACTOR":         {"xfactor", kindFloat},
	"YFACTOR":         {"yfactor", kindFloat},
	"DELTAX":          {"deltax", kindFloat},
	"FIRSTX":          {"firstx", kindFloat},
	"LASTX":           {"lastx", kindFloat},
	"FIRSTY":          {"firsty", kindFloat},
	"MAXX":            {"maxx", kindFloat},
	"MINX":            {"minx", kindFloat},
	"MAXY":            {"maxy", kindFloat},
	"MINY":            {"miny", kindFloat},
	"NPOINTS":         {"npoints", kindInt},
}

// FromJDX parses a JCAMP-DX spectrum file, such as the infrared reference
// files published by the NIST Chemistry WebBook. required overrides the list
// of metadata fields that must be present; nil selects
// DefaultRequiredFields.
func FromJDX(path string, required []string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseJDX(f, path, required)
}

// ParseJDX parses JCAMP-DX data from r. name identifies the source in error
// messages, typically the file path.
func ParseJDX(r io.Reader, name string, required []string) (*Spectrum, error) {
	if required == nil {
		required = DefaultRequiredFields
	}

	s := &Spectrum{}
	set := make(map[string]bool)
	var y []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Header fields: ##LABEL=value
		if strings.HasPrefix(line, "##") && strings.Contains(line, "=") {
			label, val, _ := strings.Cut(line[2:], "=")
			label = strings.ToUpper(strings.TrimSpace(label))
			val = strings.TrimSpace(val)

			entry, ok := jdxLabels[label]
			if !ok {
				continue
			}
			if err := s.setJDXField(entry.field, entry.kind, val); err != nil {
				return nil, fmt.Errorf("could not parse %s in %s: %w", entry.field, name, err)
			}
			set[entry.field] = true
			continue
		}

		// Data lines start with a digit. The first token is an x-anchor kept
		// only for parsing continuity; the rest are sequential y-values.
		if line != "" && line[0] >= '0' && line[0] <= '9' {
			for _, tok := range strings.Fields(line)[1:] {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("could not parse data value %q in %s: %w", tok, name, err)
				}
				y = append(y, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	s.Y = y

	for _, field := range required {
		if !set[field] {
			return nil, fmt.Errorf("%w: could not parse %s in %s", ErrMissingField, field, name)
		}
	}

	// Remove embedded spaces in the molecular formula; it is the lookup key.
	s.Molform = strings.ReplaceAll(s.Molform, " ", "")

	// The x array is regenerated from the metadata, not read from the file.
	if set["npoints"] && set["firstx"] && set["deltax"] && s.NPoints > 0 {
		s.X = make([]float64, s.NPoints)
		for i := range s.X {
			s.X[i] = s.FirstX + float64(i)*s.DeltaX
		}
	}

	if len(s.X) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyX, name)
	}
	if len(s.Y) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyY, name)
	}
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("%w in %q: %d x-values, %d y-values", ErrLengthMismatch, s.Title, len(s.X), len(s.Y))
	}

	// Apply the y scaling factor exactly once.
	if set["yfactor"] && s.YFactor != 1.0 {
		for i := range s.Y {
			s.Y[i] *= s.YFactor
		}
	}

	return s, nil
}

func (s *Spectrum) setJDXField(field string, kind fieldKind, val string) error {
	switch kind {
	case kindFloat:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		switch field {
		case "xfactor":
			s.XFactor = f
		case "yfactor":
			s.YFactor = f
		case "deltax":
			s.DeltaX = f
		case "firstx":
			s.FirstX = f
		case "lastx":
			s.LastX = f
		case "firsty":
			s.FirstY = f
		case "maxx":
			s.MaxX = f
		case "minx":
			s.MinX = f
		case "maxy":
			s.MaxY = f
		case "miny":
			s.MinY = f
		}
	case kindInt:
		n, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		s.NPoints = n
	default:
		switch field {
		case "title":
			s.Title = val
		case "data_type":
			s.DataType = val
		case "cas_registry_no":
			s.CASRegistryNo = val
		case "molform":
			s.Molform = val
		case "state":
			s.State = val
		case "xunits":
			s.XUnits = val
		case "yunits":
			s.YUnits = val
		}
	}
	return nil
}
