package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultCSVHeaderSize is the number of leading lines skipped in sample CSV
// files when no explicit header size is configured.
const DefaultCSVHeaderSize = 1

// CSVOptions holds options for CSV spectrum loading.
type CSVOptions struct {
	Title      string // Overrides the title derived from the filename
	Molform    string // Molecular formula, if known
	HeaderSize int    // Number of leading lines skipped unconditionally
}

// DefaultCSVOptions returns default options for CSV spectrum loading.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{HeaderSize: DefaultCSVHeaderSize}
}

// FromCSV parses a two-column CSV spectrum file where each data row contains
// wavenumber (1/cm) and absorbance. The first opts.HeaderSize lines are
// treated as metadata and skipped.
func FromCSV(path string, opts CSVOptions) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCSV(f, path, opts)
}

// ParseCSV parses two-column CSV spectrum data from r. name identifies the
// source in error messages and supplies the default title.
func ParseCSV(r io.Reader, name string, opts CSVOptions) (*Spectrum, error) {
	var x, y []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for i := 0; i < opts.HeaderSize && scanner.Scan(); i++ {
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w in %s (expected 2 columns): %q", ErrMalformedRow, name, line)
		}

		xv, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w in %s (non-numeric value): %q", ErrMalformedRow, name, line)
		}
		yv, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w in %s (non-numeric value): %q", ErrMalformedRow, name, line)
		}

		x = append(x, xv)
		y = append(y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if len(y) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoData, name)
	}

	s := &Spectrum{
		X:       x,
		Y:       y,
		NPoints: len(x),
		XUnits:  "1/cm",
		YUnits:  UnitAbsorbance,
	}

	s.Title = opts.Title
	if s.Title == "" {
		base := filepath.Base(name)
		s.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	s.Molform = opts.Molform

	s.MinX, s.MaxX = minMax(x)
	s.MinY, s.MaxY = minMax(y)
	s.FirstX = x[0]
	s.LastX = x[len(x)-1]
	// FirstY has always recorded the second y-value, not the first. The
	// indexing is kept as-is so results stay reproducible against earlier
	// runs that depended on it.
	if len(y) > 1 {
		s.FirstY = y[1]
	}

	return s, nil
}

func minMax(vals []float64) (min, max float64) {
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// WriteCSV writes the spectrum as a flat two-column CSV with a fixed
// "wavenumber,absorbance" header row.
func (s *Spectrum) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("wavenumber,absorbance\n"); err != nil {
		return err
	}
	for i := range s.X {
		bw.WriteString(strconv.FormatFloat(s.X[i], 'g', -1, 64))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(s.Y[i], 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// SaveCSV writes the spectrum to a CSV file at path via WriteCSV.
func (s *Spectrum) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.WriteCSV(f)
}
