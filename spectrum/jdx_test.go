package spectrum

import (
	"errors"
	"strings"
	"testing"
)

const validJDX = `##TITLE=CARBON DIOXIDE
##DATA TYPE=INFRARED SPECTRUM
##CAS REGISTRY NO=124-38-9
##MOLFORM=C O2
##STATE=GAS
##XUNITS=1/CM
##YUNITS=ABSORBANCE
##XFACTOR=1.0
##YFACTOR=1.0
##FIRSTX=1.0
##DELTAX=1.0
##NPOINTS=3
##XYDATA=(X++(Y..Y))
1.0 0.1 0.2 0.3
##END=
`

func TestParseJDX(t *testing.T) {
	s, err := ParseJDX(strings.NewReader(validJDX), "co2.jdx", nil)
	if err != nil {
		t.Fatalf("Failed to parse JDX: %v", err)
	}

	if s.Title != "CARBON DIOXIDE" {
		t.Errorf("Title: expected %q, got %q", "CARBON DIOXIDE", s.Title)
	}
	if s.Molform != "CO2" {
		t.Errorf("Molform: expected whitespace stripped %q, got %q", "CO2", s.Molform)
	}
	if s.NPoints != 3 {
		t.Errorf("NPoints: expected 3, got %d", s.NPoints)
	}

	wantX := []float64{1.0, 2.0, 3.0}
	wantY := []float64{0.1, 0.2, 0.3}
	if len(s.X) != len(wantX) || len(s.Y) != len(wantY) {
		t.Fatalf("Expected %d points, got %d x and %d y", len(wantX), len(s.X), len(s.Y))
	}
	for i := range wantX {
		if s.X[i] != wantX[i] {
			t.Errorf("X[%d]: expected %f, got %f", i, wantX[i], s.X[i])
		}
		if s.Y[i] != wantY[i] {
			t.Errorf("Y[%d]: expected %f, got %f", i, wantY[i], s.Y[i])
		}
	}
}

func TestParseJDXGeneratedGrid(t *testing.T) {
	// x is regenerated from firstx/deltax/npoints, never read from the file.
	jdx := `##TITLE=T
##MOLFORM=CO
##YUNITS=TRANSMITTANCE
##FIRSTX=500.5
##DELTAX=0.25
##NPOINTS=5
500.5 1 1 1 1 1
`
	s, err := ParseJDX(strings.NewReader(jdx), "co.jdx", nil)
	if err != nil {
		t.Fatalf("Failed to parse JDX: %v", err)
	}
	for i := range s.X {
		want := 500.5 + float64(i)*0.25
		if s.X[i] != want {
			t.Errorf("X[%d]: expected exactly %v, got %v", i, want, s.X[i])
		}
	}
}

func TestParseJDXMissingRequiredField(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "##MOLFORM=C O2\n", "")

	_, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "molform") {
		t.Errorf("Error should name the missing field: %v", err)
	}
	if !strings.Contains(err.Error(), "co2.jdx") {
		t.Errorf("Error should name the file: %v", err)
	}
}

func TestParseJDXCustomRequiredFields(t *testing.T) {
	// Without molform in the required list the same file parses fine.
	jdx := strings.ReplaceAll(validJDX, "##MOLFORM=C O2\n", "")
	required := []string{"title", "yunits", "firstx", "deltax", "npoints"}

	s, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", required)
	if err != nil {
		t.Fatalf("Failed to parse JDX: %v", err)
	}
	if s.Molform != "" {
		t.Errorf("Molform: expected empty, got %q", s.Molform)
	}
}

func TestParseJDXYFactor(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "##YFACTOR=1.0", "##YFACTOR=0.001")

	s, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if err != nil {
		t.Fatalf("Failed to parse JDX: %v", err)
	}

	wantY := []float64{0.1 * 0.001, 0.2 * 0.001, 0.3 * 0.001}
	for i := range wantY {
		if s.Y[i] != wantY[i] {
			t.Errorf("Y[%d]: expected %v, got %v", i, wantY[i], s.Y[i])
		}
	}
}

func TestParseJDXLengthMismatch(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "##NPOINTS=3", "##NPOINTS=4")

	_, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestParseJDXEmptyY(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "1.0 0.1 0.2 0.3\n", "")

	_, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if !errors.Is(err, ErrEmptyY) {
		t.Fatalf("Expected ErrEmptyY, got %v", err)
	}
}

func TestParseJDXEmptyX(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "##NPOINTS=3", "##NPOINTS=0")

	_, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if !errors.Is(err, ErrEmptyX) {
		t.Fatalf("Expected ErrEmptyX, got %v", err)
	}
}

func TestParseJDXUnparseableField(t *testing.T) {
	jdx := strings.ReplaceAll(validJDX, "##NPOINTS=3", "##NPOINTS=three")

	_, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil)
	if err == nil {
		t.Fatal("Expected error for non-numeric NPOINTS")
	}
	if !strings.Contains(err.Error(), "npoints") {
		t.Errorf("Error should name the field: %v", err)
	}
}

func TestParseJDXIgnoresUnknownLabels(t *testing.T) {
	jdx := "##OWNER=NIST\n##ORIGIN=Somewhere\n" + validJDX

	if _, err := ParseJDX(strings.NewReader(jdx), "co2.jdx", nil); err != nil {
		t.Fatalf("Unknown labels should be ignored: %v", err)
	}
}
