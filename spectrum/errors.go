package spectrum

import "errors"

var (
	// ErrMissingField indicates a required metadata field could not be parsed.
	ErrMissingField = errors.New("spectrum: required field missing")
	// ErrEmptyX indicates the x array is empty after parsing.
	ErrEmptyX = errors.New("spectrum: missing array field 'x'")
	// ErrEmptyY indicates the y array is empty after parsing.
	ErrEmptyY = errors.New("spectrum: missing array field 'y'")
	// ErrLengthMismatch indicates the x and y arrays differ in length.
	ErrLengthMismatch = errors.New("spectrum: number of x-values and y-values does not match")
	// ErrMalformedRow indicates a tabular data row could not be parsed.
	ErrMalformedRow = errors.New("spectrum: malformed data row")
	// ErrNoData indicates a tabular file contained no data rows.
	ErrNoData = errors.New("spectrum: no data rows")
	// ErrUnsetYUnits indicates an absorbance-dependent operation on a
	// spectrum with no declared y-unit.
	ErrUnsetYUnits = errors.New("spectrum: yunits is not set")
	// ErrUnsupportedYUnits indicates a declared y-unit that is neither
	// absorbance nor transmittance.
	ErrUnsupportedYUnits = errors.New("spectrum: unsupported y unit type")
	// ErrDegenerateBaseline indicates equal first and last x-values, which
	// leave the baseline slope undefined.
	ErrDegenerateBaseline = errors.New("spectrum: first and last x-values are equal, baseline slope undefined")
)
