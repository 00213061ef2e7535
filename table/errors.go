// Package table defines core types, options, and sentinel errors
// for the table subpackage of github.com/katalvlaran/lut.
package table

import "errors"

// Sentinel errors for table operations.
// All failures are returned, never panicked; callers match with errors.Is.
// Call sites wrap these with fmt.Errorf("...: %w", ...) so messages carry
// the expected shape or count and stay self-correcting.
var (
	// ErrEmptyName indicates a table was constructed without a name.
	ErrEmptyName = errors.New("table: name must be non-empty")

	// ErrBreakpointCount indicates a per-axis breakpoint count below 2.
	ErrBreakpointCount = errors.New("table: breakpoint count must be at least 2")

	// ErrResponseShape indicates a response grid whose length or shape does
	// not match the table's fixed breakpoint counts.
	ErrResponseShape = errors.New("table: response shape mismatch")

	// ErrBounds indicates degenerate clamping bounds (low == high on some
	// axis) or a bounds vector of the wrong length.
	ErrBounds = errors.New("table: bounds must satisfy low < high")

	// ErrBreakpointVector indicates a supplied breakpoint sequence whose
	// length mismatches the corresponding axis's fixed count, or whose
	// coordinates are not distinct.
	ErrBreakpointVector = errors.New("table: breakpoint vector length mismatch")

	// ErrInputShape indicates an interpolation input row with the wrong
	// number of coordinate columns (1 for Table1D, 2 for Table2D).
	ErrInputShape = errors.New("table: input row width mismatch")

	// ErrNonFinite indicates a NaN or Inf where a finite value is required.
	ErrNonFinite = errors.New("table: NaN or Inf encountered")

	// ErrNoSurface indicates Render was called with a nil drawing surface.
	ErrNoSurface = errors.New("table: nil render surface")
)
