package table

import (
	"fmt"
	"math"
)

// LookupTable is the capability set every concrete table implements.
// Input points are rows of Axes() coordinates; a row of any other width
// fails with ErrInputShape. All setters are transactional: a failed call
// leaves the prior configuration observably unchanged, a successful call
// leaves the table fully consistent.
// Users normally hold the concrete *Table1D / *Table2D and reach for this
// interface only when a model treats its embedded tables generically.
type LookupTable interface {
	// Name returns the immutable table name assigned at construction.
	// Complexity: O(1).
	Name() string

	// Axes returns the number of input dimensions (1 or 2).
	// Complexity: O(1).
	Axes() int

	// SetResponse replaces the response grid.
	// Returns ErrResponseShape if the grid's shape mismatches the table's
	// fixed breakpoint counts, ErrNonFinite on NaN/Inf entries.
	// Complexity: O(size of grid).
	SetResponse(grid [][]float64) error

	// SetBreakpoints replaces breakpoint locations, one sequence per axis.
	// A nil or empty argument regenerates all axes uniformly over the
	// current Bounds. Otherwise the outer length must equal Axes() and each
	// sequence's length must equal that axis's fixed count, else
	// ErrBreakpointVector; on success each axis's Bounds is reset to its
	// sequence's [min, max].
	// Complexity: O(n log n) per axis.
	SetBreakpoints(axes [][]float64) error

	// SetBounds replaces the clamping bounds, one entry per axis, and
	// regenerates each axis's breakpoints uniformly over its new interval.
	// Nil arguments select the default [0, 1] interval on every axis.
	// Returns ErrBounds on a wrong-length vector or a zero-width axis.
	// Complexity: O(total breakpoints).
	SetBounds(low, high []float64) error

	// Breakpoints returns an independent copy of the breakpoint
	// coordinates, one slice per axis.
	// Complexity: O(total breakpoints).
	Breakpoints() [][]float64

	// Response returns an independent copy of the response grid
	// (a single row for Table1D).
	// Complexity: O(size of grid).
	Response() [][]float64

	// Interpolate clamps each input row to Bounds and linearly interpolates
	// it against the breakpoint and response grids, returning one scalar
	// per row. Returns ErrInputShape on a wrong-width row, ErrNonFinite on
	// NaN coordinates (±Inf clamps like any out-of-range value).
	// Complexity: O(rows · log n).
	Interpolate(points [][]float64) ([]float64, error)

	// Clip returns a copy of points with out-of-range coordinates replaced
	// by the nearest bound. Same input validation as Interpolate.
	// Complexity: O(rows · Axes()).
	Clip(points [][]float64) ([][]float64, error)

	// OutOfBounds compares points elementwise against Bounds:
	// below[i][k] reports points[i][k] < low of axis k, above[i][k]
	// reports points[i][k] > high. NaN coordinates are neither.
	// Complexity: O(rows · Axes()).
	OutOfBounds(points [][]float64) (below, above [][]bool, err error)

	// Frame returns the pure render data: breakpoint axes, response copy
	// and display labels. See Surface for the drawing side.
	Frame() Frame

	// Render builds the table's Frame and delegates drawing to s.
	// Returns ErrNoSurface when s is nil.
	Render(s Surface) error
}

// checkInputs validates a batch of interpolation input rows: every row must
// have exactly width coordinates (ErrInputShape) and, when rejectNaN is
// set, no coordinate may be NaN (ErrNonFinite). ±Inf is legal either way;
// it clamps to the nearest bound downstream.
// Complexity: O(rows · width).
func checkInputs(points [][]float64, width int, rejectNaN bool) error {
	for i, row := range points {
		if len(row) != width {
			return fmt.Errorf("input row %d: must have %d columns, got %d: %w", i, width, len(row), ErrInputShape)
		}
		if !rejectNaN {
			continue
		}
		for k, v := range row {
			if math.IsNaN(v) {
				return fmt.Errorf("input row %d, column %d: %w", i, k, ErrNonFinite)
			}
		}
	}

	return nil
}
