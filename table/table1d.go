package table

import (
	"fmt"
	"math"
)

// Table1D maps a single numeric input to a scalar response by piecewise
// linear interpolation over n breakpoints, clamping the input to its
// Bounds first (no extrapolation). The name and breakpoint count are fixed
// at construction; breakpoints, bounds, response and display labels are
// replaceable through the setters, each of which validates everything
// before committing anything.
type Table1D struct {
	name string
	ax   axis
	resp []float64 // one response per breakpoint, all finite

	xLabel string // display metadata; no computational effect
	zLabel string
}

// New1D constructs a 1-D lookup table named name with n breakpoints.
// The response starts as n zeros, the breakpoints as linspace(0, 1, n),
// the bounds as [0, 1].
// Returns ErrEmptyName when name is empty, ErrBreakpointCount when n < 2.
// Complexity: O(n).
func New1D(name string, n int) (*Table1D, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if n < MinBreakpoints {
		return nil, fmt.Errorf("got %d: %w", n, ErrBreakpointCount)
	}

	return &Table1D{
		name: name,
		ax:   newAxis(n),
		resp: make([]float64, n),
	}, nil
}

// Name returns the immutable table name. Complexity: O(1).
func (t *Table1D) Name() string { return t.name }

// Axes returns 1. Complexity: O(1).
func (t *Table1D) Axes() int { return 1 }

// Count returns the fixed breakpoint count. Complexity: O(1).
func (t *Table1D) Count() int { return t.ax.n }

// Bounds returns the current clamping interval. Complexity: O(1).
func (t *Table1D) Bounds() Bounds { return t.ax.bounds }

// SetLabels assigns the display labels for the input axis and the
// response. Labels never affect computation. Complexity: O(1).
func (t *Table1D) SetLabels(x, z string) {
	t.xLabel = x
	t.zLabel = z
}

// XLabel returns the input-axis display label.
func (t *Table1D) XLabel() string { return t.xLabel }

// ZLabel returns the response display label.
func (t *Table1D) ZLabel() string { return t.zLabel }

// SetCurve replaces the response values, one per breakpoint.
// Returns ErrResponseShape (naming the expected count) on a length
// mismatch, ErrNonFinite if any entry is NaN or Inf. On failure the prior
// response is untouched; on success z is deep-copied.
// Complexity: O(n).
func (t *Table1D) SetCurve(z []float64) error {
	if len(z) != t.ax.n {
		return fmt.Errorf("expected %d response values, got %d: %w", t.ax.n, len(z), ErrResponseShape)
	}
	if err := checkFiniteGrid([][]float64{z}); err != nil {
		return err
	}

	resp := make([]float64, t.ax.n)
	copy(resp, z)
	t.resp = resp

	return nil
}

// SetResponse implements LookupTable; the grid must hold exactly one row
// of Count() values. See SetCurve.
func (t *Table1D) SetResponse(grid [][]float64) error {
	if len(grid) != 1 {
		return fmt.Errorf("expected 1 response row, got %d: %w", len(grid), ErrResponseShape)
	}

	return t.SetCurve(grid[0])
}

// SetPoints replaces the breakpoint locations.
// A nil or empty bps regenerates them uniformly over the current Bounds.
// Otherwise len(bps) must equal Count() (ErrBreakpointVector, naming the
// expected count) and all coordinates must be finite and distinct; on
// success the points are stored sorted ascending and Bounds is reset to
// [min(bps), max(bps)].
// Complexity: O(n log n); O(n) for the uniform case.
func (t *Table1D) SetPoints(bps []float64) error {
	if len(bps) == 0 {
		t.ax.regenerate()

		return nil
	}

	return t.ax.setPoints(bps)
}

// SetBreakpoints implements LookupTable; a non-empty argument must hold
// exactly one axis sequence. See SetPoints.
func (t *Table1D) SetBreakpoints(axes [][]float64) error {
	if len(axes) == 0 {
		return t.SetPoints(nil)
	}
	if len(axes) != 1 {
		return fmt.Errorf("expected 1 axis, got %d: %w", len(axes), ErrBreakpointVector)
	}

	return t.SetPoints(axes[0])
}

// SetRange replaces the clamping bounds with [min(lo,hi), max(lo,hi)] and
// regenerates the breakpoints uniformly over the new interval, keeping the
// breakpoint span and the clamping interval in lockstep (an explicit
// SetPoints sequence is likewise replaced).
// Returns ErrBounds when lo == hi, ErrNonFinite on NaN/Inf endpoints.
// Complexity: O(n).
func (t *Table1D) SetRange(lo, hi float64) error {
	b, err := NewBounds(lo, hi)
	if err != nil {
		return err
	}
	t.ax.bounds = b
	t.ax.regenerate()

	return nil
}

// SetBounds implements LookupTable. Nil slices select the default [0, 1];
// otherwise both must hold exactly one endpoint. See SetRange.
func (t *Table1D) SetBounds(low, high []float64) error {
	if low == nil && high == nil {
		return t.SetRange(DefaultLow, DefaultHigh)
	}
	if len(low) != 1 || len(high) != 1 {
		return fmt.Errorf("expected 1 endpoint per axis, got %d/%d: %w", len(low), len(high), ErrBounds)
	}

	return t.SetRange(low[0], high[0])
}

// Points returns an independent copy of the breakpoint coordinates.
// Complexity: O(n).
func (t *Table1D) Points() []float64 { return t.ax.clone() }

// Curve returns an independent copy of the response values.
// Complexity: O(n).
func (t *Table1D) Curve() []float64 {
	resp := make([]float64, len(t.resp))
	copy(resp, t.resp)

	return resp
}

// Breakpoints implements LookupTable. Complexity: O(n).
func (t *Table1D) Breakpoints() [][]float64 {
	return [][]float64{t.ax.clone()}
}

// Response implements LookupTable; a single row. Complexity: O(n).
func (t *Table1D) Response() [][]float64 {
	return [][]float64{t.Curve()}
}

// At interpolates the response at a single input.
// The input is clamped to Bounds, then evaluated on the piecewise-linear
// segment enclosing it; beyond the breakpoint span the end response is
// held. Returns ErrNonFinite for NaN input (±Inf clamps normally).
// Complexity: O(log n).
func (t *Table1D) At(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("input %v: %w", x, ErrNonFinite)
	}

	return t.at(x), nil
}

// at is the validation-free kernel behind At/Interp: clamp, bracket, lerp.
func (t *Table1D) at(x float64) float64 {
	x = t.ax.bounds.Clip(x)
	lo, hi := t.ax.bracket(x)

	return lerp(t.resp[lo], t.resp[hi], t.ax.weight(x, lo, hi))
}

// Interp interpolates the response at each of xs, returning one scalar per
// input. Returns ErrNonFinite if any input is NaN; no partial results.
// Complexity: O(len(xs) · log n).
func (t *Table1D) Interp(xs []float64) ([]float64, error) {
	for i, x := range xs {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("input %d: %w", i, ErrNonFinite)
		}
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.at(x)
	}

	return out, nil
}

// Interpolate implements LookupTable; each row holds one coordinate.
// See Interp.
func (t *Table1D) Interpolate(points [][]float64) ([]float64, error) {
	if err := checkInputs(points, 1, true); err != nil {
		return nil, err
	}

	out := make([]float64, len(points))
	for i, row := range points {
		out[i] = t.at(row[0])
	}

	return out, nil
}

// Clip implements LookupTable: each coordinate outside Bounds is replaced
// by the nearest bound. The input is never mutated.
// Complexity: O(len(points)).
func (t *Table1D) Clip(points [][]float64) ([][]float64, error) {
	if err := checkInputs(points, 1, true); err != nil {
		return nil, err
	}

	out := make([][]float64, len(points))
	for i, row := range points {
		out[i] = []float64{t.ax.bounds.Clip(row[0])}
	}

	return out, nil
}

// OutOfBounds implements LookupTable: elementwise comparison against
// Bounds. NaN coordinates compare neither below nor above.
// Complexity: O(len(points)).
func (t *Table1D) OutOfBounds(points [][]float64) (below, above [][]bool, err error) {
	if err = checkInputs(points, 1, false); err != nil {
		return nil, nil, err
	}

	below = make([][]bool, len(points))
	above = make([][]bool, len(points))
	for i, row := range points {
		below[i] = []bool{t.ax.bounds.Below(row[0])}
		above[i] = []bool{t.ax.bounds.Above(row[0])}
	}

	return below, above, nil
}

// Frame implements LookupTable: breakpoints as X, the response as a single
// Z row, labels from the display metadata.
// Complexity: O(n).
func (t *Table1D) Frame() Frame {
	return Frame{
		Title:  t.name,
		XLabel: t.xLabel,
		ZLabel: t.zLabel,
		X:      t.ax.clone(),
		Z:      [][]float64{t.Curve()},
	}
}

// Render implements LookupTable: builds the Frame and delegates drawing
// to s. Returns ErrNoSurface when s is nil.
func (t *Table1D) Render(s Surface) error {
	return renderOn(s, t.Frame())
}
