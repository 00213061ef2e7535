package table

import (
	"fmt"
	"math"
)

// Table2D maps a pair of numeric inputs (x, y) to a scalar response by
// bilinear interpolation over a rows × cols breakpoint grid, clamping each
// coordinate to its axis's Bounds first (no extrapolation). x selects along
// the row axis, y along the column axis; the response grid is indexed
// [row][col]. Name and per-axis counts are fixed at construction; every
// setter validates both axes fully before committing either.
type Table2D struct {
	name string
	row  axis        // x axis: one breakpoint per response row
	col  axis        // y axis: one breakpoint per response column
	resp [][]float64 // rows × cols, all finite

	xLabel string // display metadata; no computational effect
	yLabel string
	zLabel string
}

// New2D constructs a 2-D lookup table named name with rows × cols
// breakpoints. The response starts as a zero grid, each axis's breakpoints
// as linspace(0, 1, ·), each axis's bounds as [0, 1].
// Returns ErrEmptyName when name is empty, ErrBreakpointCount when either
// count is below 2.
// Complexity: O(rows · cols).
func New2D(name string, rows, cols int) (*Table2D, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if rows < MinBreakpoints || cols < MinBreakpoints {
		return nil, fmt.Errorf("got %d×%d: %w", rows, cols, ErrBreakpointCount)
	}

	resp := make([][]float64, rows)
	for i := range resp {
		resp[i] = make([]float64, cols)
	}

	return &Table2D{
		name: name,
		row:  newAxis(rows),
		col:  newAxis(cols),
		resp: resp,
	}, nil
}

// Name returns the immutable table name. Complexity: O(1).
func (t *Table2D) Name() string { return t.name }

// Axes returns 2. Complexity: O(1).
func (t *Table2D) Axes() int { return 2 }

// Rows returns the fixed row-axis breakpoint count. Complexity: O(1).
func (t *Table2D) Rows() int { return t.row.n }

// Cols returns the fixed column-axis breakpoint count. Complexity: O(1).
func (t *Table2D) Cols() int { return t.col.n }

// RowBounds returns the row axis's clamping interval. Complexity: O(1).
func (t *Table2D) RowBounds() Bounds { return t.row.bounds }

// ColBounds returns the column axis's clamping interval. Complexity: O(1).
func (t *Table2D) ColBounds() Bounds { return t.col.bounds }

// SetLabels assigns display labels for both input axes and the response.
// Labels never affect computation. Complexity: O(1).
func (t *Table2D) SetLabels(x, y, z string) {
	t.xLabel = x
	t.yLabel = y
	t.zLabel = z
}

// XLabel returns the row-axis display label.
func (t *Table2D) XLabel() string { return t.xLabel }

// YLabel returns the column-axis display label.
func (t *Table2D) YLabel() string { return t.yLabel }

// ZLabel returns the response display label.
func (t *Table2D) ZLabel() string { return t.zLabel }

// SetGrid replaces the response grid; z must be shaped exactly
// Rows() × Cols(). Returns ErrResponseShape naming the expected counts on
// any mismatch (including ragged rows), ErrNonFinite on NaN/Inf entries.
// The prior grid survives any failure; on success z is deep-copied.
// Complexity: O(rows · cols).
func (t *Table2D) SetGrid(z [][]float64) error {
	if len(z) != t.row.n {
		return fmt.Errorf("expected %d×%d response grid, got %d rows: %w", t.row.n, t.col.n, len(z), ErrResponseShape)
	}
	for i, r := range z {
		if len(r) != t.col.n {
			return fmt.Errorf("expected %d×%d response grid, row %d has %d columns: %w", t.row.n, t.col.n, i, len(r), ErrResponseShape)
		}
	}
	if err := checkFiniteGrid(z); err != nil {
		return err
	}

	resp := make([][]float64, t.row.n)
	for i, r := range z {
		resp[i] = make([]float64, t.col.n)
		copy(resp[i], r)
	}
	t.resp = resp

	return nil
}

// SetResponse implements LookupTable. See SetGrid.
func (t *Table2D) SetResponse(grid [][]float64) error {
	return t.SetGrid(grid)
}

// SetPoints replaces both axes' breakpoint locations atomically.
// Passing nil for both sequences regenerates each axis uniformly over its
// current Bounds. Otherwise each sequence's length must equal its axis's
// fixed count (ErrBreakpointVector) and hold finite, distinct coordinates;
// on success each axis stores its points sorted ascending and resets its
// Bounds to that sequence's [min, max]. Both axes are validated before
// either is committed, so a failure leaves the table untouched.
// Complexity: O(rows log rows + cols log cols).
func (t *Table2D) SetPoints(rowBPs, colBPs []float64) error {
	if len(rowBPs) == 0 && len(colBPs) == 0 {
		t.row.regenerate()
		t.col.regenerate()

		return nil
	}

	rowPts, rowB, err := checkPoints(rowBPs, t.row.n)
	if err != nil {
		return fmt.Errorf("row axis: %w", err)
	}
	colPts, colB, err := checkPoints(colBPs, t.col.n)
	if err != nil {
		return fmt.Errorf("column axis: %w", err)
	}

	t.row.points, t.row.bounds = rowPts, rowB
	t.col.points, t.col.bounds = colPts, colB

	return nil
}

// SetBreakpoints implements LookupTable; a non-empty argument must hold
// exactly two axis sequences, row axis first. See SetPoints.
func (t *Table2D) SetBreakpoints(axes [][]float64) error {
	if len(axes) == 0 {
		return t.SetPoints(nil, nil)
	}
	if len(axes) != 2 {
		return fmt.Errorf("expected 2 axes, got %d: %w", len(axes), ErrBreakpointVector)
	}

	return t.SetPoints(axes[0], axes[1])
}

// SetRanges replaces both axes' clamping bounds; low and high must each
// hold exactly 2 endpoints, ordered (row, column). Per axis the interval
// stored is [min(low[i],high[i]), max(low[i],high[i])].
// Each axis's breakpoints are regenerated uniformly over its new interval,
// keeping breakpoint spans and clamping intervals in lockstep.
// Returns ErrBounds on a wrong-length vector or a zero-width axis,
// ErrNonFinite on NaN/Inf endpoints; both axes are validated before either
// is committed.
// Complexity: O(rows + cols).
func (t *Table2D) SetRanges(low, high []float64) error {
	if len(low) != 2 || len(high) != 2 {
		return fmt.Errorf("expected 2 endpoints per vector, got %d/%d: %w", len(low), len(high), ErrBounds)
	}

	rowB, err := NewBounds(low[0], high[0])
	if err != nil {
		return fmt.Errorf("row axis: %w", err)
	}
	colB, err := NewBounds(low[1], high[1])
	if err != nil {
		return fmt.Errorf("column axis: %w", err)
	}

	t.row.bounds = rowB
	t.col.bounds = colB
	t.row.regenerate()
	t.col.regenerate()

	return nil
}

// SetBounds implements LookupTable. Nil slices select the default
// [0,0]/[1,1]. See SetRanges.
func (t *Table2D) SetBounds(low, high []float64) error {
	if low == nil && high == nil {
		return t.SetRanges([]float64{DefaultLow, DefaultLow}, []float64{DefaultHigh, DefaultHigh})
	}

	return t.SetRanges(low, high)
}

// RowPoints returns an independent copy of the row-axis breakpoints.
// Complexity: O(rows).
func (t *Table2D) RowPoints() []float64 { return t.row.clone() }

// ColPoints returns an independent copy of the column-axis breakpoints.
// Complexity: O(cols).
func (t *Table2D) ColPoints() []float64 { return t.col.clone() }

// Breakpoints implements LookupTable: row axis first, then column axis.
// Complexity: O(rows + cols).
func (t *Table2D) Breakpoints() [][]float64 {
	return [][]float64{t.row.clone(), t.col.clone()}
}

// Grid returns an independent copy of the response grid.
// Complexity: O(rows · cols).
func (t *Table2D) Grid() [][]float64 {
	resp := make([][]float64, len(t.resp))
	for i, r := range t.resp {
		resp[i] = make([]float64, len(r))
		copy(resp[i], r)
	}

	return resp
}

// Response implements LookupTable. See Grid.
func (t *Table2D) Response() [][]float64 { return t.Grid() }

// At interpolates the response at a single (x, y) input.
// Each coordinate is clamped to its axis's Bounds, bracketed on that
// axis's breakpoints, and the four corner responses are blended
// bilinearly; beyond a breakpoint span the edge responses are held.
// Returns ErrNonFinite for NaN coordinates (±Inf clamps normally).
// Complexity: O(log rows + log cols).
func (t *Table2D) At(x, y float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, fmt.Errorf("input (%v, %v): %w", x, y, ErrNonFinite)
	}

	return t.at(x, y), nil
}

// at is the validation-free bilinear kernel behind At/Interp:
// clamp per axis, bracket per axis, blend the four corners. Degenerate
// brackets (coordinate exactly on a breakpoint, or beyond the span)
// collapse the blend to an edge lerp or a direct grid read.
func (t *Table2D) at(x, y float64) float64 {
	x = t.row.bounds.Clip(x)
	y = t.col.bounds.Clip(y)

	r0, r1 := t.row.bracket(x)
	c0, c1 := t.col.bracket(y)
	tr := t.row.weight(x, r0, r1)
	tc := t.col.weight(y, c0, c1)

	// Blend along the column axis on both bracketing rows, then along the
	// row axis between them. Degenerate weights (0) make the extra lerps
	// exact no-ops, so no special-case branches are needed.
	top := lerp(t.resp[r0][c0], t.resp[r0][c1], tc)
	bot := lerp(t.resp[r1][c0], t.resp[r1][c1], tc)

	return lerp(top, bot, tr)
}

// Interp interpolates the response at each input row; every row must be an
// [x, y] pair (ErrInputShape names the expected 2 columns). Returns one
// scalar per row; no partial results on failure.
// Complexity: O(len(points) · (log rows + log cols)).
func (t *Table2D) Interp(points [][]float64) ([]float64, error) {
	if err := checkInputs(points, 2, true); err != nil {
		return nil, err
	}

	out := make([]float64, len(points))
	for i, row := range points {
		out[i] = t.at(row[0], row[1])
	}

	return out, nil
}

// Interpolate implements LookupTable. See Interp.
func (t *Table2D) Interpolate(points [][]float64) ([]float64, error) {
	return t.Interp(points)
}

// Clip implements LookupTable: each coordinate outside its axis's Bounds
// is replaced by the nearest bound. The input is never mutated.
// Complexity: O(len(points)).
func (t *Table2D) Clip(points [][]float64) ([][]float64, error) {
	if err := checkInputs(points, 2, true); err != nil {
		return nil, err
	}

	out := make([][]float64, len(points))
	for i, row := range points {
		out[i] = []float64{t.row.bounds.Clip(row[0]), t.col.bounds.Clip(row[1])}
	}

	return out, nil
}

// OutOfBounds implements LookupTable: elementwise comparison against each
// axis's Bounds. NaN coordinates are neither below nor above.
// Complexity: O(len(points)).
func (t *Table2D) OutOfBounds(points [][]float64) (below, above [][]bool, err error) {
	if err = checkInputs(points, 2, false); err != nil {
		return nil, nil, err
	}

	below = make([][]bool, len(points))
	above = make([][]bool, len(points))
	for i, row := range points {
		below[i] = []bool{t.row.bounds.Below(row[0]), t.col.bounds.Below(row[1])}
		above[i] = []bool{t.row.bounds.Above(row[0]), t.col.bounds.Above(row[1])}
	}

	return below, above, nil
}

// Frame implements LookupTable: row breakpoints as X, column breakpoints
// as Y, the response copy as Z, labels from the display metadata.
// Complexity: O(rows · cols).
func (t *Table2D) Frame() Frame {
	return Frame{
		Title:  t.name,
		XLabel: t.xLabel,
		YLabel: t.yLabel,
		ZLabel: t.zLabel,
		X:      t.row.clone(),
		Y:      t.col.clone(),
		Z:      t.Grid(),
	}
}

// Render implements LookupTable: builds the Frame and delegates drawing
// to s. Returns ErrNoSurface when s is nil.
func (t *Table2D) Render(s Surface) error {
	return renderOn(s, t.Frame())
}
