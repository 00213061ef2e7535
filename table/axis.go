package table

import (
	"fmt"
	"sort"
)

// axis owns one dimension of a table: a fixed breakpoint count, a clamping
// interval, and n strictly ascending breakpoint coordinates.
// Both Table1D and Table2D compose one axis per input dimension; the axis
// concentrates every piece of shared breakpoint logic (uniform generation,
// explicit assignment, clamping, masks, bracket search) so the tables stay
// thin over it.
type axis struct {
	n      int       // fixed breakpoint count, ≥ MinBreakpoints
	bounds Bounds    // clamping interval; low < high
	points []float64 // ascending distinct coordinates, len == n
}

// newAxis builds an axis of n uniform breakpoints over the default [0, 1]
// interval. The caller has already validated n ≥ MinBreakpoints.
// Complexity: O(n).
func newAxis(n int) axis {
	b := defaultBounds()

	return axis{n: n, bounds: b, points: linspace(b.Low, b.High, n)}
}

// linspace returns n evenly spaced coordinates from lo to hi inclusive.
// The endpoints are assigned exactly (no accumulated rounding drift at the
// last position). Requires n ≥ 2 and lo < hi.
// Complexity: O(n) time and memory.
func linspace(lo, hi float64, n int) []float64 {
	pts := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		pts[i] = lo + float64(i)*step
	}
	// Pin the final coordinate to the exact upper endpoint.
	pts[n-1] = hi

	return pts
}

// checkPoints validates an explicit breakpoint sequence against a fixed
// count n and, on success, returns an independent ascending copy together
// with the Bounds derived from its min/max.
// Validation is separated from assignment so multi-axis callers can check
// every axis before committing any of them (failure-atomicity).
// Errors: ErrBreakpointVector on wrong length or duplicate coordinates,
// ErrNonFinite on NaN/Inf entries.
// Complexity: O(n log n) for the sort.
func checkPoints(bps []float64, n int) ([]float64, Bounds, error) {
	if len(bps) != n {
		return nil, Bounds{}, fmt.Errorf("expected %d breakpoints, got %d: %w", n, len(bps), ErrBreakpointVector)
	}
	for _, v := range bps {
		if !isFinite(v) {
			return nil, Bounds{}, fmt.Errorf("breakpoint %v: %w", v, ErrNonFinite)
		}
	}

	// Deep copy before sorting: the caller's slice is never reordered.
	pts := make([]float64, n)
	copy(pts, bps)
	sort.Float64s(pts)

	// Equal neighbors would collapse a segment to zero width and leave the
	// interpolation weight undefined.
	for i := 1; i < n; i++ {
		if pts[i] == pts[i-1] {
			return nil, Bounds{}, fmt.Errorf("duplicate breakpoint %v: %w", pts[i], ErrBreakpointVector)
		}
	}

	// Sorted and distinct ⇒ pts[0] < pts[n-1], so NewBounds cannot fail.
	b := Bounds{Low: pts[0], High: pts[n-1]}

	return pts, b, nil
}

// setPoints replaces the axis's breakpoints with a validated explicit
// sequence and simultaneously resets its Bounds to the sequence's min/max.
// Complexity: O(n log n).
func (ax *axis) setPoints(bps []float64) error {
	pts, b, err := checkPoints(bps, ax.n)
	if err != nil {
		return err
	}
	ax.points = pts
	ax.bounds = b

	return nil
}

// regenerate rebuilds the breakpoints uniformly over the current Bounds.
// Complexity: O(n).
func (ax *axis) regenerate() {
	ax.points = linspace(ax.bounds.Low, ax.bounds.High, ax.n)
}

// clone returns an independent copy of the breakpoint coordinates.
func (ax *axis) clone() []float64 {
	pts := make([]float64, len(ax.points))
	copy(pts, ax.points)

	return pts
}

// bracket locates the breakpoint segment enclosing x, assuming x has
// already been clamped. It returns indices lo ≤ hi such that
// points[lo] ≤ x ≤ points[hi] with hi-lo ≤ 1; lo == hi when x sits exactly
// on a breakpoint or beyond the breakpoint span (end values are held, so
// no extrapolation branch exists).
// Complexity: O(log n) via binary search.
func (ax *axis) bracket(x float64) (lo, hi int) {
	// First index whose coordinate is ≥ x.
	i := sort.SearchFloat64s(ax.points, x)
	switch {
	case i == 0:
		return 0, 0
	case i == ax.n:
		return ax.n - 1, ax.n - 1
	case ax.points[i] == x:
		return i, i
	default:
		return i - 1, i
	}
}

// weight returns the normalized position t ∈ [0, 1] of x inside the
// segment [points[lo], points[hi]]; 0 when the segment is degenerate.
// Complexity: O(1).
func (ax *axis) weight(x float64, lo, hi int) float64 {
	if lo == hi {
		return 0
	}

	return (x - ax.points[lo]) / (ax.points[hi] - ax.points[lo])
}

// lerp linearly blends a and b by t: (1-t)*a + t*b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// checkFiniteGrid verifies every entry of a response grid is a real,
// finite number. Returns ErrNonFinite naming the first offender.
// Complexity: O(rows*cols).
func checkFiniteGrid(grid [][]float64) error {
	for i, row := range grid {
		for j, v := range row {
			if !isFinite(v) {
				return fmt.Errorf("response[%d][%d] = %v: %w", i, j, v, ErrNonFinite)
			}
		}
	}

	return nil
}