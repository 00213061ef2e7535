package table

import (
	"fmt"
	"math"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLow is the lower clamping bound assigned at construction and
	// whenever SetBounds is called with nil arguments.
	DefaultLow = 0.0

	// DefaultHigh is the upper clamping bound assigned at construction and
	// whenever SetBounds is called with nil arguments.
	DefaultHigh = 1.0

	// MinBreakpoints is the smallest legal per-axis breakpoint count:
	// one segment needs two endpoints.
	MinBreakpoints = 2
)

// Bounds is a per-axis [Low, High] clamping interval.
// Invariant: Low < High strictly; enforced by NewBounds.
// Inputs outside the interval are replaced by the nearest endpoint,
// never extrapolated.
type Bounds struct {
	Low  float64
	High float64
}

// NewBounds builds a Bounds from two endpoints given in either order.
// It stores min(a,b) as Low and max(a,b) as High.
// Returns ErrNonFinite if either endpoint is NaN or Inf,
// ErrBounds if a == b (a zero-width interval cannot clamp).
// Complexity: O(1).
func NewBounds(a, b float64) (Bounds, error) {
	if !isFinite(a) || !isFinite(b) {
		return Bounds{}, fmt.Errorf("bounds [%v, %v]: %w", a, b, ErrNonFinite)
	}
	if a == b {
		return Bounds{}, fmt.Errorf("bounds [%v, %v]: %w", a, b, ErrBounds)
	}

	return Bounds{Low: math.Min(a, b), High: math.Max(a, b)}, nil
}

// Clip returns x with out-of-range values replaced by the nearest bound.
// Complexity: O(1).
func (b Bounds) Clip(x float64) float64 {
	if x < b.Low {
		return b.Low
	}
	if x > b.High {
		return b.High
	}

	return x
}

// Contains reports whether x lies inside [Low, High].
// Complexity: O(1).
func (b Bounds) Contains(x float64) bool {
	return x >= b.Low && x <= b.High
}

// Below reports whether x lies strictly below Low.
func (b Bounds) Below(x float64) bool { return x < b.Low }

// Above reports whether x lies strictly above High.
func (b Bounds) Above(x float64) bool { return x > b.High }

// Span returns the interval width High - Low; always positive.
func (b Bounds) Span() float64 { return b.High - b.Low }

// defaultBounds returns the construction-time clamping interval [0, 1].
func defaultBounds() Bounds {
	return Bounds{Low: DefaultLow, High: DefaultHigh}
}

// isFinite reports whether v is a real, finite number.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Compile-time checks that both concrete tables satisfy the shared contract.
var (
	_ LookupTable = (*Table1D)(nil)
	_ LookupTable = (*Table2D)(nil)
)
