package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinspace_Endpoints verifies the generated sequence hits both
// endpoints exactly and is evenly spaced.
func TestLinspace_Endpoints(t *testing.T) {
	pts := linspace(0, 10, 5)

	require.Len(t, pts, 5, "linspace must produce exactly n points")
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, pts, "uniform spacing over [0,10]")
	assert.Equal(t, 10.0, pts[4], "upper endpoint must be exact, no rounding drift")
}

// TestLinspace_TwoPoints checks the minimal n=2 case degenerates to the
// bare endpoints.
func TestLinspace_TwoPoints(t *testing.T) {
	assert.Equal(t, []float64{-1, 1}, linspace(-1, 1, 2), "n=2 yields just the endpoints")
}

// TestCheckPoints_SortsAndDerivesBounds verifies an unordered sequence is
// stored ascending with Bounds rederived from its min/max, without
// mutating the caller's slice.
func TestCheckPoints_SortsAndDerivesBounds(t *testing.T) {
	in := []float64{5, -2, 9}

	pts, b, err := checkPoints(in, 3)
	require.NoError(t, err, "valid sequence must pass")
	assert.Equal(t, []float64{-2, 5, 9}, pts, "points stored ascending")
	assert.Equal(t, Bounds{Low: -2, High: 9}, b, "bounds rederived from min/max")
	assert.Equal(t, []float64{5, -2, 9}, in, "caller's slice must not be reordered")
}

// TestCheckPoints_LengthMismatch verifies wrong-length sequences fail with
// ErrBreakpointVector.
func TestCheckPoints_LengthMismatch(t *testing.T) {
	_, _, err := checkPoints([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrBreakpointVector, "too short must error")

	_, _, err = checkPoints([]float64{1, 2, 3, 4}, 3)
	assert.ErrorIs(t, err, ErrBreakpointVector, "too long must error")
}

// TestCheckPoints_Duplicates verifies equal coordinates are rejected:
// they would collapse a segment to zero width.
func TestCheckPoints_Duplicates(t *testing.T) {
	_, _, err := checkPoints([]float64{1, 3, 3}, 3)
	assert.ErrorIs(t, err, ErrBreakpointVector, "duplicate coordinates must error")
}

// TestCheckPoints_NonFinite verifies NaN and Inf coordinates are rejected.
func TestCheckPoints_NonFinite(t *testing.T) {
	_, _, err := checkPoints([]float64{0, math.NaN(), 1}, 3)
	assert.ErrorIs(t, err, ErrNonFinite, "NaN breakpoint must error")

	_, _, err = checkPoints([]float64{0, 1, math.Inf(1)}, 3)
	assert.ErrorIs(t, err, ErrNonFinite, "Inf breakpoint must error")
}

// TestBracket_SegmentsAndEnds walks the bracket search across exact hits,
// interior positions, and both ends of the span.
func TestBracket_SegmentsAndEnds(t *testing.T) {
	ax := axis{n: 4, bounds: Bounds{Low: 0, High: 3}, points: []float64{0, 1, 2, 3}}

	cases := []struct {
		name   string
		x      float64
		lo, hi int
	}{
		{"below span holds first point", -1, 0, 0},
		{"exact first point", 0, 0, 0},
		{"interior of first segment", 0.5, 0, 1},
		{"exact interior point", 2, 2, 2},
		{"interior of last segment", 2.5, 2, 3},
		{"exact last point", 3, 3, 3},
		{"above span holds last point", 9, 3, 3},
	}
	for _, tc := range cases {
		lo, hi := ax.bracket(tc.x)
		assert.Equal(t, tc.lo, lo, "%s: lo", tc.name)
		assert.Equal(t, tc.hi, hi, "%s: hi", tc.name)
	}
}

// TestWeight_DegenerateIsZero verifies a collapsed bracket yields weight 0
// so the lerp reads the grid value directly.
func TestWeight_DegenerateIsZero(t *testing.T) {
	ax := axis{n: 3, bounds: defaultBounds(), points: []float64{0, 0.5, 1}}

	assert.Equal(t, 0.0, ax.weight(0.5, 1, 1), "degenerate bracket weighs zero")
	assert.Equal(t, 0.5, ax.weight(0.25, 0, 1), "midpoint of [0,0.5] weighs one half")
}

// TestNewBounds_Normalization verifies endpoint ordering, degenerate and
// non-finite rejection.
func TestNewBounds_Normalization(t *testing.T) {
	b, err := NewBounds(7, -1)
	require.NoError(t, err, "reversed endpoints are legal")
	assert.Equal(t, Bounds{Low: -1, High: 7}, b, "stored as min/max")

	_, err = NewBounds(2, 2)
	assert.ErrorIs(t, err, ErrBounds, "zero-width interval must error")

	_, err = NewBounds(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrNonFinite, "NaN endpoint must error")
}

// TestBounds_ClipAndMasks verifies clamping and the strict comparisons
// behind the out-of-bounds masks.
func TestBounds_ClipAndMasks(t *testing.T) {
	b := Bounds{Low: 0, High: 10}

	assert.Equal(t, 0.0, b.Clip(-3), "below clamps to Low")
	assert.Equal(t, 10.0, b.Clip(42), "above clamps to High")
	assert.Equal(t, 4.5, b.Clip(4.5), "in-range is a fixpoint")
	assert.Equal(t, 10.0, b.Clip(math.Inf(1)), "+Inf clamps to High")

	assert.True(t, b.Below(-0.001), "strictly below Low")
	assert.False(t, b.Below(0), "Low itself is inside")
	assert.True(t, b.Above(10.001), "strictly above High")
	assert.False(t, b.Above(10), "High itself is inside")
	assert.True(t, b.Contains(10), "closed interval")
	assert.Equal(t, 10.0, b.Span(), "span is High-Low")
}
