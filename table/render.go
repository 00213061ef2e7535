package table

// Frame is the pure-data form of a table's visual representation: the
// breakpoint axes, an independent copy of the response grid, and the
// display metadata. The numerical core carries no graphics dependency;
// plotting collaborators consume Frames through the Surface capability
// or read them directly.
//
// Shapes:
//   - Table1D: X holds the breakpoints, Y is nil, Z holds a single row of
//     len(X) responses.
//   - Table2D: X holds the row-axis breakpoints, Y the column-axis
//     breakpoints, Z is shaped len(X) × len(Y) with Z[i][j] the response
//     at (X[i], Y[j]).
type Frame struct {
	Title  string // table name
	XLabel string // first input axis label
	YLabel string // second input axis label; empty for Table1D
	ZLabel string // response label

	X []float64   // first-axis breakpoints
	Y []float64   // second-axis breakpoints; nil for Table1D
	Z [][]float64 // response copy
}

// Surface is the drawing capability a rendering collaborator implements:
// anything from an ASCII sketch to a full 3-D mesh plot. Draw receives an
// independent Frame copy and may retain it.
type Surface interface {
	Draw(f Frame) error
}

// renderOn is the shared Render delegation used by both tables.
func renderOn(s Surface, f Frame) error {
	if s == nil {
		return ErrNoSurface
	}

	return s.Draw(f)
}
