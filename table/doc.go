// Package table implements bounded, piecewise-linear lookup tables for
// embedding inside larger numerical and simulation models: a 1-D curve
// (Table1D) and a 2-D surface (Table2D) over regular or user-defined
// breakpoint grids.
//
// 🚀 What is a lookup table?
//
//	A precomputed mapping from one or two inputs to a scalar response,
//	evaluated by linear interpolation between breakpoints. Inputs outside
//	the configured Bounds clamp to the nearest bound — never extrapolated.
//	Typical homes:
//	  • Sensor calibration curves (thermistors, load cells)
//	  • Engine/actuator maps (torque vs. rpm × throttle)
//	  • Gain scheduling & controller tuning surfaces
//	  • Any hot path that trades memory for a transcendental
//
// ✨ Key features:
//   - Fixed breakpoint counts with uniform generation (linspace) or
//     explicit user sequences that rederive Bounds from their min/max
//   - Strict validation with sentinel errors (errors.Is-friendly); every
//     setter is transactional — failure leaves prior state untouched
//   - Finite-number policy: NaN/Inf responses and NaN inputs are rejected
//   - Shared LookupTable contract over both dimensionalities
//   - Graphics-free rendering: a pure Frame value plus a Surface
//     capability for external plotting consumers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lut/table"
//
//	t, err := table.New1D("temp", 3)          // breakpoints [0, 0.5, 1]
//	err = t.SetRange(0, 10)                   // clamp to [0, 10]
//	err = t.SetPoints(nil)                    // regenerate → [0, 5, 10]
//	err = t.SetCurve([]float64{0, 5, 20})     // response per breakpoint
//	v, err := t.At(7.5)                       // 12.5
//
// Performance:
//
//   - Construction / setters: O(n) or O(n log n) (explicit points sort)
//   - Interpolation: O(log n) per input (binary-search bracket + lerp),
//     O(log rows + log cols) for the bilinear surface
//
// See example_test.go for runnable scenarios and render.go for the
// plotting handshake.
package table
