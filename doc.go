// Package lut is your embeddable toolbox for bounded, piecewise-linear
// lookup tables — curves and surfaces that slot straight into numerical
// and simulation models.
//
// 🚀 What is lut?
//
//	A small, deterministic library that maps one or two numeric inputs to
//	a scalar response by linear interpolation over a breakpoint grid:
//		• Table1D: a curve over a single input axis
//		• Table2D: a surface over a (row, column) axis pair
//		• Uniform breakpoint generation or explicit user sequences
//		• Bounds clamping on every lookup — no extrapolation, ever
//		• A pure Frame value + Surface capability for plotting consumers
//
// ✨ Why choose lut?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – transactional setters, sentinel errors,
//     strict finite-number policy
//   - Pure Go – no cgo, no hidden deps, no graphics stack in the core
//   - Deterministic – every operation is a local computation over
//     table state plus caller-supplied values
//
// Everything lives under one subpackage:
//
//	table/ — Bounds, breakpoint axes, Table1D, Table2D, rendering handshake
//
// Quick ASCII example:
//
//	Z ▲        ●
//	  │      ╱
//	  │    ●
//	  │  ╱
//	  ●──────────▶ X
//
//	three breakpoints, two linear segments, inputs clamped to [X₀, X₂].
//
// Dive into table/doc.go and table/example_test.go for usage, and
// examples/ for runnable demos.
//
//	go get github.com/katalvlaran/lut/table
package lut
