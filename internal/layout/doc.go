// Package layout holds the geometry and size-negotiation primitives shared by
// every component: points, sizes, rectangles, edge insets, the main/cross axis
// helpers, the [Constraint] passed down a layout call, and the pure
// justify/align post-pass used by linear layouts.
//
// Coordinates are float64 so that unbounded axes can be expressed with
// +Inf. Types are re-exported through the root compose package.
package layout
