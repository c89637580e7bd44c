// Package geom implements floating-point 2D geometry for axis-aligned rectangles.
//
// A [Rect] is an origin [Point] plus an extent [Size]. Every operation takes a
// Rect by value and returns a new one; the handful of pointer-receiver methods
// (SetTopLeft, Move, Resize, ...) are defined as "assign the receiver the
// result of the value form" and never do anything else.
//
// Operations that can fail geometrically ([Rect.ContainIn], [Rect.BoundBy],
// [Rect.Intersection]) report it with a boolean rather than an error. Degenerate
// input such as NaN coordinates or a negative size is not rejected and
// propagates through the arithmetic.
//
// Types are re-exported through the root tiny package for public consumption.
package geom
