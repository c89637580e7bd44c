// Package view provides a minimal view hierarchy with layout-constraint queries.
//
// Views carry an identifier and a frame in their superview's coordinate space.
// Constraints are plain records; this package finds, filters and deactivates
// them but never solves them.
package view
