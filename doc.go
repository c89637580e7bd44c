// Package tiny provides floating-point rectangle geometry for layout code,
// together with a small view hierarchy and bundle metadata lookups.
//
// Users import this single package for the public API: rect construction,
// anchors, alignment, scaling, views with constraint queries, and bundles.
//
//	r := tiny.NewRect(0, 0, 40, 20).
//		AlignInnerRight(screen, tiny.Margin(8)).
//		AlignInnerTop(screen, tiny.Margin(8))
package tiny
