package geom

// Edges holds per-side distances used by Inset and Outset.
// Positive values move a side inward.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll uses d on every side.
func EdgeAll(d float64) Edges {
	return Edges{Top: d, Right: d, Bottom: d, Left: d}
}

// EdgeSymmetric uses v for top and bottom and h for left and right.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL lists the sides clockwise from the top, CSS style.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal is the total change in width.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical is the total change in height.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Negate flips every side, turning an inset into an outset.
func (e Edges) Negate() Edges {
	return Edges{Top: -e.Top, Right: -e.Right, Bottom: -e.Bottom, Left: -e.Left}
}

// IsZero reports whether no side moves.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
