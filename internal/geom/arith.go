package geom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// AddSize returns r with s added to its size. The origin is unchanged.
func (r Rect) AddSize(s Size) Rect {
	return NewRect(r.Origin.X, r.Origin.Y, r.Size.Width+s.Width, r.Size.Height+s.Height)
}

// SubSize returns r with s subtracted from its size. The origin is unchanged.
func (r Rect) SubSize(s Size) Rect {
	return NewRect(r.Origin.X, r.Origin.Y, r.Size.Width-s.Width, r.Size.Height-s.Height)
}

// AddPoint returns r with p added to its origin. The size is unchanged.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{Origin: r.Origin.Add(p), Size: r.Size}
}

// SubPoint returns r with p subtracted from its origin. The size is unchanged.
func (r Rect) SubPoint(p Point) Rect {
	return Rect{Origin: r.Origin.Sub(p), Size: r.Size}
}

// Mul multiplies origin and size by k.
func (r Rect) Mul(k float64) Rect {
	return Rect{Origin: r.Origin.Mul(k), Size: r.Size.Mul(k)}
}

// Div divides origin and size by k. Division by zero yields infinities or NaN.
func (r Rect) Div(k float64) Rect {
	return NewRect(r.Origin.X/k, r.Origin.Y/k, r.Size.Width/k, r.Size.Height/k)
}

// Round rounds origin and size independently to the nearest integer,
// with halves rounded away from zero.
func (r Rect) Round() Rect {
	return Rect{Origin: r.Origin.Round(), Size: r.Size.Round()}
}

// GrowBy adds s to the size of r in place.
func (r *Rect) GrowBy(s Size) {
	*r = r.AddSize(s)
}

// ShrinkBy subtracts s from the size of r in place.
func (r *Rect) ShrinkBy(s Size) {
	*r = r.SubSize(s)
}

// Offset adds p to the origin of r in place.
func (r *Rect) Offset(p Point) {
	*r = r.AddPoint(p)
}

// Unoffset subtracts p from the origin of r in place.
func (r *Rect) Unoffset(p Point) {
	*r = r.SubPoint(p)
}

// MulAssign multiplies origin and size by k in place.
func (r *Rect) MulAssign(k float64) {
	*r = r.Mul(k)
}

// DivAssign divides origin and size by k in place.
func (r *Rect) DivAssign(k float64) {
	*r = r.Div(k)
}

// ApproxEqual reports whether every coordinate of a and b is within tol of the
// other, either absolutely or relative to its magnitude.
func ApproxEqual(a, b Rect, tol float64) bool {
	return floats.EqualApprox(
		[]float64{a.Origin.X, a.Origin.Y, a.Size.Width, a.Size.Height},
		[]float64{b.Origin.X, b.Origin.Y, b.Size.Width, b.Size.Height},
		tol,
	)
}

// ApproxEqualPoint is ApproxEqual for points.
func ApproxEqualPoint(a, b Point, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a.X, b.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(a.Y, b.Y, tol, tol)
}
