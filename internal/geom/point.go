package geom

import (
	"fmt"
	"math"
)

// Point represents an (X, Y) coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul returns p with both coordinates multiplied by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Scale returns p with X multiplied by sx and Y by sy.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// TranslatePolar returns p moved by distance in the direction of angle (radians).
func (p Point) TranslatePolar(distance, angle float64) Point {
	return Point{X: p.X + distance*math.Cos(angle), Y: p.Y + distance*math.Sin(angle)}
}

// Round rounds both coordinates half away from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is a width and height pair. Nothing enforces non-negative values.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Scale returns s with Width multiplied by sw and Height by sh.
func (s Size) Scale(sw, sh float64) Size {
	return Size{Width: s.Width * sw, Height: s.Height * sh}
}

// Mul returns s with both extents multiplied by k.
func (s Size) Mul(k float64) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// Round rounds both extents half away from zero.
func (s Size) Round() Size {
	return Size{Width: math.Round(s.Width), Height: math.Round(s.Height)}
}

// IsZero returns true if both extents are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("(%g, %g)", s.Width, s.Height)
}
