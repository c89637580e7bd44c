package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rect represents an axis-aligned rectangle.
// Origin is the top-left corner when Size is non-negative.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectFromPoints creates the Rect spanned by two arbitrary corner points.
// The result always has a non-negative size regardless of argument order.
func RectFromPoints(a, b Point) Rect {
	return NewRect(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}

// MinX returns the smallest x-coordinate of the rectangle.
func (r Rect) MinX() float64 {
	return math.Min(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MaxX returns the largest x-coordinate of the rectangle.
func (r Rect) MaxX() float64 {
	return math.Max(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MidX returns the x-coordinate of the horizontal center.
func (r Rect) MidX() float64 {
	return r.Origin.X + r.Size.Width/2
}

// MinY returns the smallest y-coordinate of the rectangle.
func (r Rect) MinY() float64 {
	return math.Min(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// MaxY returns the largest y-coordinate of the rectangle.
func (r Rect) MaxY() float64 {
	return math.Max(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// MidY returns the y-coordinate of the vertical center.
func (r Rect) MidY() float64 {
	return r.Origin.Y + r.Size.Height/2
}

// Width returns the horizontal extent, always non-negative.
func (r Rect) Width() float64 {
	return math.Abs(r.Size.Width)
}

// Height returns the vertical extent, always non-negative.
func (r Rect) Height() float64 {
	return math.Abs(r.Size.Height)
}

// Standardize returns an equivalent rectangle with a non-negative size.
func (r Rect) Standardize() Rect {
	return NewRect(r.MinX(), r.MinY(), r.Width(), r.Height())
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Size.Width * r.Size.Height
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.MinX() >= r.MinX() && other.MinY() >= r.MinY() &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Intersection returns the overlapping region of two rectangles.
// Rectangles that only touch along an edge intersect in a zero-width or
// zero-height rectangle; ok is false only when they are fully disjoint.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	x0 := math.Max(r.MinX(), other.MinX())
	y0 := math.Max(r.MinY(), other.MinY())
	x1 := math.Min(r.MaxX(), other.MaxX())
	y1 := math.Min(r.MaxY(), other.MaxY())

	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return NewRect(x0, y0, x1-x0, y1-y0), true
}

// Intersects returns true if the two rectangles overlap with positive area.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	is, ok := r.Intersection(other)
	return ok && !is.IsEmpty()
}

// IntersectsHorizontally returns true if the projections of both rectangles
// onto the x axis overlap.
func (r Rect) IntersectsHorizontally(other Rect) bool {
	return r.MinX() < other.MaxX() && r.MaxX() > other.MinX()
}

// IntersectsVertically returns true if the projections of both rectangles
// onto the y axis overlap.
func (r Rect) IntersectsVertically(other Rect) bool {
	return r.MinY() < other.MaxY() && r.MaxY() > other.MinY()
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := math.Min(r.MinX(), other.MinX())
	y := math.Min(r.MinY(), other.MinY())
	right := math.Max(r.MaxX(), other.MaxX())
	bottom := math.Max(r.MaxY(), other.MaxY())

	return NewRect(x, y, right-x, bottom-y)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%v, %v}", r.Origin, r.Size)
}

// ParseRect parses "x,y,w,h" into a Rect. Whitespace around values is ignored.
func ParseRect(s string) (Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return Rect{}, fmt.Errorf("parse rect %q: %w", s, err)
	}
	return NewRect(v[0], v[1], v[2], v[3]), nil
}

// ParsePoint parses "x,y" into a Point.
func ParsePoint(s string) (Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return Point{X: v[0], Y: v[1]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
