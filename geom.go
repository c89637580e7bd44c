// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package tiny

import "github.com/grindlemire/go-tiny/internal/geom"

// Point represents an x/y coordinate.
type Point = geom.Point

// Size represents a width/height pair.
type Size = geom.Size

// Rect represents a rectangle as an origin plus a size.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Anchor names one of the nine reference points of a rectangle.
type Anchor = geom.Anchor

const (
	TopLeft      = geom.TopLeft
	TopRight     = geom.TopRight
	BottomLeft   = geom.BottomLeft
	BottomRight  = geom.BottomRight
	CenterLeft   = geom.CenterLeft
	CenterRight  = geom.CenterRight
	CenterTop    = geom.CenterTop
	CenterBottom = geom.CenterBottom
	Center       = geom.Center
)

// AlignOption configures an alignment.
type AlignOption = geom.AlignOption

// ScaleOption configures a scale.
type ScaleOption = geom.ScaleOption

// Pt creates a Point.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// Sz creates a Size.
func Sz(w, h float64) Size {
	return geom.Sz(w, h)
}

// NewRect creates a Rect with the given origin and size.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// RectFromPoints returns the smallest rect with a and b as opposite corners.
func RectFromPoints(a, b Point) Rect {
	return geom.RectFromPoints(a, b)
}

// ParseRect parses "x,y,w,h" into a Rect.
func ParseRect(s string) (Rect, error) {
	return geom.ParseRect(s)
}

// ParsePoint parses "x,y" into a Point.
func ParsePoint(s string) (Point, error) {
	return geom.ParsePoint(s)
}

// ParseAnchor returns the anchor with the given kebab-case name.
func ParseAnchor(name string) (Anchor, bool) {
	return geom.ParseAnchor(name)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges with explicit top, right, bottom, left values.
func EdgeTRBL(t, r, b, l float64) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}

// Margin offsets an alignment by m.
func Margin(m float64) AlignOption {
	return geom.Margin(m)
}

// Pivot keeps p fixed while scaling.
func Pivot(p Point) ScaleOption {
	return geom.Pivot(p)
}

// ApproxEqual reports whether a and b match within tol.
func ApproxEqual(a, b Rect, tol float64) bool {
	return geom.ApproxEqual(a, b, tol)
}
