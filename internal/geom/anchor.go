package geom

// Anchor names one of the nine reference points of a rectangle.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
	CenterLeft
	CenterRight
	CenterTop
	CenterBottom
	Center
)

// Anchors lists every anchor in declaration order.
var Anchors = []Anchor{
	TopLeft, TopRight, BottomLeft, BottomRight,
	CenterLeft, CenterRight, CenterTop, CenterBottom,
	Center,
}

var anchorNames = map[Anchor]string{
	TopLeft:      "top-left",
	TopRight:     "top-right",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
	CenterLeft:   "center-left",
	CenterRight:  "center-right",
	CenterTop:    "center-top",
	CenterBottom: "center-bottom",
	Center:       "center",
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAnchor returns the anchor with the given kebab-case name.
func ParseAnchor(name string) (Anchor, bool) {
	for a, n := range anchorNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}

// Opposite returns the anchor that stays fixed when a is assigned.
// Center has no opposite and returns itself.
func (a Anchor) Opposite() Anchor {
	switch a {
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	case CenterLeft:
		return CenterRight
	case CenterRight:
		return CenterLeft
	case CenterTop:
		return CenterBottom
	case CenterBottom:
		return CenterTop
	default:
		return Center
	}
}

// --- Getters ---

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.MinX(), Y: r.MinY()}
}

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point {
	return Point{X: r.MaxX(), Y: r.MinY()}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.MinX(), Y: r.MaxY()}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.MaxX(), Y: r.MaxY()}
}

// Center returns the midpoint.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// CenterLeft returns the midpoint of the left edge.
func (r Rect) CenterLeft() Point {
	return Point{X: r.MinX(), Y: r.MidY()}
}

// CenterRight returns the midpoint of the right edge.
func (r Rect) CenterRight() Point {
	return Point{X: r.MaxX(), Y: r.MidY()}
}

// CenterTop returns the midpoint of the top edge.
func (r Rect) CenterTop() Point {
	return Point{X: r.MidX(), Y: r.MinY()}
}

// CenterBottom returns the midpoint of the bottom edge.
func (r Rect) CenterBottom() Point {
	return Point{X: r.MidX(), Y: r.MaxY()}
}

// Anchor returns the coordinates of anchor a.
func (r Rect) Anchor(a Anchor) Point {
	switch a {
	case TopLeft:
		return r.TopLeft()
	case TopRight:
		return r.TopRight()
	case BottomLeft:
		return r.BottomLeft()
	case BottomRight:
		return r.BottomRight()
	case CenterLeft:
		return r.CenterLeft()
	case CenterRight:
		return r.CenterRight()
	case CenterTop:
		return r.CenterTop()
	case CenterBottom:
		return r.CenterBottom()
	default:
		return r.Center()
	}
}

// --- Setters ---
//
// Moving a corner resizes the rectangle while the opposite corner stays put.
// Moving an edge midpoint does the same along its own axis; along the other
// axis the rectangle shrinks or grows symmetrically about its center, so the
// perpendicular coordinate of the new value does not round-trip. Moving the
// center only translates.

// WithTopLeft returns r resized so that its top-left corner is at p.
func (r Rect) WithTopLeft(p Point) Rect {
	r.Size.Width -= p.X - r.MinX()
	r.Size.Height -= p.Y - r.MinY()
	r.Origin = p
	return r
}

// WithTopRight returns r resized so that its top-right corner is at p.
func (r Rect) WithTopRight(p Point) Rect {
	r.Size.Width += p.X - r.MaxX()
	r.Size.Height -= p.Y - r.MinY()
	r.Origin = p.Translate(-r.Width(), 0)
	return r
}

// WithBottomLeft returns r resized so that its bottom-left corner is at p.
func (r Rect) WithBottomLeft(p Point) Rect {
	r.Size.Width -= p.X - r.MinX()
	r.Size.Height += p.Y - r.MaxY()
	r.Origin = p.Translate(0, -r.Height())
	return r
}

// WithBottomRight returns r resized so that its bottom-right corner is at p.
func (r Rect) WithBottomRight(p Point) Rect {
	r.Size.Width += p.X - r.MaxX()
	r.Size.Height += p.Y - r.MaxY()
	r.Origin = p.Translate(-r.Width(), -r.Height())
	return r
}

// WithCenter returns r translated so that its center is at p.
func (r Rect) WithCenter(p Point) Rect {
	r.Origin = p.Translate(-r.Width()/2, -r.Height()/2)
	return r
}

// WithCenterLeft returns r with its left edge at p.X, shrunk or grown
// vertically by twice the distance p.Y moved from the vertical center.
func (r Rect) WithCenterLeft(p Point) Rect {
	diff := p.Y - r.MidY()
	r.Size.Width -= p.X - r.MinX()
	r.Size.Height -= diff * 2
	r.Origin = p.Translate(0, -r.Height()/2-diff)
	return r
}

// WithCenterRight returns r with its right edge at p.X, shrunk or grown
// vertically by twice the distance p.Y moved from the vertical center.
func (r Rect) WithCenterRight(p Point) Rect {
	diff := p.Y - r.MidY()
	r.Size.Width += p.X - r.MaxX()
	r.Size.Height -= diff * 2
	r.Origin = p.Translate(-r.Width(), -r.Height()/2-diff)
	return r
}

// WithCenterTop returns r with its top edge at p.Y, shrunk or grown
// horizontally by twice the distance p.X moved from the horizontal center.
func (r Rect) WithCenterTop(p Point) Rect {
	diff := p.X - r.MidX()
	r.Size.Width -= diff * 2
	r.Size.Height -= p.Y - r.MinY()
	r.Origin = p.Translate(-r.Width()/2-diff, 0)
	return r
}

// WithCenterBottom returns r with its bottom edge at p.Y, shrunk or grown
// horizontally by twice the distance p.X moved from the horizontal center.
func (r Rect) WithCenterBottom(p Point) Rect {
	diff := p.X - r.MidX()
	r.Size.Width -= diff * 2
	r.Size.Height += p.Y - r.MaxY()
	r.Origin = p.Translate(-r.Width()/2-diff, -r.Height())
	return r
}

// WithAnchor dispatches to the With* method for a.
func (r Rect) WithAnchor(a Anchor, p Point) Rect {
	switch a {
	case TopLeft:
		return r.WithTopLeft(p)
	case TopRight:
		return r.WithTopRight(p)
	case BottomLeft:
		return r.WithBottomLeft(p)
	case BottomRight:
		return r.WithBottomRight(p)
	case CenterLeft:
		return r.WithCenterLeft(p)
	case CenterRight:
		return r.WithCenterRight(p)
	case CenterTop:
		return r.WithCenterTop(p)
	case CenterBottom:
		return r.WithCenterBottom(p)
	default:
		return r.WithCenter(p)
	}
}

// In-place forms. Each assigns r the result of the matching With method.

// SetTopLeft moves the top-left corner of r to p in place.
func (r *Rect) SetTopLeft(p Point) {
	*r = r.WithTopLeft(p)
}

// SetTopRight moves the top-right corner of r to p in place.
func (r *Rect) SetTopRight(p Point) {
	*r = r.WithTopRight(p)
}

// SetBottomLeft moves the bottom-left corner of r to p in place.
func (r *Rect) SetBottomLeft(p Point) {
	*r = r.WithBottomLeft(p)
}

// SetBottomRight moves the bottom-right corner of r to p in place.
func (r *Rect) SetBottomRight(p Point) {
	*r = r.WithBottomRight(p)
}

// SetCenter moves the midpoint of r to p in place.
func (r *Rect) SetCenter(p Point) {
	*r = r.WithCenter(p)
}

// SetCenterLeft moves the midpoint of the left edge of r to p in place.
func (r *Rect) SetCenterLeft(p Point) {
	*r = r.WithCenterLeft(p)
}

// SetCenterRight moves the midpoint of the right edge of r to p in place.
func (r *Rect) SetCenterRight(p Point) {
	*r = r.WithCenterRight(p)
}

// SetCenterTop moves the midpoint of the top edge of r to p in place.
func (r *Rect) SetCenterTop(p Point) {
	*r = r.WithCenterTop(p)
}

// SetCenterBottom moves the midpoint of the bottom edge of r to p in place.
func (r *Rect) SetCenterBottom(p Point) {
	*r = r.WithCenterBottom(p)
}

// SetAnchor assigns anchor a of r to p in place.
func (r *Rect) SetAnchor(a Anchor, p Point) {
	*r = r.WithAnchor(a, p)
}
