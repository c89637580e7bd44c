package geom

// --- Translation ---

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Origin = r.Origin.Translate(dx, dy)
	return r
}

// TranslateX returns a new Rect moved by dx along the x axis.
func (r Rect) TranslateX(dx float64) Rect {
	return r.Translate(dx, 0)
}

// TranslateY returns a new Rect moved by dy along the y axis.
func (r Rect) TranslateY(dy float64) Rect {
	return r.Translate(0, dy)
}

// TranslateBy returns a new Rect moved by d along both axes.
func (r Rect) TranslateBy(d float64) Rect {
	return r.Translate(d, d)
}

// TranslateVec returns a new Rect moved by the vector v.
func (r Rect) TranslateVec(v Point) Rect {
	return r.Translate(v.X, v.Y)
}

// TranslatePolar returns a new Rect moved by distance in the direction of angle (radians).
func (r Rect) TranslatePolar(distance, angle float64) Rect {
	r.Origin = r.Origin.TranslatePolar(distance, angle)
	return r
}

// Move translates r in place.
func (r *Rect) Move(dx, dy float64) {
	*r = r.Translate(dx, dy)
}

// MoveX translates r in place along x.
func (r *Rect) MoveX(dx float64) {
	*r = r.TranslateX(dx)
}

// MoveY translates r in place along y.
func (r *Rect) MoveY(dy float64) {
	*r = r.TranslateY(dy)
}

// MoveBy translates r in place by d on both axes.
func (r *Rect) MoveBy(d float64) {
	*r = r.TranslateBy(d)
}

// MoveVec translates r in place by v.
func (r *Rect) MoveVec(v Point) {
	*r = r.TranslateVec(v)
}

// MovePolar translates r in place by distance along angle, in radians.
func (r *Rect) MovePolar(distance, angle float64) {
	*r = r.TranslatePolar(distance, angle)
}

// --- Scaling ---

// ScaleOption configures a scale.
type ScaleOption func(*scaleConfig)

type scaleConfig struct {
	pivot    Point
	hasPivot bool
}

// Pivot keeps p fixed while scaling. Without it only the size changes and the
// origin stays where it is.
func Pivot(p Point) ScaleOption {
	return func(c *scaleConfig) {
		c.pivot = p
		c.hasPivot = true
	}
}

// Scale returns r with its width multiplied by sw and its height by sh.
func (r Rect) Scale(sw, sh float64, opts ...ScaleOption) Rect {
	var c scaleConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.hasPivot {
		r.Origin = r.Origin.Add(r.Origin.Sub(c.pivot).Scale(sw-1, sh-1))
	}
	r.Size = r.Size.Scale(sw, sh)
	return r
}

// ScaleWidth scales horizontally only.
func (r Rect) ScaleWidth(sw float64, opts ...ScaleOption) Rect {
	return r.Scale(sw, 1, opts...)
}

// ScaleHeight scales vertically only.
func (r Rect) ScaleHeight(sh float64, opts ...ScaleOption) Rect {
	return r.Scale(1, sh, opts...)
}

// ScaleUniform scales both axes by k.
func (r Rect) ScaleUniform(k float64, opts ...ScaleOption) Rect {
	return r.Scale(k, k, opts...)
}

// ScalePoint scales by (s.X, s.Y).
func (r Rect) ScalePoint(s Point, opts ...ScaleOption) Rect {
	return r.Scale(s.X, s.Y, opts...)
}

// ScaleSize scales by (s.Width, s.Height).
func (r Rect) ScaleSize(s Size, opts ...ScaleOption) Rect {
	return r.Scale(s.Width, s.Height, opts...)
}

// Resize scales r in place.
func (r *Rect) Resize(sw, sh float64, opts ...ScaleOption) {
	*r = r.Scale(sw, sh, opts...)
}

// ResizeUniform scales r in place by k on both axes.
func (r *Rect) ResizeUniform(k float64, opts ...ScaleOption) {
	*r = r.ScaleUniform(k, opts...)
}

// --- Insetting ---

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		r.Origin.X+edges.Left,
		r.Origin.Y+edges.Top,
		r.Size.Width-edges.Horizontal(),
		r.Size.Height-edges.Vertical(),
	)
}

// Outset returns a new Rect expanded outward by the given Edges.
// Positive values expand the rectangle; negative values shrink it.
func (r Rect) Outset(edges Edges) Rect {
	return r.Inset(edges.Negate())
}

// InsetBy shrinks r by d on all four sides.
func (r Rect) InsetBy(d float64) Rect {
	return r.Inset(EdgeAll(d))
}

// InsetX shrinks r by d on the left and right sides.
func (r Rect) InsetX(d float64) Rect {
	return r.Inset(EdgeSymmetric(0, d))
}

// InsetY shrinks r by d on the top and bottom sides.
func (r Rect) InsetY(d float64) Rect {
	return r.Inset(EdgeSymmetric(d, 0))
}

// --- Bounding ---

// BoundBy re-expresses r in container's coordinate space. ok is false if the
// two rectangles do not overlap at all.
func (r Rect) BoundBy(container Rect) (Rect, bool) {
	if _, ok := container.Intersection(r); !ok {
		return Rect{}, false
	}
	return r.SubPoint(container.Origin), true
}

// --- Flipping ---

// FlipHorizontally mirrors r about the vertical axis of containment, turning
// its offset from containment's left edge into an offset from the right edge.
func (r Rect) FlipHorizontally(containment Rect) Rect {
	return r.TranslateX((containment.Origin.X-r.Origin.X)*2 + containment.Width() - r.Width())
}

// FlipVertically mirrors r about the horizontal axis of containment.
func (r Rect) FlipVertically(containment Rect) Rect {
	return r.TranslateY((containment.Origin.Y-r.Origin.Y)*2 + containment.Height() - r.Height())
}

// Flip mirrors r about both axes of containment.
func (r Rect) Flip(containment Rect) Rect {
	return r.FlipHorizontally(containment).FlipVertically(containment)
}
