package geom

// AlignOption configures an alignment.
type AlignOption func(*alignConfig)

type alignConfig struct {
	margin float64
}

// Margin offsets an alignment by m: inward for inner alignments, outward for outer ones.
func Margin(m float64) AlignOption {
	return func(c *alignConfig) {
		c.margin = m
	}
}

func margin(opts []AlignOption) float64 {
	var c alignConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c.margin
}

func (r Rect) withX(x float64) Rect {
	r.Origin.X = x
	return r
}

func (r Rect) withY(y float64) Rect {
	r.Origin.Y = y
	return r
}

// AlignInnerLeft places r's left edge on ref's left edge.
func (r Rect) AlignInnerLeft(ref Rect, opts ...AlignOption) Rect {
	return r.withX(ref.MinX() + margin(opts))
}

// AlignOuterLeft places r's right edge on ref's left edge.
func (r Rect) AlignOuterLeft(ref Rect, opts ...AlignOption) Rect {
	return r.withX(ref.MinX() - margin(opts) - r.Width())
}

// AlignInnerRight places r's right edge on ref's right edge.
func (r Rect) AlignInnerRight(ref Rect, opts ...AlignOption) Rect {
	return r.withX(ref.MaxX() - margin(opts) - r.Width())
}

// AlignOuterRight places r's left edge on ref's right edge.
func (r Rect) AlignOuterRight(ref Rect, opts ...AlignOption) Rect {
	return r.withX(ref.MaxX() + margin(opts))
}

// AlignInnerTop places r's top edge on ref's top edge.
func (r Rect) AlignInnerTop(ref Rect, opts ...AlignOption) Rect {
	return r.withY(ref.MinY() + margin(opts))
}

// AlignOuterTop places r's bottom edge on ref's top edge.
func (r Rect) AlignOuterTop(ref Rect, opts ...AlignOption) Rect {
	return r.withY(ref.MinY() - margin(opts) - r.Height())
}

// AlignInnerBottom places r's bottom edge on ref's bottom edge.
func (r Rect) AlignInnerBottom(ref Rect, opts ...AlignOption) Rect {
	return r.withY(ref.MaxY() - margin(opts) - r.Height())
}

// AlignOuterBottom places r's top edge on ref's bottom edge.
func (r Rect) AlignOuterBottom(ref Rect, opts ...AlignOption) Rect {
	return r.withY(ref.MaxY() + margin(opts))
}

// AlignCenter is an alias for CenterIn.
func (r Rect) AlignCenter(ref Rect) Rect {
	return r.CenterIn(ref)
}

// CenterAt places r's center exactly at p.
func (r Rect) CenterAt(p Point) Rect {
	return NewRect(p.X-r.Width()/2, p.Y-r.Height()/2, r.Size.Width, r.Size.Height)
}

// CenterIn centers r within ref on both axes.
func (r Rect) CenterIn(ref Rect) Rect {
	return r.CenterHorizontally(ref).CenterVertically(ref)
}

// CenterHorizontally centers r within ref on the x axis only.
func (r Rect) CenterHorizontally(ref Rect) Rect {
	return r.withX(ref.Origin.X + (ref.Width()-r.Width())/2)
}

// CenterVertically centers r within ref on the y axis only.
func (r Rect) CenterVertically(ref Rect) Rect {
	return r.withY(ref.Origin.Y + (ref.Height()-r.Height())/2)
}

// --- Containment ---

// ContainIn moves r the minimum distance needed to lie within ref on both axes.
// ok is false if r is wider or taller than ref.
func (r Rect) ContainIn(ref Rect) (Rect, bool) {
	h, ok := r.ContainHorizontally(ref)
	if !ok {
		return Rect{}, false
	}
	return h.ContainVertically(ref)
}

// ContainHorizontally moves r along the x axis so that it lies within ref's
// horizontal extent. ok is false if r is wider than ref.
func (r Rect) ContainHorizontally(ref Rect) (Rect, bool) {
	switch {
	case r.Width() > ref.Width():
		return Rect{}, false
	case r.MinX() < ref.MinX():
		return r.AlignInnerLeft(ref), true
	case r.MaxX() > ref.MaxX():
		return r.AlignInnerRight(ref), true
	default:
		return r, true
	}
}

// ContainVertically moves r along the y axis so that it lies within ref's
// vertical extent. ok is false if r is taller than ref.
func (r Rect) ContainVertically(ref Rect) (Rect, bool) {
	switch {
	case r.Height() > ref.Height():
		return Rect{}, false
	case r.MinY() < ref.MinY():
		return r.AlignInnerTop(ref), true
	case r.MaxY() > ref.MaxY():
		return r.AlignInnerBottom(ref), true
	default:
		return r, true
	}
}
