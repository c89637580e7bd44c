package tiny

import (
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Origin.X != 5 {
		t.Errorf("NewRect().Origin.X = %g, want 5", r.Origin.X)
	}
	if r.Origin.Y != 10 {
		t.Errorf("NewRect().Origin.Y = %g, want 10", r.Origin.Y)
	}
	if r.Size.Width != 20 {
		t.Errorf("NewRect().Size.Width = %g, want 20", r.Size.Width)
	}
	if r.Size.Height != 15 {
		t.Errorf("NewRect().Size.Height = %g, want 15", r.Size.Height)
	}
}

func TestRect_MaxXMaxY(t *testing.T) {
	type tc struct {
		rect       Rect
		maxX, maxY float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect: NewRect(5, 10, 20, 15),
			maxX: 25,
			maxY: 25,
		},
		"zero position": {
			rect: NewRect(0, 0, 10, 10),
			maxX: 10,
			maxY: 10,
		},
		"negative position": {
			rect: NewRect(-5, -5, 10, 10),
			maxX: 5,
			maxY: 5,
		},
		"zero size": {
			rect: NewRect(5, 5, 0, 0),
			maxX: 5,
			maxY: 5,
		},
		"negative size": {
			rect: NewRect(10, 10, -4, -6),
			maxX: 10,
			maxY: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.MaxX(); got != tt.maxX {
				t.Errorf("MaxX() = %g, want %g", got, tt.maxX)
			}
			if got := tt.rect.MaxY(); got != tt.maxY {
				t.Errorf("MaxY() = %g, want %g", got, tt.maxY)
			}
		})
	}
}

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints(Pt(3, 7), Pt(1, 2))
	if want := NewRect(1, 2, 2, 5); got != want {
		t.Errorf("RectFromPoints() = %v, want %v", got, want)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect    Rect
		isEmpty bool
	}

	tests := map[string]tc{
		"standard rect": {
			rect:    NewRect(0, 0, 10, 5),
			isEmpty: false,
		},
		"zero width": {
			rect:    NewRect(0, 0, 0, 10),
			isEmpty: true,
		},
		"negative height": {
			rect:    NewRect(0, 0, 10, -5),
			isEmpty: true,
		},
		"fractional": {
			rect:    NewRect(0, 0, 0.5, 0.5),
			isEmpty: false,
		},
		"zero rect": {
			rect:    Rect{},
			isEmpty: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		p        Point
		contains bool
	}

	r := NewRect(10, 20, 30, 40)

	tests := map[string]tc{
		"point inside":                  {p: Pt(20, 30), contains: true},
		"top-left corner (inside)":      {p: Pt(10, 20), contains: true},
		"just inside right edge":        {p: Pt(39.5, 30), contains: true},
		"right edge (outside)":          {p: Pt(40, 30), contains: false},
		"bottom edge (outside)":         {p: Pt(20, 60), contains: false},
		"bottom-right corner (outside)": {p: Pt(40, 60), contains: false},
		"point left of rect":            {p: Pt(5, 30), contains: false},
		"point above rect":              {p: Pt(20, 10), contains: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.contains {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.contains)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer    Rect
		inner    Rect
		contains bool
	}

	tests := map[string]tc{
		"fully contained": {
			outer:    NewRect(0, 0, 100, 100),
			inner:    NewRect(10, 10, 20, 20),
			contains: true,
		},
		"same rect": {
			outer:    NewRect(10, 10, 20, 20),
			inner:    NewRect(10, 10, 20, 20),
			contains: true,
		},
		"partial overlap": {
			outer:    NewRect(10, 10, 20, 20),
			inner:    NewRect(5, 15, 10, 10),
			contains: false,
		},
		"disjoint": {
			outer:    NewRect(0, 0, 10, 10),
			inner:    NewRect(20, 20, 10, 10),
			contains: false,
		},
		"empty inner": {
			outer:    NewRect(0, 0, 10, 10),
			inner:    NewRect(5, 5, 0, 0),
			contains: true,
		},
		"empty outer": {
			outer:    NewRect(0, 0, 0, 0),
			inner:    NewRect(0, 0, 10, 10),
			contains: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.contains {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.contains)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	for _, a := range []Anchor{TopLeft, CenterBottom, Center} {
		got, ok := ParseAnchor(a.String())
		if !ok || got != a {
			t.Errorf("ParseAnchor(%q) = %v, %v, want %v, true", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAnchor("middle"); ok {
		t.Error("ParseAnchor(\"middle\") ok = true, want false")
	}
}
