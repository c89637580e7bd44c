package view

import (
	"testing"

	"github.com/grindlemire/go-tiny/internal/geom"
)

func ids(views []*View) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestView_Add(t *testing.T) {
	root := New("root", geom.NewRect(0, 0, 100, 100))
	a := New("a", geom.Rect{})
	b := New("b", geom.Rect{})

	root.Add(a, b)

	if got := ids(root.Subviews()); !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("Subviews() = %v, want [a b]", got)
	}
	if a.Superview() != root {
		t.Error("a.Superview() != root")
	}
}

func TestView_AddMovesBetweenParents(t *testing.T) {
	p1 := New("p1", geom.Rect{})
	p2 := New("p2", geom.Rect{})
	child := New("child", geom.Rect{})

	p1.Add(child)
	p2.Add(child)

	if len(p1.Subviews()) != 0 {
		t.Errorf("p1 still has %d subviews", len(p1.Subviews()))
	}
	if child.Superview() != p2 {
		t.Error("child.Superview() != p2")
	}

	// Re-adding to the same parent moves it to the front.
	other := New("other", geom.Rect{})
	p2.Add(other, child)
	if got := ids(p2.Subviews()); !equalIDs(got, []string{"other", "child"}) {
		t.Errorf("Subviews() = %v, want [other child]", got)
	}
}

func TestView_AddPositioned(t *testing.T) {
	type tc struct {
		place      Ordering
		relativeTo string
		expected   []string
	}

	tests := map[string]tc{
		"above sibling":   {place: Above, relativeTo: "a", expected: []string{"a", "x", "b", "c"}},
		"below sibling":   {place: Below, relativeTo: "b", expected: []string{"a", "x", "b", "c"}},
		"below first":     {place: Below, relativeTo: "a", expected: []string{"x", "a", "b", "c"}},
		"above last":      {place: Above, relativeTo: "c", expected: []string{"a", "b", "c", "x"}},
		"above, no peer":  {place: Above, expected: []string{"a", "b", "c", "x"}},
		"below, no peer":  {place: Below, expected: []string{"x", "a", "b", "c"}},
		"unknown sibling": {place: Below, relativeTo: "stranger", expected: []string{"x", "a", "b", "c"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := New("root", geom.Rect{})
			root.Add(New("a", geom.Rect{}), New("b", geom.Rect{}), New("c", geom.Rect{}))

			var rel *View
			if tt.relativeTo == "stranger" {
				rel = New("stranger", geom.Rect{})
			} else if tt.relativeTo != "" {
				rel = root.Subview(tt.relativeTo)
			}

			x := New("x", geom.Rect{})
			root.AddPositioned(x, tt.place, rel)

			if got := ids(root.Subviews()); !equalIDs(got, tt.expected) {
				t.Errorf("Subviews() = %v, want %v", got, tt.expected)
			}
			if x.Superview() != root {
				t.Error("x.Superview() != root")
			}
		})
	}
}

func TestView_Subview(t *testing.T) {
	root := New("root", geom.Rect{})
	a := New("a", geom.Rect{})
	a1 := New("a1", geom.Rect{})
	a1x := New("target", geom.Rect{})
	b := New("target", geom.Rect{})

	root.Add(a, b)
	a.Add(a1)
	a1.Add(a1x)

	type tc struct {
		id       string
		expected *View
	}

	tests := map[string]tc{
		"direct child":            {id: "a", expected: a},
		"grandchild":              {id: "a1", expected: a1},
		"depth first wins":        {id: "target", expected: a1x},
		"missing":                 {id: "zzz", expected: nil},
		"receiver never returned": {id: "root", expected: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := root.Subview(tt.id); got != tt.expected {
				t.Errorf("Subview(%q) = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}

func TestView_Remove(t *testing.T) {
	root := New("root", geom.Rect{})
	other := New("other", geom.Rect{})
	a := New("a", geom.Rect{})
	b := New("b", geom.Rect{})
	c := New("c", geom.Rect{})
	root.Add(a, b, c)

	if other.Remove(a) {
		t.Error("Remove() succeeded on a view that is not the superview")
	}
	if a.Superview() != root {
		t.Error("a detached by a foreign Remove")
	}

	if !root.Remove(b) {
		t.Error("Remove(b) = false, want true")
	}
	if got := ids(root.Subviews()); !equalIDs(got, []string{"a", "c"}) {
		t.Errorf("Subviews() = %v, want [a c]", got)
	}
	if b.Superview() != nil {
		t.Error("b.Superview() != nil after Remove")
	}

	root.RemoveAll(a, c, b)
	if len(root.Subviews()) != 0 {
		t.Errorf("Subviews() = %v after RemoveAll", ids(root.Subviews()))
	}

	root.Add(a)
	a.RemoveFromSuperview()
	if a.Superview() != nil || len(root.Subviews()) != 0 {
		t.Error("RemoveFromSuperview() did not detach")
	}
	a.RemoveFromSuperview()
}

func TestView_ConvertToRoot(t *testing.T) {
	root := New("root", geom.NewRect(500, 500, 200, 200))
	panel := New("panel", geom.NewRect(10, 20, 100, 100))
	button := New("button", geom.NewRect(5, 5, 30, 10))
	root.Add(panel)
	panel.Add(button)

	if got, want := button.FrameInRoot(), geom.NewRect(15, 25, 30, 10); got != want {
		t.Errorf("FrameInRoot() = %v, want %v", got, want)
	}
	if got, want := button.ConvertToRoot(geom.NewRect(1, 1, 2, 2)), geom.NewRect(16, 26, 2, 2); got != want {
		t.Errorf("ConvertToRoot() = %v, want %v", got, want)
	}
	if button.Root() != root {
		t.Error("Root() != root")
	}
}

func TestView_SubviewsIsCopy(t *testing.T) {
	root := New("root", geom.NewRect(0, 0, 100, 100))
	root.Add(New("a", geom.Rect{}), New("b", geom.Rect{}))

	got := root.Subviews()
	got[0], got[1] = got[1], got[0]
	_ = append(got[:1], New("x", geom.Rect{}))

	if after := ids(root.Subviews()); !equalIDs(after, []string{"a", "b"}) {
		t.Errorf("Subviews() after modifying a returned slice = %v, want [a b]", after)
	}
}
