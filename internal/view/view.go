package view

import (
	"slices"

	"github.com/grindlemire/go-tiny/internal/geom"
)

// Ordering controls where AddPositioned inserts a subview.
type Ordering int

const (
	// Above places the subview in front of its sibling.
	Above Ordering = iota
	// Below places the subview behind its sibling.
	Below
)

// View is a node in a view hierarchy.
type View struct {
	ID    string
	Frame geom.Rect

	superview   *View
	subviews    []*View
	constraints []*Constraint
}

// New creates a detached view.
func New(id string, frame geom.Rect) *View {
	return &View{ID: id, Frame: frame}
}

// Subviews returns a copy of the child views, back to front.
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// Superview returns the parent view, or nil if this is a root.
func (v *View) Superview() *View {
	return v.superview
}

// Root walks up to the topmost ancestor.
func (v *View) Root() *View {
	root := v
	for root.superview != nil {
		root = root.superview
	}
	return root
}

// Subview finds the first descendant with the given identifier, depth first.
// The receiver itself is never returned.
func (v *View) Subview(id string) *View {
	for _, sub := range v.subviews {
		if sub.ID == id {
			return sub
		}
		if len(sub.subviews) > 0 {
			if found := sub.Subview(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Add appends children in front of the existing subviews.
// A child that already has a superview is moved.
func (v *View) Add(children ...*View) {
	for _, child := range children {
		v.insert(child, len(v.subviews))
	}
}

// AddPositioned inserts child above or below relativeTo. If relativeTo is nil
// or not a subview of v, child goes to the very front (Above) or back (Below).
func (v *View) AddPositioned(child *View, place Ordering, relativeTo *View) {
	if child.superview != nil {
		child.superview.Remove(child)
	}

	idx := -1
	if relativeTo != nil {
		idx = v.indexOf(relativeTo)
	}

	switch {
	case idx < 0 && place == Below:
		v.insert(child, 0)
	case idx < 0:
		v.insert(child, len(v.subviews))
	case place == Below:
		v.insert(child, idx)
	default:
		v.insert(child, idx+1)
	}
}

func (v *View) insert(child *View, at int) {
	if child.superview != nil {
		child.superview.Remove(child)
		if at > len(v.subviews) {
			at = len(v.subviews)
		}
	}
	child.superview = v
	v.subviews = append(v.subviews, nil)
	copy(v.subviews[at+1:], v.subviews[at:])
	v.subviews[at] = child
}

func (v *View) indexOf(child *View) int {
	for i, sub := range v.subviews {
		if sub == child {
			return i
		}
	}
	return -1
}

// Remove detaches child if v is its superview.
// Returns true if the child was found and removed.
func (v *View) Remove(child *View) bool {
	if child == nil || child.superview != v {
		return false
	}
	i := v.indexOf(child)
	if i < 0 {
		return false
	}
	v.subviews = append(v.subviews[:i], v.subviews[i+1:]...)
	child.superview = nil
	return true
}

// RemoveAll removes each of children that is a subview of v.
func (v *View) RemoveAll(children ...*View) {
	for _, child := range children {
		v.Remove(child)
	}
}

// RemoveFromSuperview detaches v from its parent, if any.
func (v *View) RemoveFromSuperview() {
	if v.superview != nil {
		v.superview.Remove(v)
	}
}

// ConvertToRoot converts r from v's own coordinate space to the root's.
func (v *View) ConvertToRoot(r geom.Rect) geom.Rect {
	for cur := v; cur.superview != nil; cur = cur.superview {
		r = r.AddPoint(cur.Frame.Origin)
	}
	return r
}

// FrameInRoot returns v's frame in the root's coordinate space.
func (v *View) FrameInRoot() geom.Rect {
	return v.ConvertToRoot(geom.Rect{Size: v.Frame.Size})
}
