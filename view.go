// view.go re-exports the view hierarchy from internal/view.
package tiny

import "github.com/grindlemire/go-tiny/internal/view"

// View is a node in a view hierarchy.
type View = view.View

// Ordering controls where AddPositioned inserts a subview.
type Ordering = view.Ordering

const (
	Above = view.Above
	Below = view.Below
)

// Constraint relates an attribute of one view to an attribute of another.
type Constraint = view.Constraint

// Attribute is the part of a view's layout a constraint refers to.
type Attribute = view.Attribute

const (
	AttrNone     = view.NotAnAttribute
	AttrLeft     = view.Left
	AttrRight    = view.Right
	AttrTop      = view.Top
	AttrBottom   = view.Bottom
	AttrLeading  = view.Leading
	AttrTrailing = view.Trailing
	AttrWidth    = view.Width
	AttrHeight   = view.Height
	AttrCenterX  = view.CenterX
	AttrCenterY  = view.CenterY
)

// Relation is the comparison a constraint expresses.
type Relation = view.Relation

const (
	Equal              = view.Equal
	LessThanOrEqual    = view.LessThanOrEqual
	GreaterThanOrEqual = view.GreaterThanOrEqual
)

// NewView creates a detached view with the given frame.
func NewView(id string, frame Rect) *View {
	return view.New(id, frame)
}

// Activate marks constraints as participating in queries.
func Activate(cs ...*Constraint) {
	view.Activate(cs...)
}

// Deactivate removes constraints from queries.
func Deactivate(cs ...*Constraint) {
	view.Deactivate(cs...)
}
