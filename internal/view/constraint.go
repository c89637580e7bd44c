package view

// Attribute is the part of a view's layout a constraint refers to.
type Attribute int

const (
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
)

var attributeNames = [...]string{
	NotAnAttribute: "none",
	Left:           "left",
	Right:          "right",
	Top:            "top",
	Bottom:         "bottom",
	Leading:        "leading",
	Trailing:       "trailing",
	Width:          "width",
	Height:         "height",
	CenterX:        "centerX",
	CenterY:        "centerY",
}

func (a Attribute) String() string {
	if a >= 0 && int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "unknown"
}

// Relation is the comparison a constraint expresses.
type Relation int

const (
	Equal Relation = iota
	LessThanOrEqual
	GreaterThanOrEqual
)

// Constraint relates an attribute of one view to an attribute of another:
//
//	First.FirstAttr <Relation> Second.SecondAttr * Multiplier + Constant
//
// Second may be nil for constant constraints such as a fixed width.
type Constraint struct {
	First      *View
	FirstAttr  Attribute
	Relation   Relation
	Second     *View
	SecondAttr Attribute
	Multiplier float64
	Constant   float64

	active bool
}

// IsActive reports whether the constraint participates in queries.
func (c *Constraint) IsActive() bool {
	return c.active
}

// Activate marks every constraint active.
func Activate(cs ...*Constraint) {
	for _, c := range cs {
		c.active = true
	}
}

// Deactivate marks every constraint inactive. Inactive constraints stay
// attached to their owning view but are skipped by every query.
func Deactivate(cs ...*Constraint) {
	for _, c := range cs {
		c.active = false
	}
}

// AddConstraint attaches c to v and activates it. Constraints between
// siblings are usually owned by their common superview.
func (v *View) AddConstraint(c *Constraint) {
	v.constraints = append(v.constraints, c)
	c.active = true
}

// OwnConstraints returns the active constraints owned by v, whatever views they relate.
func (v *View) OwnConstraints() []*Constraint {
	return active(v.constraints)
}

func active(cs []*Constraint) []*Constraint {
	var out []*Constraint
	for _, c := range cs {
		if c.active {
			out = append(out, c)
		}
	}
	return out
}

// Constraints returns the active constraints that involve v, gathered from v
// and its superview. If with is not nil, only constraints between v and with
// are returned.
func (v *View) Constraints(with *View) []*Constraint {
	// A view may own constraints between its subviews that do not involve it,
	// and constraints on v itself usually live in its superview.
	pool := v.OwnConstraints()
	if v.superview != nil {
		pool = append(pool, v.superview.OwnConstraints()...)
	}

	var out []*Constraint
	for _, c := range pool {
		if c.First == v && (with == nil || c.Second == with) ||
			c.Second == v && (with == nil || c.First == with) {
			out = append(out, c)
		}
	}
	return out
}

// ConstraintsWithAll returns the constraints between v and each of views, in order.
func (v *View) ConstraintsWithAll(views []*View) []*Constraint {
	var out []*Constraint
	for _, other := range views {
		out = append(out, v.Constraints(other)...)
	}
	return out
}

// ConstraintsBy returns the constraints of v where v's side uses attr.
func (v *View) ConstraintsBy(attr Attribute) []*Constraint {
	return filter(v.Constraints(nil), v, attr)
}

// ConstraintBy returns the first of ConstraintsBy, or nil.
func (v *View) ConstraintBy(attr Attribute) *Constraint {
	return first(v.ConstraintsBy(attr))
}

// ConstraintsWith returns the constraints between v and other where other's
// side uses attr.
func (v *View) ConstraintsWith(other *View, attr Attribute) []*Constraint {
	return filter(v.Constraints(other), other, attr)
}

// ConstraintWith returns the first of ConstraintsWith, or nil.
func (v *View) ConstraintWith(other *View, attr Attribute) *Constraint {
	return first(v.ConstraintsWith(other, attr))
}

// RemoveConstraints deactivates every constraint involving v.
func (v *View) RemoveConstraints() *View {
	Deactivate(v.Constraints(nil)...)
	return v
}

// RemoveConstraintsWith deactivates the constraints between v and other.
func (v *View) RemoveConstraintsWith(other *View) *View {
	Deactivate(v.Constraints(other)...)
	return v
}

// RemoveConstraintsWithAll deactivates the constraints between v and each of views.
func (v *View) RemoveConstraintsWithAll(views []*View) *View {
	Deactivate(v.ConstraintsWithAll(views)...)
	return v
}

func filter(cs []*Constraint, item *View, attr Attribute) []*Constraint {
	var out []*Constraint
	for _, c := range cs {
		if c.First == item && c.FirstAttr == attr || c.Second == item && c.SecondAttr == attr {
			out = append(out, c)
		}
	}
	return out
}

func first(cs []*Constraint) *Constraint {
	if len(cs) == 0 {
		return nil
	}
	return cs[0]
}
