package termgrid

import "fmt"

// ConstraintKind selects how a Constraint sizes a child along the main axis.
type ConstraintKind uint8

const (
	KindLength ConstraintKind = iota
	KindPercent
	KindMin
	KindMax
	KindMinMax
	KindFill
)

// Constraint sizes one child of a linear layout.
type Constraint struct {
	Kind ConstraintKind
	A, B int
}

// Length is an exact size in cells.
func Length(n int) Constraint { return Constraint{Kind: KindLength, A: max(n, 0)} }

// Percent is a percentage of the available size.
func Percent(p int) Constraint { return Constraint{Kind: KindPercent, A: max(p, 0)} }

// Min is the child's measured size, but at least n.
func Min(n int) Constraint { return Constraint{Kind: KindMin, A: max(n, 0)} }

// Max is the child's measured size, but at most n.
func Max(n int) Constraint { return Constraint{Kind: KindMax, A: max(n, 0)} }

// MinMax is the child's measured size clamped to [lo, hi].
func MinMax(lo, hi int) Constraint {
	lo, hi = max(lo, 0), max(hi, 0)
	if hi < lo {
		hi = lo
	}
	return Constraint{Kind: KindMinMax, A: lo, B: hi}
}

// Fill takes a weighted share of whatever space the other children leave.
func Fill(weight int) Constraint { return Constraint{Kind: KindFill, A: max(weight, 0)} }

func (c Constraint) String() string {
	switch c.Kind {
	case KindLength:
		return fmt.Sprintf("Length(%d)", c.A)
	case KindPercent:
		return fmt.Sprintf("Percent(%d)", c.A)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.A)
	case KindMax:
		return fmt.Sprintf("Max(%d)", c.A)
	case KindMinMax:
		return fmt.Sprintf("MinMax(%d, %d)", c.A, c.B)
	case KindFill:
		return fmt.Sprintf("Fill(%d)", c.A)
	}
	return "Constraint(?)"
}

// Unit sizes a grid row, grid column or table column. Only the length,
// percent and fill kinds are meaningful.
type Unit struct {
	Kind  ConstraintKind
	Value int
}

func UnitLength(n int) Unit  { return Unit{Kind: KindLength, Value: max(n, 0)} }
func UnitPercent(p int) Unit { return Unit{Kind: KindPercent, Value: max(p, 0)} }
func UnitFill(w int) Unit    { return Unit{Kind: KindFill, Value: max(w, 0)} }

func (u Unit) constraint() Constraint {
	return Constraint{Kind: u.Kind, A: u.Value}
}
