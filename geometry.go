package termgrid

import "fmt"

// Vec2 is a 2D position or size in cells.
type Vec2 struct {
	X, Y int
}

// V creates a Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// SubSat subtracts o from v, saturating each component at zero.
func (v Vec2) SubSat(o Vec2) Vec2 {
	return Vec2{X: subSat(v.X, o.X), Y: subSat(v.Y, o.Y)}
}

// Axis returns the component along d.
func (v Vec2) Axis(d Direction) int {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

// Cross returns the component across d.
func (v Vec2) Cross(d Direction) int {
	if d == Horizontal {
		return v.Y
	}
	return v.X
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// axisVec builds a Vec2 from a main-axis and cross-axis component.
func axisVec(d Direction, main, cross int) Vec2 {
	if d == Horizontal {
		return Vec2{X: main, Y: cross}
	}
	return Vec2{X: cross, Y: main}
}

func subSat(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

// Rect is an axis-aligned rectangle with an absolute position and a size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect creates a rectangle at (x, y) of the given size. Negative sizes are
// treated as zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{Pos: Vec2{x, y}, Size: Vec2{max(width, 0), max(height, 0)}}
}

func (r Rect) X() int      { return r.Pos.X }
func (r Rect) Y() int      { return r.Pos.Y }
func (r Rect) Width() int  { return r.Size.X }
func (r Rect) Height() int { return r.Size.Y }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Pos.X + r.Size.X }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Pos.Y + r.Size.Y }

// Area returns width * height.
func (r Rect) Area() int { return r.Size.X * r.Size.Y }

// IsEmpty reports whether the rectangle has no cells.
func (r Rect) IsEmpty() bool { return r.Size.X <= 0 || r.Size.Y <= 0 }

// ContainsPos reports whether p lies inside r.
func (r Rect) ContainsPos(p Vec2) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// Contains reports whether o lies fully inside r. An empty o is contained
// only when r is non-empty and o's position lies within r's bounds.
func (r Rect) Contains(o Rect) bool {
	if o.IsEmpty() {
		return !r.IsEmpty() && o.Pos.X >= r.Pos.X && o.Pos.Y >= r.Pos.Y &&
			o.Pos.X <= r.Right() && o.Pos.Y <= r.Bottom()
	}
	return o.Pos.X >= r.Pos.X && o.Pos.Y >= r.Pos.Y &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle containing both. Empty rectangles are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x := min(r.Pos.X, o.Pos.X)
	y := min(r.Pos.Y, o.Pos.Y)
	return Rect{
		Pos:  Vec2{x, y},
		Size: Vec2{max(r.Right(), o.Right()) - x, max(r.Bottom(), o.Bottom()) - y},
	}
}

// Intersect returns the overlapping part of r and o. The result is empty
// (positioned at r's origin clamp) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.Pos.X, o.Pos.X)
	y := max(r.Pos.Y, o.Pos.Y)
	w := min(r.Right(), o.Right()) - x
	h := min(r.Bottom(), o.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{Pos: Vec2{x, y}}
	}
	return Rect{Pos: Vec2{x, y}, Size: Vec2{w, h}}
}

// Inner shrinks r by p, saturating at zero size.
func (r Rect) Inner(p Padding) Rect {
	return Rect{
		Pos:  Vec2{r.Pos.X + p.Left, r.Pos.Y + p.Top},
		Size: r.Size.SubSat(Vec2{p.Left + p.Right, p.Top + p.Bottom}),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%v", r.Size.X, r.Size.Y, r.Pos)
}

// Padding is an inset on each side of a rectangle.
type Padding struct {
	Top, Right, Bottom, Left int
}

// PadAll returns the same padding on all sides.
func PadAll(n int) Padding {
	return Padding{n, n, n, n}
}

// PadSymmetric returns vertical padding v (top and bottom) and horizontal
// padding h (left and right).
func PadSymmetric(v, h int) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Size returns the total horizontal and vertical padding.
func (p Padding) Size() Vec2 {
	return Vec2{p.Left + p.Right, p.Top + p.Bottom}
}

// Direction is the main axis of a linear layout.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// TextAlign is horizontal alignment of text lines.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// offset returns the start column of a line of width w in a row of width
// avail.
func (a TextAlign) offset(avail, w int) int {
	switch a {
	case AlignCenter:
		return subSat(avail, w) >> 1
	case AlignRight:
		return subSat(avail, w)
	}
	return 0
}
