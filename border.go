package termgrid

// Box drawing characters.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
	BoxThickHorizontal    = '━'
	BoxThickVertical      = '┃'
	BoxThickTopLeft       = '┏'
	BoxThickTopRight      = '┓'
	BoxThickBottomLeft    = '┗'
	BoxThickBottomRight   = '┛'

	BoxTeeDown  = '┬'
	BoxTeeUp    = '┴'
	BoxTeeRight = '├'
	BoxTeeLeft  = '┤'
	BoxCross    = '┼'
)

// Edge bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:         0b1010,
	BoxVertical:           0b0101,
	BoxTopLeft:            0b0110,
	BoxTopRight:           0b1100,
	BoxBottomLeft:         0b0011,
	BoxBottomRight:        0b1001,
	BoxTeeDown:            0b1110,
	BoxTeeUp:              0b1011,
	BoxTeeRight:           0b0111,
	BoxTeeLeft:            0b1101,
	BoxCross:              0b1111,
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders joins two light box-drawing runes into the rune that connects
// all their edges. ok is false when either rune is not a light border rune.
func mergeBorders(existing, next rune) (rune, bool) {
	a, ok1 := borderEdges[existing]
	b, ok2 := borderEdges[next]
	if !ok1 || !ok2 {
		return next, false
	}
	if r, ok := edgesToBorder[a|b]; ok {
		return r, true
	}
	return next, false
}

// BorderType is the set of runes used to draw a border.
type BorderType struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

var (
	BorderNormal = BorderType{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderType{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
	BorderDouble = BorderType{
		Horizontal:  BoxDoubleHorizontal,
		Vertical:    BoxDoubleVertical,
		TopLeft:     BoxDoubleTopLeft,
		TopRight:    BoxDoubleTopRight,
		BottomLeft:  BoxDoubleBottomLeft,
		BottomRight: BoxDoubleBottomRight,
	}
	BorderThick = BorderType{
		Horizontal:  BoxThickHorizontal,
		Vertical:    BoxThickVertical,
		TopLeft:     BoxThickTopLeft,
		TopRight:    BoxThickTopRight,
		BottomLeft:  BoxThickBottomLeft,
		BottomRight: BoxThickBottomRight,
	}
)

// BorderSides selects which sides of a border are drawn.
type BorderSides uint8

const (
	BorderTop BorderSides = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone BorderSides = 0
	BorderAll              = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (s BorderSides) Has(side BorderSides) bool { return s&side != 0 }

// insets returns the padding the drawn sides take up.
func (s BorderSides) insets() Padding {
	var p Padding
	if s.Has(BorderTop) {
		p.Top = 1
	}
	if s.Has(BorderRight) {
		p.Right = 1
	}
	if s.Has(BorderBottom) {
		p.Bottom = 1
	}
	if s.Has(BorderLeft) {
		p.Left = 1
	}
	return p
}

// SetBorderRune writes a box-drawing rune at pos, joining it with a light
// border rune already there.
func (b *Buffer) SetBorderRune(pos Vec2, r rune, style Style) {
	i := b.Index(pos)
	if merged, ok := mergeBorders(b.cells[i].Rune, r); ok {
		r = merged
	}
	b.cells[i] = Cell{Rune: r, Style: style}
}

// DrawBorder draws the selected sides of a border along the edges of r,
// which must lie inside the buffer. Corners are drawn only where both
// adjoining sides are.
func (b *Buffer) DrawBorder(r Rect, sides BorderSides, border BorderType, style Style) {
	if r.IsEmpty() || sides == BorderNone {
		return
	}
	left, top := r.X(), r.Y()
	right, bottom := r.Right()-1, r.Bottom()-1

	if sides.Has(BorderTop) {
		for x := left; x <= right; x++ {
			b.SetBorderRune(Vec2{x, top}, border.Horizontal, style)
		}
	}
	if sides.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			b.SetBorderRune(Vec2{x, bottom}, border.Horizontal, style)
		}
	}
	if sides.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			b.SetBorderRune(Vec2{left, y}, border.Vertical, style)
		}
	}
	if sides.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			b.SetBorderRune(Vec2{right, y}, border.Vertical, style)
		}
	}

	corner := func(pos Vec2, r rune, need BorderSides) {
		if sides&need == need {
			b.Set(pos, Cell{Rune: r, Style: style})
		}
	}
	if r.Width() > 1 && r.Height() > 1 {
		corner(Vec2{left, top}, border.TopLeft, BorderTop|BorderLeft)
		corner(Vec2{right, top}, border.TopRight, BorderTop|BorderRight)
		corner(Vec2{left, bottom}, border.BottomLeft, BorderBottom|BorderLeft)
		corner(Vec2{right, bottom}, border.BottomRight, BorderBottom|BorderRight)
	}
}
