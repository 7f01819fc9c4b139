package termgrid

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Grad is text whose foreground fades from one color to another, across
// the rendered width (Horizontal) or down the lines (Vertical).
type Grad struct {
	text      string
	start     Color
	end       Color
	direction Direction
	style     Style
	align     TextAlign
	wrap      Wrap
	ellipsis  string
}

// NewGrad creates gradient text fading from start to end across the width.
func NewGrad(text string, start, end Color) *Grad {
	return &Grad{text: text, start: start, end: end, direction: Horizontal, ellipsis: DefaultEllipsis}
}

// Direction sets the axis the colors change along.
func (g *Grad) Direction(d Direction) *Grad {
	g.direction = d
	return g
}

// Style sets the background and attributes; the foreground is ignored.
func (g *Grad) Style(s Style) *Grad {
	g.style = s
	return g
}

func (g *Grad) Align(a TextAlign) *Grad {
	g.align = a
	return g
}

func (g *Grad) Wrap(w Wrap) *Grad {
	g.wrap = w
	return g
}

func (g *Grad) Ellipsis(e string) *Grad {
	g.ellipsis = e
	return g
}

func (g *Grad) span() *Span {
	return &Span{text: g.text, wrap: g.wrap, ellipsis: g.ellipsis}
}

func (g *Grad) Children() []*Element { return nil }
func (g *Grad) Height(size Vec2) int { return g.span().Height(size) }
func (g *Grad) Width(size Vec2) int  { return g.span().Width(size) }

func (g *Grad) Render(buf *Buffer, rect Rect, _ CacheNode) {
	if rect.IsEmpty() {
		return
	}
	steps := rect.Width()
	if g.direction == Vertical {
		steps = min(rect.Height(), g.Height(rect.Size))
	}
	ramp := gradient(g.start, g.end, steps)
	t := TokenizeString(g.text).Wrap(g.wrap)
	renderText(buf, rect, t, g.align, g.ellipsis, func(col, row int) Style {
		s := g.style
		if g.direction == Vertical {
			s.FG = ramp[min(row, len(ramp)-1)]
		} else {
			s.FG = ramp[min(col, len(ramp)-1)]
		}
		return s
	})
}

// BgGrad paints a background gradient behind its child. Cells the child
// gives a background of their own keep it.
type BgGrad struct {
	child     *Element
	start     Color
	end       Color
	direction Direction
}

// NewBgGrad wraps child in a background fading from start to end.
func NewBgGrad(child any, start, end Color) *BgGrad {
	return &BgGrad{child: El(child), start: start, end: end, direction: Horizontal}
}

func (b *BgGrad) Direction(d Direction) *BgGrad {
	b.direction = d
	return b
}

func (b *BgGrad) Children() []*Element { return []*Element{b.child} }
func (b *BgGrad) Height(size Vec2) int { return b.child.Height(size) }
func (b *BgGrad) Width(size Vec2) int  { return b.child.Width(size) }

func (b *BgGrad) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	b.child.Render(buf, rect, node.Child(0))
	ramp := gradient(b.start, b.end, rect.Size.Axis(b.direction))
	for y := rect.Y(); y < rect.Bottom(); y++ {
		for x := rect.X(); x < rect.Right(); x++ {
			pos := Vec2{x, y}
			if !buf.Get(pos).Style.BG.IsDefault() {
				continue
			}
			i := x - rect.X()
			if b.direction == Vertical {
				i = y - rect.Y()
			}
			buf.SetBG(pos, ramp[i])
		}
	}
}

// gradient returns n colors blended from start to end in Lab space.
func gradient(start, end Color, n int) []Color {
	if n <= 0 {
		return []Color{start}
	}
	a, z := toColorful(start), toColorful(end)
	out := make([]Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, b := a.BlendLab(z, t).Clamped().RGB255()
		out[i] = RGB(r, g, b)
	}
	return out
}

// toColorful converts c to a colorful.Color, mapping palette colors through
// the standard xterm palette. The default color maps to black.
func toColorful(c Color) colorful.Color {
	r, g, b := c.RGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ansi16 is the xterm rendition of the 16 basic colors.
var ansi16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// RGBValues returns the 24-bit value of c. Palette colors use the xterm
// palette; the default color reports black.
func (c Color) RGBValues() (r, g, b uint8) {
	switch c.Mode {
	case ColorRGB:
		return c.R, c.G, c.B
	case Color16:
		v := ansi16[c.Index&0x0f]
		return v[0], v[1], v[2]
	case Color256:
		i := int(c.Index)
		switch {
		case i < 16:
			v := ansi16[i]
			return v[0], v[1], v[2]
		case i < 232:
			i -= 16
			level := func(n int) uint8 {
				if n == 0 {
					return 0
				}
				return uint8(55 + n*40)
			}
			return level(i / 36), level(i / 6 % 6), level(i % 6)
		default:
			v := uint8(8 + (i-232)*10)
			return v, v, v
		}
	}
	return 0, 0, 0
}
