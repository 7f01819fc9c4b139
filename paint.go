package termgrid

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// PaintStats describes the output of the last paint.
type PaintStats struct {
	Cells int  // glyphs written
	Moves int  // cursor positioning sequences
	Bytes int  // total bytes written
	Full  bool // whether every cell was repainted
}

// Painter turns buffers into ANSI output. The zero value paints 24-bit
// color; set Profile to degrade colors for less capable terminals.
type Painter struct {
	Profile termenv.Profile
	Stats   PaintStats

	buf    bytes.Buffer
	last   Style
	cursor Vec2
	placed bool
}

// Paint writes every cell of b to w.
func (b *Buffer) Paint(w io.Writer) error {
	var p Painter
	return p.Paint(w, b)
}

// PaintDiff writes only the cells of b that differ from prev. When prev is
// nil or covers a different rectangle the whole buffer is painted.
func (b *Buffer) PaintDiff(w io.Writer, prev *Buffer) error {
	var p Painter
	return p.PaintDiff(w, b, prev)
}

// Paint writes every cell of b to w.
func (p *Painter) Paint(w io.Writer, b *Buffer) error {
	return p.paint(w, b, nil)
}

// PaintDiff writes only the cells of b that differ from prev, falling back to
// a full paint when the rectangles differ. An identical frame produces no
// output at all.
func (p *Painter) PaintDiff(w io.Writer, b, prev *Buffer) error {
	if prev == nil || prev.rect != b.rect {
		return p.paint(w, b, nil)
	}
	return p.paint(w, b, prev)
}

func (p *Painter) paint(w io.Writer, b, prev *Buffer) error {
	p.buf.Reset()
	p.last = DefaultStyle()
	p.placed = false
	p.Stats = PaintStats{Full: prev == nil}

	width := b.rect.Width()
	for i, cell := range b.cells {
		if prev != nil && prev.cells[i] == cell {
			continue
		}
		// trailing half of a wide glyph; the glyph itself advanced the cursor
		if cell.Rune == 0 {
			continue
		}
		pos := Vec2{b.rect.X() + i%width, b.rect.Y() + i/width}
		if !p.placed || p.cursor != pos {
			p.moveTo(pos)
		}
		p.setStyle(cell.Style)
		p.buf.WriteRune(cell.Rune)
		p.Stats.Cells++

		rw := runewidth.RuneWidth(cell.Rune)
		if rw == 0 {
			rw = 1
		}
		p.cursor = Vec2{pos.X + rw, pos.Y}
	}

	if p.Stats.Cells > 0 {
		p.buf.WriteString("\x1b[0m")
	}
	p.Stats.Bytes = p.buf.Len()
	if p.buf.Len() == 0 {
		return nil
	}
	if _, err := w.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	return nil
}

// moveTo positions the cursor at pos, converting to 1-based coordinates.
func (p *Painter) moveTo(pos Vec2) {
	p.buf.WriteString("\x1b[")
	p.writeInt(pos.Y + 1)
	p.buf.WriteByte(';')
	p.writeInt(pos.X + 1)
	p.buf.WriteByte('H')
	p.cursor = pos
	p.placed = true
	p.Stats.Moves++
}

// setStyle emits the SGR parameters needed to go from the last emitted style
// to s. Removing an attribute requires a reset, after which everything set in
// s is emitted again.
func (p *Painter) setStyle(s Style) {
	s = p.degrade(s)
	if s == p.last {
		return
	}
	from := p.last
	p.buf.WriteString("\x1b[")
	n := 0
	sep := func() {
		if n > 0 {
			p.buf.WriteByte(';')
		}
		n++
	}
	if from.Attr&^s.Attr != 0 {
		p.buf.WriteByte('0')
		n++
		from = DefaultStyle()
	}
	for _, a := range sgrAttrs {
		if s.Attr.Has(a.attr) && !from.Attr.Has(a.attr) {
			sep()
			p.buf.WriteString(a.code)
		}
	}
	if s.FG != from.FG {
		sep()
		p.writeColor(s.FG, true)
	}
	if s.BG != from.BG {
		sep()
		p.writeColor(s.BG, false)
	}
	p.buf.WriteByte('m')
	p.last = s
}

func (p *Painter) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			p.buf.WriteString("39")
		} else {
			p.buf.WriteString("49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			p.writeInt(base + 60 + int(c.Index-8))
		} else {
			p.writeInt(base + int(c.Index))
		}
	case Color256:
		if fg {
			p.buf.WriteString("38;5;")
		} else {
			p.buf.WriteString("48;5;")
		}
		p.writeInt(int(c.Index))
	case ColorRGB:
		if fg {
			p.buf.WriteString("38;2;")
		} else {
			p.buf.WriteString("48;2;")
		}
		p.writeInt(int(c.R))
		p.buf.WriteByte(';')
		p.writeInt(int(c.G))
		p.buf.WriteByte(';')
		p.writeInt(int(c.B))
	}
}

func (p *Painter) writeInt(n int) {
	var scratch [20]byte
	p.buf.Write(strconv.AppendInt(scratch[:0], int64(n), 10))
}

func (p *Painter) degrade(s Style) Style {
	if p.Profile == termenv.TrueColor {
		return s
	}
	s.FG = degradeColor(s.FG, p.Profile)
	s.BG = degradeColor(s.BG, p.Profile)
	return s
}

// degradeColor converts c to the closest color profile can show.
func degradeColor(c Color, profile termenv.Profile) Color {
	if profile == termenv.TrueColor || c.Mode == ColorDefault {
		return c
	}
	var tc termenv.Color
	switch c.Mode {
	case Color16:
		if profile == termenv.Ascii {
			return DefaultColor()
		}
		return c
	case Color256:
		tc = termenv.ANSI256Color(c.Index)
	case ColorRGB:
		tc = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	switch v := profile.Convert(tc).(type) {
	case termenv.ANSIColor:
		return BasicColor(uint8(v))
	case termenv.ANSI256Color:
		return PaletteColor(uint8(v))
	case termenv.RGBColor:
		return c
	}
	return DefaultColor()
}
