package termgrid

import "github.com/gdamore/tcell/v2"

// TcellColor converts c to a tcell color.
func (c Color) TcellColor() tcell.Color {
	switch c.Mode {
	case Color16, Color256:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

// TcellStyle converts s to a tcell style. Hidden text has no tcell
// equivalent and is dropped.
func (s Style) TcellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.FG.TcellColor()).
		Background(s.BG.TcellColor()).
		Bold(s.Attr.Has(AttrBold)).
		Dim(s.Attr.Has(AttrDim)).
		Italic(s.Attr.Has(AttrItalic)).
		Underline(s.Attr.Has(AttrUnderline)).
		Blink(s.Attr.Has(AttrBlink)).
		Reverse(s.Attr.Has(AttrInverse)).
		StrikeThrough(s.Attr.Has(AttrStrikethrough))
}

// PaintTcell copies buf onto a tcell screen and returns the number of cells
// set. When prev covers the same rect only differing cells are set. The
// caller decides when to Show. Cells outside the screen are skipped.
func PaintTcell(screen tcell.Screen, buf, prev *Buffer) int {
	if prev != nil && prev.rect != buf.rect {
		prev = nil
	}
	sw, sh := screen.Size()
	width := buf.rect.Width()
	n := 0
	for i, c := range buf.cells {
		if prev != nil && prev.cells[i] == c {
			continue
		}
		if c.Rune == 0 {
			continue
		}
		x, y := buf.rect.X()+i%width, buf.rect.Y()+i/width
		if x < 0 || y < 0 || x >= sw || y >= sh {
			continue
		}
		screen.SetContent(x, y, c.Rune, nil, c.Style.TcellStyle())
		n++
	}
	return n
}
