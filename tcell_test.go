package termgrid

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func TestPaintTcell(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		s := newSimScreen(t, 10, 3)
		buf := NewBuffer(NewRect(1, 1, 4, 1))
		buf.SetString(Vec2{1, 1}, "hey", DefaultStyle().Foreground(Red).Bold())
		if n := PaintTcell(s, buf, nil); n != 4 {
			t.Errorf("set %d cells, want 4", n)
		}
		r, _, style, _ := s.GetContent(2, 1)
		if r != 'e' {
			t.Errorf("rune at (2, 1) = %q", r)
		}
		fg, _, attrs := style.Decompose()
		if fg != tcell.PaletteColor(1) || attrs&tcell.AttrBold == 0 {
			t.Errorf("style = %v %v", fg, attrs)
		}
	})

	t.Run("Diff", func(t *testing.T) {
		s := newSimScreen(t, 10, 3)
		prev := NewBuffer(NewRect(0, 0, 5, 2))
		prev.SetString(Vec2{0, 0}, "hello", DefaultStyle())
		PaintTcell(s, prev, nil)

		next := prev.Clone()
		next.SetRune(Vec2{4, 1}, '!')
		if n := PaintTcell(s, next, prev); n != 1 {
			t.Errorf("diff set %d cells, want 1", n)
		}
		if r, _, _, _ := s.GetContent(4, 1); r != '!' {
			t.Errorf("got %q", r)
		}
	})

	t.Run("SkipsOffscreen", func(t *testing.T) {
		s := newSimScreen(t, 3, 1)
		buf := NewBuffer(NewRect(1, 0, 4, 2))
		if n := PaintTcell(s, buf, nil); n != 2 {
			t.Errorf("set %d cells, want 2", n)
		}
	})
}

func TestTcellStyle(t *testing.T) {
	s := Style{FG: RGB(10, 20, 30), BG: PaletteColor(100), Attr: AttrItalic | AttrUnderline | AttrInverse}
	fg, bg, attrs := s.TcellStyle().Decompose()
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("fg = %v", fg)
	}
	if bg != tcell.PaletteColor(100) {
		t.Errorf("bg = %v", bg)
	}
	want := tcell.AttrItalic | tcell.AttrUnderline | tcell.AttrReverse
	if attrs&want != want || attrs&tcell.AttrBold != 0 {
		t.Errorf("attrs = %v", attrs)
	}
	if DefaultColor().TcellColor() != tcell.ColorDefault {
		t.Error("default color should map to tcell's default")
	}
}
