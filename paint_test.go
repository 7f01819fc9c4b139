package termgrid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestPaint(t *testing.T) {
	t.Run("PlainRow", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 3, 1))
		buf.SetString(Vec2{0, 0}, "ab", DefaultStyle())
		var out bytes.Buffer
		if err := buf.Paint(&out); err != nil {
			t.Fatal(err)
		}
		want := "\x1b[1;1Hab \x1b[0m"
		if got := out.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("CursorPerRow", func(t *testing.T) {
		buf := NewBuffer(NewRect(2, 5, 2, 2))
		var p Painter
		var out bytes.Buffer
		if err := p.Paint(&out, buf); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "\x1b[6;3H") {
			t.Errorf("expected 1-based move to row 6 col 3, got %q", out.String())
		}
		if !strings.Contains(out.String(), "\x1b[7;3H") {
			t.Errorf("expected move to second row, got %q", out.String())
		}
		if p.Stats.Moves != 2 || p.Stats.Cells != 4 || !p.Stats.Full {
			t.Errorf("stats = %+v", p.Stats)
		}
	})

	t.Run("MinimalStyleChanges", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 3, 1))
		buf.Set(Vec2{0, 0}, NewCell('a', DefaultStyle().Foreground(Red)))
		buf.Set(Vec2{1, 0}, NewCell('b', DefaultStyle().Foreground(Red).Bold()))
		buf.Set(Vec2{2, 0}, NewCell('c', DefaultStyle().Foreground(Red).Bold()))
		var out bytes.Buffer
		buf.Paint(&out)
		want := "\x1b[1;1H\x1b[31ma\x1b[1mbc\x1b[0m"
		if got := out.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("AttributeRemovalResets", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 2, 1))
		buf.Set(Vec2{0, 0}, NewCell('a', DefaultStyle().Foreground(Red).Bold()))
		buf.Set(Vec2{1, 0}, NewCell('b', DefaultStyle().Background(Blue)))
		var out bytes.Buffer
		buf.Paint(&out)
		want := "\x1b[1;1H\x1b[1;31ma\x1b[0;44mb\x1b[0m"
		if got := out.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("ColorEncodings", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 3, 1))
		buf.Set(Vec2{0, 0}, NewCell('a', DefaultStyle().Foreground(BrightGreen)))
		buf.Set(Vec2{1, 0}, NewCell('b', DefaultStyle().Foreground(PaletteColor(200))))
		buf.Set(Vec2{2, 0}, NewCell('c', DefaultStyle().Background(RGB(1, 2, 3))))
		var out bytes.Buffer
		buf.Paint(&out)
		for _, seq := range []string{"\x1b[92m", "\x1b[38;5;200m", "\x1b[39;48;2;1;2;3m"} {
			if !strings.Contains(out.String(), seq) {
				t.Errorf("expected %q in %q", seq, out.String())
			}
		}
	})

	t.Run("WideGlyphAdvancesCursor", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 3, 1))
		buf.SetString(Vec2{0, 0}, "日x", DefaultStyle())
		var p Painter
		var out bytes.Buffer
		p.Paint(&out, buf)
		if p.Stats.Moves != 1 {
			t.Errorf("expected a single cursor move, got %d in %q", p.Stats.Moves, out.String())
		}
		if got := out.String(); got != "\x1b[1;1H日x\x1b[0m" {
			t.Errorf("got %q", got)
		}
	})
}

func TestPaintDiff(t *testing.T) {
	frame := func() *Buffer {
		buf := NewBuffer(NewRect(0, 0, 5, 3))
		buf.SetString(Vec2{0, 0}, "hello", DefaultStyle())
		buf.SetString(Vec2{0, 1}, "world", DefaultStyle().Bold())
		return buf
	}

	t.Run("UnchangedFrameIsEmpty", func(t *testing.T) {
		var out bytes.Buffer
		if err := frame().PaintDiff(&out, frame()); err != nil {
			t.Fatal(err)
		}
		if out.Len() != 0 {
			t.Errorf("expected no output, got %q", out.String())
		}
	})

	t.Run("SingleCell", func(t *testing.T) {
		prev, next := frame(), frame()
		next.SetRune(Vec2{2, 2}, 'x')
		var out bytes.Buffer
		next.PaintDiff(&out, prev)
		if got := out.String(); got != "\x1b[3;3Hx\x1b[0m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ContiguousRunOneMove", func(t *testing.T) {
		prev, next := frame(), frame()
		next.SetString(Vec2{1, 0}, "ipp", DefaultStyle())
		var p Painter
		var out bytes.Buffer
		p.PaintDiff(&out, next, prev)
		if p.Stats.Moves != 1 || p.Stats.Cells != 3 {
			t.Errorf("stats = %+v, output %q", p.Stats, out.String())
		}
		if got := out.String(); got != "\x1b[1;2Hipp\x1b[0m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("SeparateRunsMoveAgain", func(t *testing.T) {
		prev, next := frame(), frame()
		next.SetRune(Vec2{0, 0}, 'j')
		next.SetRune(Vec2{4, 0}, 'a')
		var p Painter
		var out bytes.Buffer
		p.PaintDiff(&out, next, prev)
		if p.Stats.Moves != 2 {
			t.Errorf("expected 2 moves, got %d (%q)", p.Stats.Moves, out.String())
		}
	})

	t.Run("StyleOnlyChange", func(t *testing.T) {
		prev, next := frame(), frame()
		next.SetFG(Vec2{0, 0}, Red)
		var out bytes.Buffer
		next.PaintDiff(&out, prev)
		if got := out.String(); got != "\x1b[1;1H\x1b[31mh\x1b[0m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("RectChangeRepaintsAll", func(t *testing.T) {
		prev := NewBuffer(NewRect(0, 0, 4, 3))
		next := frame()
		var p Painter
		var out bytes.Buffer
		p.PaintDiff(&out, next, prev)
		if !p.Stats.Full || p.Stats.Cells != next.Area() {
			t.Errorf("expected full repaint, stats = %+v", p.Stats)
		}
	})

	t.Run("NilPrevRepaintsAll", func(t *testing.T) {
		var p Painter
		var out bytes.Buffer
		p.PaintDiff(&out, frame(), nil)
		if !p.Stats.Full || p.Stats.Moves != 3 {
			t.Errorf("stats = %+v", p.Stats)
		}
	})
}

func TestColorProfile(t *testing.T) {
	red := RGB(255, 0, 0)
	tests := []struct {
		name    string
		profile termenv.Profile
		in      Color
		want    Color
	}{
		{"TrueColorKeepsRGB", termenv.TrueColor, red, red},
		{"ANSI256FromRGB", termenv.ANSI256, red, PaletteColor(196)},
		{"ANSIFrom256", termenv.ANSI, PaletteColor(196), BasicColor(9)},
		{"ANSIKeepsBasic", termenv.ANSI, Blue, Blue},
		{"AsciiDropsColor", termenv.Ascii, red, DefaultColor()},
		{"AsciiDropsBasic", termenv.Ascii, Blue, DefaultColor()},
		{"DefaultUntouched", termenv.ANSI, DefaultColor(), DefaultColor()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := degradeColor(tt.in, tt.profile); got != tt.want {
				t.Errorf("degradeColor(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	t.Run("PainterDegrades", func(t *testing.T) {
		buf := NewBuffer(NewRect(0, 0, 1, 1))
		buf.Set(Vec2{0, 0}, NewCell('a', DefaultStyle().Foreground(red)))
		p := Painter{Profile: termenv.ANSI256}
		var out bytes.Buffer
		p.Paint(&out, buf)
		if got := out.String(); got != "\x1b[1;1H\x1b[38;5;196ma\x1b[0m" {
			t.Errorf("got %q", got)
		}
	})
}
