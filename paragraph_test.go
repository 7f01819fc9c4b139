package termgrid

import "testing"

func TestParagraph(t *testing.T) {
	bold := DefaultStyle().Bold()

	t.Run("JoinsSpans", func(t *testing.T) {
		p := NewParagraph(NewSpan("hello").Style(bold), NewSpan("world"))
		buf := render(p, 20, 1)
		if got := buf.Line(0); got != "hello world" {
			t.Errorf("got %q", got)
		}
		if !buf.Get(Vec2{0, 0}).Style.Attr.Has(AttrBold) {
			t.Error("first span lost its style")
		}
		if buf.Get(Vec2{5, 0}).Style != DefaultStyle() || buf.Get(Vec2{6, 0}).Style != DefaultStyle() {
			t.Error("separator or second span styled")
		}
	})

	t.Run("Wraps", func(t *testing.T) {
		p := NewParagraph().Push("hello").Push(NewSpan("big world"))
		if got := render(p, 9, 3).StringTrimmed(); got != "hello big\nworld" {
			t.Errorf("got %q", got)
		}
		if got := p.Height(Vec2{9, 3}); got != 2 {
			t.Errorf("Height = %d, want 2", got)
		}
	})

	t.Run("Separator", func(t *testing.T) {
		p := NewParagraph().Push("a b").Push("c").Separator("|")
		if got := render(p, 10, 1).Line(0); got != "a b|c" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("SplitsLongWord", func(t *testing.T) {
		p := NewParagraph().Push("abcdefgh")
		if got := render(p, 3, 3).StringTrimmed(); got != "abc\ndef\ngh" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ExplicitNewline", func(t *testing.T) {
		p := NewParagraph().Push("a\nb")
		if got := render(p, 5, 2).StringTrimmed(); got != "a\nb" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("NewlineHeights", func(t *testing.T) {
		for _, text := range []string{"a\n", "\n", "a\n\nb", "\n\na", "a\nb\n"} {
			p := NewParagraph(NewSpan(text))
			want := NewSpan(text).Height(Vec2{5, 5})
			if got := p.Height(Vec2{5, 5}); got != want {
				t.Errorf("%q: height = %d, span height = %d", text, got, want)
			}
		}
		p := NewParagraph().Push("a\n\nb")
		if got := render(p, 3, 3).String(); got != "a  \n   \nb  " {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ClipsBottom", func(t *testing.T) {
		p := NewParagraph().Push("one two three")
		if got := render(p, 5, 2).StringTrimmed(); got != "one\ntwo" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Measure", func(t *testing.T) {
		p := NewParagraph().Push("aa bb").Push("cc")
		if got := p.Width(Vec2{20, 0}); got != 8 {
			t.Errorf("natural width = %d, want 8", got)
		}
		if got := p.Width(Vec2{20, 2}); got != 5 {
			t.Errorf("two-line width = %d, want 5", got)
		}
		if got := NewParagraph().Height(Vec2{5, 5}); got != 0 {
			t.Errorf("empty height = %d", got)
		}
	})
}
