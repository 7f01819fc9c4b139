package termgrid

import "testing"

func TestBlock(t *testing.T) {
	t.Run("TitleAndContent", func(t *testing.T) {
		b := VBlock().Title("hi").Push("x", Fill(1))
		want := "┌hi──┐\n│x   │\n└────┘"
		if got := render(b, 6, 3).String(); got != want {
			t.Errorf("got\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("LongTitleWraps", func(t *testing.T) {
		b := VBlock().Title("a long title")
		if got := render(b, 6, 2).Line(0); got != "┌a───┐" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Rounded", func(t *testing.T) {
		b := VBlock().Border(BorderRounded)
		if got := render(b, 3, 2).String(); got != "╭─╮\n╰─╯" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("TopAndBottom", func(t *testing.T) {
		b := VBlock().Sides(BorderTop|BorderBottom).Push("x", Fill(1))
		if got := render(b, 3, 3).String(); got != "───\nx  \n───" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("HorizontalChildren", func(t *testing.T) {
		b := HBlock().Padding(Padding{Left: 1}).
			Push(probe{r: 'a'}, Length(1)).
			Push(probe{r: 'b'}, Fill(1))
		if got := render(b, 6, 3).Line(1); got != "│ abb│" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("BorderStyle", func(t *testing.T) {
		b := VBlock().BorderStyle(DefaultStyle().Foreground(Cyan))
		if got := render(b, 3, 3).Get(Vec2{0, 1}).Style.FG; got != Cyan {
			t.Errorf("border color = %+v", got)
		}
	})

	t.Run("Measure", func(t *testing.T) {
		b := VBlock().Push(probe{w: 3, h: 2}, Length(2))
		if got := b.Height(Vec2{10, 10}); got != 4 {
			t.Errorf("Height = %d, want 4", got)
		}
		if got := b.Width(Vec2{10, 10}); got != 5 {
			t.Errorf("Width = %d, want 5", got)
		}
		b.Title("long title")
		if got := b.Width(Vec2{20, 10}); got != 12 {
			t.Errorf("titled Width = %d, want 12", got)
		}
	})

	t.Run("CachesInnerLayout", func(t *testing.T) {
		b := VBlock().Push("x", Fill(1))
		el := El(b)
		c := NewCache()
		c.Diff(el)
		buf := NewBuffer(NewRect(0, 0, 4, 4))
		el.Render(buf, buf.Rect(), c.Root())
		if _, ok := LocalAs[*layoutCache](c.Root().Child(0)); !ok {
			t.Error("inner layout should cache under the block's child node")
		}
	})
}
