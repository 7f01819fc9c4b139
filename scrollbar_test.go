package termgrid

import "testing"

func TestScrollbar(t *testing.T) {
	tests := []struct {
		name    string
		content int
		offset  int
		want    string
	}{
		{"Top", 10, 0, "┃┃┃││"},
		{"Bottom", 10, 5, "││┃┃┃"},
		{"ClampsOffset", 10, 100, "││┃┃┃"},
		{"FitsEntirely", 4, 0, "┃┃┃┃┃"},
		{"Middle", 20, 8, "││┃││"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewScrollbarState(tt.content)
			st.Offset = tt.offset
			buf := render(NewScrollbar(Vertical, st), 1, 5)
			var got []rune
			for y := range 5 {
				got = append(got, buf.Get(Vec2{0, y}).Rune)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", string(got), tt.want)
			}
		})
	}

	t.Run("Horizontal", func(t *testing.T) {
		st := NewScrollbarState(8)
		sb := NewScrollbar(Horizontal, st).Runes('-', '=')
		if got := render(sb, 4, 1).String(); got != "==--" {
			t.Errorf("got %q", got)
		}
		if sb.Height(Vec2{4, 9}) != 1 || sb.Width(Vec2{4, 9}) != 4 {
			t.Error("horizontal bar should be one row across the width")
		}
	})

	t.Run("Styles", func(t *testing.T) {
		st := NewScrollbarState(10)
		sb := NewScrollbar(Vertical, st).
			TrackStyle(DefaultStyle().Dim()).
			ThumbStyle(DefaultStyle().Bold())
		buf := render(sb, 1, 5)
		if !buf.Get(Vec2{0, 0}).Style.Attr.Has(AttrBold) || !buf.Get(Vec2{0, 4}).Style.Attr.Has(AttrDim) {
			t.Error("thumb and track styles not applied")
		}
	})
}

func TestScrollbarState(t *testing.T) {
	st := NewScrollbarState(10)
	st.Prev()
	if st.Offset != 0 {
		t.Errorf("offset went negative: %d", st.Offset)
	}
	// before any render the visible size is unknown, so only the floor applies
	st.Scroll(20)
	if st.Offset != 20 {
		t.Errorf("offset = %d, want 20", st.Offset)
	}

	render(NewScrollbar(Vertical, st), 1, 4)
	if st.Visible() != 4 || st.Offset != 6 {
		t.Errorf("after render visible=%d offset=%d, want 4 and 6", st.Visible(), st.Offset)
	}
	st.Next()
	if st.Offset != 6 {
		t.Errorf("Next past the end moved to %d", st.Offset)
	}
	st.First()
	st.Next()
	if st.Offset != 1 {
		t.Errorf("offset = %d, want 1", st.Offset)
	}
	st.Last()
	if st.Offset != 6 {
		t.Errorf("Last = %d, want 6", st.Offset)
	}
}
