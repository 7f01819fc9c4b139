package termgrid

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	t.Run("Edges", func(t *testing.T) {
		if r.Right() != 6 || r.Bottom() != 8 || r.Area() != 20 {
			t.Errorf("right %d bottom %d area %d", r.Right(), r.Bottom(), r.Area())
		}
		if NewRect(0, 0, -3, 2).Size != (Vec2{0, 2}) {
			t.Error("negative sizes should clamp to zero")
		}
	})

	t.Run("ContainsPos", func(t *testing.T) {
		if !r.ContainsPos(Vec2{2, 3}) || !r.ContainsPos(Vec2{5, 7}) {
			t.Error("corners should be inside")
		}
		if r.ContainsPos(Vec2{6, 3}) || r.ContainsPos(Vec2{2, 8}) {
			t.Error("right and bottom edges are exclusive")
		}
	})

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"Self", r, true},
		{"Inside", NewRect(3, 4, 1, 1), true},
		{"Overhang", NewRect(3, 4, 4, 1), false},
		{"EmptyAtEdge", NewRect(6, 8, 0, 0), true},
		{"EmptyOutside", NewRect(7, 8, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run("Contains"+tt.name, func(t *testing.T) {
			if got := r.Contains(tt.o); got != tt.want {
				t.Errorf("Contains(%v) = %v", tt.o, got)
			}
		})
	}

	t.Run("Union", func(t *testing.T) {
		got := NewRect(0, 0, 2, 2).Union(NewRect(3, 1, 2, 4))
		if got != NewRect(0, 0, 5, 5) {
			t.Errorf("got %v", got)
		}
		if got := r.Union(Rect{}); got != r {
			t.Errorf("union with empty = %v", got)
		}
	})

	t.Run("Intersect", func(t *testing.T) {
		got := NewRect(0, 0, 4, 4).Intersect(NewRect(2, 1, 4, 4))
		if got != NewRect(2, 1, 2, 3) {
			t.Errorf("got %v", got)
		}
		if !NewRect(0, 0, 2, 2).Intersect(NewRect(5, 5, 1, 1)).IsEmpty() {
			t.Error("disjoint rects should not intersect")
		}
	})

	t.Run("Inner", func(t *testing.T) {
		if got := r.Inner(Padding{Top: 1, Left: 1, Right: 2}); got != NewRect(3, 4, 1, 4) {
			t.Errorf("got %v", got)
		}
		if got := r.Inner(PadAll(10)); !got.IsEmpty() {
			t.Errorf("oversized padding should leave nothing, got %v", got)
		}
	})
}

func TestVec2(t *testing.T) {
	v := V(3, 7)
	if v.Axis(Horizontal) != 3 || v.Axis(Vertical) != 7 {
		t.Error("Axis")
	}
	if v.Cross(Horizontal) != 7 || v.Cross(Vertical) != 3 {
		t.Error("Cross")
	}
	if axisVec(Vertical, 7, 3) != v || axisVec(Horizontal, 3, 7) != v {
		t.Error("axisVec should invert Axis and Cross")
	}
	if got := v.SubSat(V(5, 2)); got != V(0, 5) {
		t.Errorf("SubSat = %v", got)
	}
	if PadSymmetric(1, 2).Size() != V(4, 2) {
		t.Error("PadSymmetric size")
	}
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		a    TextAlign
		want int
	}{
		{AlignLeft, 0},
		{AlignCenter, 2},
		{AlignRight, 5},
	}
	for _, tt := range tests {
		if got := tt.a.offset(8, 3); got != tt.want {
			t.Errorf("%d: offset = %d, want %d", tt.a, got, tt.want)
		}
	}
	if AlignRight.offset(2, 5) != 0 {
		t.Error("overlong lines start at zero")
	}
}

func TestConstraintString(t *testing.T) {
	tests := []struct {
		c    Constraint
		want string
	}{
		{Length(-1), "Length(0)"},
		{Percent(50), "Percent(50)"},
		{MinMax(5, 2), "MinMax(5, 5)"},
		{Fill(2), "Fill(2)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
