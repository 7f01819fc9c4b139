package termgrid

import (
	"reflect"
	"testing"
)

type stringer struct{}

func (stringer) String() string { return "str" }

func TestEl(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind reflect.Type
	}{
		{"String", "hi", reflect.TypeOf(&Span{})},
		{"Stringer", stringer{}, reflect.TypeOf(&Span{})},
		{"Nil", nil, reflect.TypeOf(Spacer{})},
		{"Widget", VStack(), reflect.TypeOf(&Layout{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := El(tt.in).Kind(); got != tt.kind {
				t.Errorf("kind = %v, want %v", got, tt.kind)
			}
		})
	}

	t.Run("ElementUnchanged", func(t *testing.T) {
		e := El("x")
		if El(e) != e || NewElement(e) != e {
			t.Error("wrapping an element should return it")
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		El(42)
	})
}

func TestOverlay(t *testing.T) {
	o := NewOverlay(probe{r: '.', w: 3, h: 2}, probe{r: 'x', w: 1, h: 1})
	if o.Width(Vec2{10, 10}) != 3 || o.Height(Vec2{10, 10}) != 2 {
		t.Error("overlay should measure as its largest layer")
	}

	buf := NewBuffer(NewRect(0, 0, 3, 2))
	o = NewOverlay(probe{r: '.', w: 3, h: 2}).Push(NewSpan("ab"))
	cache := NewCache()
	el := El(o)
	cache.Diff(el)
	el.Render(buf, buf.Rect(), cache.Root())
	if got := buf.String(); got != "ab.\n..." {
		t.Errorf("got %q", got)
	}
	if cache.Root().Len() != 2 {
		t.Errorf("cache children = %d", cache.Root().Len())
	}
}

func TestSpacer(t *testing.T) {
	s := FixedSpacer(3)
	if s.Width(Vec2{}) != 3 || s.Height(Vec2{}) != 3 {
		t.Error("fixed spacer size")
	}
	buf := render(HStack().Push("a", Length(1)).Push(Spacer{}, Fill(1)).Push("b", Length(1)), 4, 1)
	if got := buf.String(); got != "a  b" {
		t.Errorf("got %q", got)
	}
}
