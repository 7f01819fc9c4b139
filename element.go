package termgrid

import (
	"fmt"
	"reflect"
)

// Widget is anything that can be measured and painted.
//
// Height and Width are pure measurements: given the space on offer they
// report the space the widget wants along that axis. Render paints into buf
// and must stay inside rect. Children lists the widget's child elements in a
// stable order; the layout cache mirrors it.
type Widget interface {
	Render(buf *Buffer, rect Rect, node CacheNode)
	Height(size Vec2) int
	Width(size Vec2) int
	Children() []*Element
}

// Element wraps a Widget together with its concrete type, which identifies
// the widget's cache entry across frames.
type Element struct {
	widget Widget
	kind   reflect.Type
}

// NewElement wraps w. Wrapping an *Element returns it unchanged.
func NewElement(w Widget) *Element {
	if e, ok := w.(*Element); ok {
		return e
	}
	return &Element{widget: w, kind: reflect.TypeOf(w)}
}

// El converts v into an element. Strings and fmt.Stringers become spans.
func El(v any) *Element {
	switch v := v.(type) {
	case *Element:
		return v
	case Widget:
		return NewElement(v)
	case string:
		return NewElement(NewSpan(v))
	case fmt.Stringer:
		return NewElement(NewSpan(v.String()))
	case nil:
		return NewElement(Spacer{})
	}
	panic(fmt.Sprintf("termgrid: cannot convert %T to an element", v))
}

// Widget returns the wrapped widget.
func (e *Element) Widget() Widget { return e.widget }

// Kind returns the concrete type of the wrapped widget.
func (e *Element) Kind() reflect.Type { return e.kind }

func (e *Element) Render(buf *Buffer, rect Rect, node CacheNode) {
	e.widget.Render(buf, rect, node)
}

func (e *Element) Height(size Vec2) int { return e.widget.Height(size) }
func (e *Element) Width(size Vec2) int  { return e.widget.Width(size) }

func (e *Element) Children() []*Element { return e.widget.Children() }

// measure returns the element's wanted size along d.
func (e *Element) measure(d Direction, size Vec2) int {
	if d == Horizontal {
		return e.widget.Width(size)
	}
	return e.widget.Height(size)
}
