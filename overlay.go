package termgrid

// Overlay draws all of its children over the same rect, first to last, so
// later children cover earlier ones.
type Overlay struct {
	children []*Element
}

// NewOverlay creates an overlay of the given layers.
func NewOverlay(layers ...any) *Overlay {
	o := &Overlay{}
	for _, l := range layers {
		o.Push(l)
	}
	return o
}

// Push adds a layer on top.
func (o *Overlay) Push(layer any) *Overlay {
	o.children = append(o.children, El(layer))
	return o
}

func (o *Overlay) Children() []*Element { return o.children }

func (o *Overlay) Height(size Vec2) int {
	h := 0
	for _, c := range o.children {
		h = max(h, c.Height(size))
	}
	return h
}

func (o *Overlay) Width(size Vec2) int {
	w := 0
	for _, c := range o.children {
		w = max(w, c.Width(size))
	}
	return w
}

func (o *Overlay) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	for i, c := range o.children {
		c.Render(buf, rect, node.Child(i))
	}
}
