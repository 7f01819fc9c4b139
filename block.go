package termgrid

// Block is a bordered container around a linear layout, with an optional
// title drawn into the top border.
type Block struct {
	title       *Span
	sides       BorderSides
	border      BorderType
	borderStyle Style
	layout      *Layout
	inner       *Element
}

// NewBlock creates a block with a normal border on all sides whose children
// stack along d.
func NewBlock(d Direction) *Block {
	l := NewLayout(d)
	return &Block{
		sides:  BorderAll,
		border: BorderNormal,
		layout: l,
		inner:  NewElement(l),
	}
}

// VBlock creates a block whose children stack vertically.
func VBlock() *Block { return NewBlock(Vertical) }

// HBlock creates a block whose children stack horizontally.
func HBlock() *Block { return NewBlock(Horizontal) }

// Title sets the title. It accepts a string or a *Span.
func (b *Block) Title(title any) *Block {
	switch t := title.(type) {
	case *Span:
		b.title = t
	case string:
		b.title = NewSpan(t).Ellipsis("")
	default:
		panic("termgrid: block title must be a string or *Span")
	}
	return b
}

func (b *Block) Sides(s BorderSides) *Block {
	b.sides = s
	return b
}

func (b *Block) Border(t BorderType) *Block {
	b.border = t
	return b
}

func (b *Block) BorderStyle(s Style) *Block {
	b.borderStyle = s
	return b
}

// Padding insets the content inside the border.
func (b *Block) Padding(p Padding) *Block {
	b.layout.Padding(p)
	return b
}

func (b *Block) Center() *Block {
	b.layout.Center()
	return b
}

// Push appends a child to the inner layout.
func (b *Block) Push(child any, c Constraint) *Block {
	b.layout.Push(child, c)
	return b
}

// Layout returns the inner layout.
func (b *Block) Layout() *Layout { return b.layout }

func (b *Block) Children() []*Element { return []*Element{b.inner} }

func (b *Block) Height(size Vec2) int {
	in := b.sides.insets()
	return b.layout.Height(size.SubSat(in.Size())) + in.Top + in.Bottom
}

func (b *Block) Width(size Vec2) int {
	in := b.sides.insets()
	w := b.layout.Width(size.SubSat(in.Size())) + in.Left + in.Right
	if b.title != nil && b.sides.Has(BorderTop) {
		w = max(w, b.title.naturalWidth()+2)
	}
	return w
}

func (b *Block) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	buf.DrawBorder(rect, b.sides, b.border, b.borderStyle)
	if b.title != nil && b.sides.Has(BorderTop) && rect.Width() > 2 {
		tr := NewRect(rect.X()+1, rect.Y(), rect.Width()-2, 1)
		b.title.Render(buf, tr, CacheNode{})
	}
	b.inner.Render(buf, rect.Inner(b.sides.insets()), node.Child(0))
}
