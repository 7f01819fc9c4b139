package termgrid

import "slices"

// Layout places its children one after another along a main axis. Each
// child is sized by its Constraint; every child gets the full cross axis.
type Layout struct {
	direction   Direction
	children    []*Element
	constraints []Constraint
	padding     Padding
	center      bool
	style       *Style
}

// layoutCache is the cached result of resolving a Layout's constraints.
type layoutCache struct {
	size        Vec2
	direction   Direction
	constraints []Constraint
	sizes       []int
	leftover    int
}

// NewLayout creates an empty layout along d.
func NewLayout(d Direction) *Layout {
	return &Layout{direction: d}
}

// VStack creates a vertical layout.
func VStack() *Layout { return NewLayout(Vertical) }

// HStack creates a horizontal layout.
func HStack() *Layout { return NewLayout(Horizontal) }

// Push appends a child sized by c. child may be anything El accepts.
func (l *Layout) Push(child any, c Constraint) *Layout {
	l.children = append(l.children, El(child))
	l.constraints = append(l.constraints, c)
	return l
}

// Padding insets the children from the layout's rect.
func (l *Layout) Padding(p Padding) *Layout {
	l.padding = p
	return l
}

// Center shifts the children to the middle of the main axis when they do
// not use all of it. It has no effect when any child fills.
func (l *Layout) Center() *Layout {
	l.center = true
	return l
}

// Style fills the layout's rect with s before rendering children.
func (l *Layout) Style(s Style) *Layout {
	l.style = &s
	return l
}

// Direction returns the main axis.
func (l *Layout) Direction() Direction { return l.direction }

func (l *Layout) Children() []*Element { return l.children }

func (l *Layout) Height(size Vec2) int { return l.measure(Vertical, size) }
func (l *Layout) Width(size Vec2) int  { return l.measure(Horizontal, size) }

// measure reports the layout's wanted size along axis. Along the main axis
// that is the sum of what each constraint asks for, taking a filling
// child's own measurement; across it is the largest child.
func (l *Layout) measure(axis Direction, size Vec2) int {
	pad := l.padding.Size()
	inner := size.SubSat(pad)
	total := 0
	if axis == l.direction {
		avail := inner.Axis(axis)
		for i, c := range l.constraints {
			child := l.children[i]
			switch c.Kind {
			case KindLength:
				total += c.A
			case KindPercent:
				total += avail * c.A / 100
			case KindMin:
				total += max(child.measure(axis, inner), c.A)
			case KindMax:
				total += min(child.measure(axis, inner), c.A)
			case KindMinMax:
				total += min(max(child.measure(axis, inner), c.A), c.B)
			case KindFill:
				total += child.measure(axis, inner)
			}
		}
	} else {
		for _, child := range l.children {
			total = max(total, child.measure(axis, inner))
		}
	}
	return total + pad.Axis(axis)
}

// sizes returns the resolved main-axis size of each child, reusing the
// cached result when the rect size, axis and constraints are unchanged.
func (l *Layout) sizes(size Vec2, node CacheNode) ([]int, int) {
	if lc, ok := LocalAs[*layoutCache](node); ok && lc.size == size &&
		lc.direction == l.direction && slices.Equal(lc.constraints, l.constraints) {
		return lc.sizes, lc.leftover
	}
	sizes, leftover := resolve(l.constraints, size.Axis(l.direction), func(i int) int {
		return l.children[i].measure(l.direction, size)
	})
	node.SetLocal(&layoutCache{
		size:        size,
		direction:   l.direction,
		constraints: slices.Clone(l.constraints),
		sizes:       sizes,
		leftover:    leftover,
	})
	return sizes, leftover
}

func (l *Layout) Render(buf *Buffer, rect Rect, node CacheNode) {
	if l.style != nil {
		buf.StyleRect(rect, *l.style)
	}
	rect = rect.Inner(l.padding)
	if rect.IsEmpty() || len(l.children) == 0 {
		return
	}

	sizes, leftover := l.sizes(rect.Size, node)
	avail := rect.Size.Axis(l.direction)
	cross := rect.Size.Cross(l.direction)

	pos := 0
	if l.center {
		pos = leftover / 2
	}
	for i, child := range l.children {
		if pos >= avail {
			break
		}
		s := min(sizes[i], avail-pos)
		if s > 0 {
			child.Render(buf, Rect{
				Pos:  rect.Pos.Add(axisVec(l.direction, pos, 0)),
				Size: axisVec(l.direction, s, cross),
			}, node.Child(i))
		}
		pos += s
	}
}
