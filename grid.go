package termgrid

import "slices"

// Grid places children in cells formed by independently sized rows and
// columns.
type Grid struct {
	cols     []Unit
	rows     []Unit
	children []*Element
	places   []gridPlace
}

type gridPlace struct {
	col, row int
}

type gridCache struct {
	size     Vec2
	cols     []Unit
	rows     []Unit
	colSizes []int
	rowSizes []int
}

// NewGrid creates a grid with the given column and row units.
func NewGrid(cols, rows []Unit) *Grid {
	return &Grid{cols: slices.Clone(cols), rows: slices.Clone(rows)}
}

// AddCol appends a column.
func (g *Grid) AddCol(u Unit) *Grid {
	g.cols = append(g.cols, u)
	return g
}

// AddRow appends a row.
func (g *Grid) AddRow(u Unit) *Grid {
	g.rows = append(g.rows, u)
	return g
}

// Push places child at column col and row row. Children placed outside the
// grid are kept but never rendered.
func (g *Grid) Push(child any, col, row int) *Grid {
	g.children = append(g.children, El(child))
	g.places = append(g.places, gridPlace{col: col, row: row})
	return g
}

func (g *Grid) Children() []*Element { return g.children }

// Height sums the fixed rows; fill rows have no wanted size.
func (g *Grid) Height(size Vec2) int { return unitsTotal(g.rows, size.Y) }

// Width sums the fixed columns.
func (g *Grid) Width(size Vec2) int { return unitsTotal(g.cols, size.X) }

func unitsTotal(units []Unit, avail int) int {
	total := 0
	for _, u := range units {
		switch u.Kind {
		case KindLength:
			total += u.Value
		case KindPercent:
			total += avail * u.Value / 100
		}
	}
	return total
}

func (g *Grid) sizes(size Vec2, node CacheNode) (cols, rows []int) {
	if gc, ok := LocalAs[*gridCache](node); ok && gc.size == size &&
		slices.Equal(gc.cols, g.cols) && slices.Equal(gc.rows, g.rows) {
		return gc.colSizes, gc.rowSizes
	}
	cols = resolveUnits(g.cols, size.X)
	rows = resolveUnits(g.rows, size.Y)
	node.SetLocal(&gridCache{
		size:     size,
		cols:     slices.Clone(g.cols),
		rows:     slices.Clone(g.rows),
		colSizes: cols,
		rowSizes: rows,
	})
	return cols, rows
}

// Render paints each child into its own scratch buffer covering its cell
// and composites the result back, so a child cannot disturb its neighbours.
func (g *Grid) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	colSizes, rowSizes := g.sizes(rect.Size, node)
	colPos, rowPos := offsets(colSizes), offsets(rowSizes)

	for i, child := range g.children {
		p := g.places[i]
		if p.col < 0 || p.col >= len(colSizes) || p.row < 0 || p.row >= len(rowSizes) {
			continue
		}
		cell := NewRect(rect.X()+colPos[p.col], rect.Y()+rowPos[p.row], colSizes[p.col], rowSizes[p.row]).
			Intersect(rect)
		if cell.IsEmpty() {
			continue
		}
		scratch := buf.Subset(cell)
		child.Render(scratch, cell, node.Child(i))
		buf.Merge(scratch)
	}
}
