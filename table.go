package termgrid

import "slices"

// TableState holds a table's scroll offset and row and column selection.
type TableState struct {
	Offset int

	row, col       int
	hasRow, hasCol bool
}

// NewTableState creates a state scrolled to offset with nothing selected.
func NewTableState(offset int) *TableState {
	return &TableState{Offset: offset}
}

// Select selects row i.
func (s *TableState) Select(i int) { s.row, s.hasRow = max(i, 0), true }

// SelectColumn selects column i.
func (s *TableState) SelectColumn(i int) { s.col, s.hasCol = max(i, 0), true }

// Deselect clears the row and column selection.
func (s *TableState) Deselect() { s.hasRow, s.hasCol = false, false }

// Selected returns the selected row, if any.
func (s *TableState) Selected() (int, bool) { return s.row, s.hasRow }

// SelectedColumn returns the selected column, if any.
func (s *TableState) SelectedColumn() (int, bool) { return s.col, s.hasCol }

// Row is one table row.
type Row struct {
	cells []*Element
	style Style
}

// NewRow creates a row from cells; each may be anything El accepts.
func NewRow(cells ...any) *Row {
	r := &Row{}
	for _, c := range cells {
		r.cells = append(r.cells, El(c))
	}
	return r
}

// Style is layered over the whole row.
func (r *Row) Style(s Style) *Row {
	r.style = s
	return r
}

// height is the tallest cell of the row at the given column widths. A row
// is never less than one line tall.
func (r *Row) height(widths []int, avail int) int {
	h := 1
	for i, c := range r.cells {
		if i >= len(widths) {
			break
		}
		h = max(h, c.Height(Vec2{widths[i], avail}))
	}
	return h
}

// Table lays out rows of cells in columns. Column widths follow Units after
// the spacing between columns is taken off; each row is as tall as its
// tallest cell.
type Table struct {
	header        *Row
	separator     bool
	rows          []*Row
	widths        []Unit
	spacing       int
	state         *TableState
	selectedStyle Style
	columnStyle   Style
	headerStyle   Style
}

type tableCache struct {
	size       Vec2
	widths     []Unit
	spacing    int
	header     int // header cell count, -1 without a header
	separator  bool
	colSizes   []int
	rowSizes   []int
	headerSize int
}

// NewTable creates a table with the given column widths. state may be nil
// for a table without scrolling or selection.
func NewTable(widths []Unit, state *TableState) *Table {
	if state == nil {
		state = NewTableState(0)
	}
	return &Table{
		widths:        slices.Clone(widths),
		spacing:       1,
		state:         state,
		selectedStyle: DefaultStyle().Inverse(),
	}
}

// Header sets the header row, drawn above the rows and never scrolled.
func (t *Table) Header(r *Row) *Table {
	t.header = r
	return t
}

// HeaderSeparator draws a horizontal rule under the header.
func (t *Table) HeaderSeparator(on bool) *Table {
	t.separator = on
	return t
}

func (t *Table) HeaderStyle(s Style) *Table {
	t.headerStyle = s
	return t
}

// Push appends a row.
func (t *Table) Push(r *Row) *Table {
	t.rows = append(t.rows, r)
	return t
}

// Spacing sets the gap between columns.
func (t *Table) Spacing(n int) *Table {
	t.spacing = max(n, 0)
	return t
}

func (t *Table) SelectedStyle(s Style) *Table {
	t.selectedStyle = s
	return t
}

func (t *Table) SelectedColumnStyle(s Style) *Table {
	t.columnStyle = s
	return t
}

// Children lists the header cells followed by each row's cells.
func (t *Table) Children() []*Element {
	var out []*Element
	if t.header != nil {
		out = append(out, t.header.cells...)
	}
	for _, r := range t.rows {
		out = append(out, r.cells...)
	}
	return out
}

func (t *Table) colWidths(width int) []int {
	gaps := t.spacing * max(len(t.widths)-1, 0)
	return resolveUnits(t.widths, subSat(width, gaps))
}

func (t *Table) headerHeight(cols []int, avail int) int {
	if t.header == nil {
		return 0
	}
	h := t.header.height(cols, avail)
	if t.separator {
		h++
	}
	return h
}

func (t *Table) Height(size Vec2) int {
	cols := t.colWidths(size.X)
	total := t.headerHeight(cols, size.Y)
	for _, r := range t.rows {
		total += r.height(cols, size.Y)
	}
	return total
}

func (t *Table) Width(size Vec2) int {
	total, fill := 0, false
	for _, u := range t.widths {
		switch u.Kind {
		case KindLength:
			total += u.Value
		case KindPercent:
			total += size.X * u.Value / 100
		case KindFill:
			fill = true
		}
	}
	total += t.spacing * max(len(t.widths)-1, 0)
	if fill {
		return max(total, size.X)
	}
	return total
}

func (t *Table) sizes(size Vec2, node CacheNode) (cols, rows []int, header int) {
	hdr := -1
	if t.header != nil {
		hdr = len(t.header.cells)
	}
	if tc, ok := LocalAs[*tableCache](node); ok && tc.size == size &&
		tc.spacing == t.spacing && tc.header == hdr && tc.separator == t.separator &&
		slices.Equal(tc.widths, t.widths) && len(tc.rowSizes) == len(t.rows) {
		return tc.colSizes, tc.rowSizes, tc.headerSize
	}
	cols = t.colWidths(size.X)
	rows = make([]int, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.height(cols, size.Y)
	}
	header = t.headerHeight(cols, size.Y)
	node.SetLocal(&tableCache{
		size:       size,
		widths:     slices.Clone(t.widths),
		spacing:    t.spacing,
		header:     hdr,
		separator:  t.separator,
		colSizes:   cols,
		rowSizes:   rows,
		headerSize: header,
	})
	return cols, rows, header
}

// scrollTo keeps the selected row inside the visible height.
func (t *Table) scrollTo(rows []int, visible int) {
	st := t.state
	st.Offset = min(max(st.Offset, 0), max(len(rows)-1, 0))
	sel, ok := st.Selected()
	if !ok || len(rows) == 0 {
		return
	}
	sel = min(sel, len(rows)-1)
	if sel < st.Offset {
		st.Offset = sel
		return
	}
	for st.Offset < sel {
		used := 0
		for i := st.Offset; i <= sel; i++ {
			used += rows[i]
		}
		if used <= visible {
			return
		}
		st.Offset++
	}
}

func (t *Table) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	cols, rows, header := t.sizes(rect.Size, node)

	child := 0
	y := rect.Y()
	if t.header != nil {
		// header rows take precedence over the separator line
		if t.separator {
			header--
		}
		h := min(header, rect.Height())
		t.renderRow(buf, rect, t.header, y, h, cols, node, child)
		buf.StyleRect(NewRect(rect.X(), y, rect.Width(), h), t.headerStyle)
		y += h
		if t.separator && y < rect.Bottom() {
			buf.HLine(Vec2{rect.X(), y}, rect.Width(), BoxHorizontal, t.headerStyle)
			y++
		}
		child += len(t.header.cells)
	}

	t.scrollTo(rows, rect.Bottom()-y)
	for i := 0; i < t.state.Offset && i < len(t.rows); i++ {
		child += len(t.rows[i].cells)
	}

	sel, hasSel := t.state.Selected()
	for i := t.state.Offset; i < len(t.rows) && y < rect.Bottom(); i++ {
		r := t.rows[i]
		h := min(rows[i], rect.Bottom()-y)
		t.renderRow(buf, rect, r, y, h, cols, node, child)
		rowRect := NewRect(rect.X(), y, rect.Width(), h)
		buf.StyleRect(rowRect, r.style)
		if hasSel && i == sel {
			buf.StyleRect(rowRect, t.selectedStyle)
		}
		child += len(r.cells)
		y += h
	}

	if col, ok := t.state.SelectedColumn(); ok && col < len(cols) {
		x := rect.X()
		for i := range col {
			x += cols[i] + t.spacing
		}
		if x < rect.Right() {
			w := min(cols[col], rect.Right()-x)
			buf.StyleRect(NewRect(x, rect.Y(), w, rect.Height()), t.columnStyle)
		}
	}
}

// renderRow draws the cells of r across the row at y, clipping columns that
// run past the right edge.
func (t *Table) renderRow(buf *Buffer, rect Rect, r *Row, y, h int, cols []int, node CacheNode, first int) {
	if h <= 0 {
		return
	}
	x := rect.X()
	for i, c := range r.cells {
		if i >= len(cols) || x >= rect.Right() {
			return
		}
		w := min(cols[i], rect.Right()-x)
		if w > 0 {
			c.Render(buf, NewRect(x, y, w, h), node.Child(first+i))
		}
		x += cols[i] + t.spacing
	}
}
