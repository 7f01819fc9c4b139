package termgrid

import "github.com/rivo/uniseg"

// ListState holds a list's scroll offset and selection. It is shared between
// the application and the List that renders it.
type ListState struct {
	Offset   int
	selected int
	has      bool
}

// NewListState creates a state scrolled to the top with no selection.
func NewListState() *ListState {
	return &ListState{}
}

// Select marks item i as selected.
func (s *ListState) Select(i int) {
	s.selected, s.has = max(i, 0), true
}

// Deselect clears the selection.
func (s *ListState) Deselect() {
	s.has = false
}

// Selected returns the selected index, if any.
func (s *ListState) Selected() (int, bool) {
	return s.selected, s.has
}

// List shows items one after another with an optional highlighted
// selection, scrolling so the selection stays in view.
type List struct {
	items         []*Element
	state         *ListState
	selectedStyle Style
	symbol        string
	scrollbar     bool
}

// NewList creates a list of items bound to state. Items may be anything El
// accepts; a nil state gives a list with no selection.
func NewList[T any](items []T, state *ListState) *List {
	if state == nil {
		state = NewListState()
	}
	l := &List{state: state, selectedStyle: DefaultStyle().Inverse()}
	for _, it := range items {
		l.items = append(l.items, El(it))
	}
	return l
}

// SelectedStyle is layered over the selected item.
func (l *List) SelectedStyle(s Style) *List {
	l.selectedStyle = s
	return l
}

// HighlightSymbol is drawn in front of the selected item; other items are
// indented by its width.
func (l *List) HighlightSymbol(sym string) *List {
	l.symbol = sym
	return l
}

// Scrollbar shows a vertical scrollbar when the items overflow.
func (l *List) Scrollbar(on bool) *List {
	l.scrollbar = on
	return l
}

func (l *List) Children() []*Element { return l.items }

func (l *List) symbolWidth() int { return uniseg.StringWidth(l.symbol) }

func (l *List) heights(width, height int) ([]int, int) {
	hs := make([]int, len(l.items))
	total := 0
	for i, it := range l.items {
		hs[i] = max(it.Height(Vec2{width, height}), 1)
		total += hs[i]
	}
	return hs, total
}

func (l *List) Height(size Vec2) int {
	_, total := l.heights(subSat(size.X, l.symbolWidth()), size.Y)
	return total
}

func (l *List) Width(size Vec2) int {
	w := 0
	inner := Vec2{subSat(size.X, l.symbolWidth()), size.Y}
	for _, it := range l.items {
		w = max(w, it.Width(inner))
	}
	return w + l.symbolWidth()
}

// scrollTo moves the offset so that the selected item is fully visible
// where possible.
func (l *List) scrollTo(hs []int, visible int) {
	st := l.state
	st.Offset = min(max(st.Offset, 0), max(len(hs)-1, 0))
	sel, ok := st.Selected()
	if !ok {
		return
	}
	sel = min(sel, len(hs)-1)
	if sel < st.Offset {
		st.Offset = sel
		return
	}
	for st.Offset < sel {
		used := 0
		for i := st.Offset; i <= sel; i++ {
			used += hs[i]
		}
		if used <= visible {
			break
		}
		st.Offset++
	}
}

func (l *List) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() || len(l.items) == 0 {
		return
	}
	symW := l.symbolWidth()
	width := rect.Width()
	hs, total := l.heights(subSat(width, symW), rect.Height())
	bar := l.scrollbar && total > rect.Height() && width > 1
	if bar {
		width--
		hs, total = l.heights(subSat(width, symW), rect.Height())
	}
	l.scrollTo(hs, rect.Height())

	sel, hasSel := l.state.Selected()
	y := rect.Y()
	for i := l.state.Offset; i < len(l.items) && y < rect.Bottom(); i++ {
		h := min(hs[i], rect.Bottom()-y)
		if width > symW {
			l.items[i].Render(buf, NewRect(rect.X()+symW, y, width-symW, h), node.Child(i))
		}
		if hasSel && i == sel {
			if symW > 0 {
				buf.SetStringClipped(Vec2{rect.X(), y}, l.symbol, l.selectedStyle, width)
			}
			buf.StyleRect(NewRect(rect.X(), y, width, h), l.selectedStyle)
		}
		y += h
	}

	if bar {
		before := 0
		for i := 0; i < l.state.Offset; i++ {
			before += hs[i]
		}
		st := &ScrollbarState{ContentLen: total, Offset: before}
		NewScrollbar(Vertical, st).Render(buf, NewRect(rect.X()+width, rect.Y(), 1, rect.Height()), CacheNode{})
	}
}
