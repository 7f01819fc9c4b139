package termgrid

import "math"

// ScrollbarState is the scroll position shared between a scrollbar and the
// code driving it. Offset is clamped to the valid range on every render.
type ScrollbarState struct {
	ContentLen int
	Offset     int

	visible int
}

// NewScrollbarState creates a state for content of the given length.
func NewScrollbarState(contentLen int) *ScrollbarState {
	return &ScrollbarState{ContentLen: contentLen}
}

func (s *ScrollbarState) maxOffset() int {
	return subSat(s.ContentLen, s.visible)
}

func (s *ScrollbarState) clamp(visible int) {
	s.visible = visible
	s.Offset = min(max(s.Offset, 0), s.maxOffset())
}

// Next scrolls forward one cell.
func (s *ScrollbarState) Next() { s.Scroll(1) }

// Prev scrolls back one cell.
func (s *ScrollbarState) Prev() { s.Scroll(-1) }

// Scroll moves the offset by n, staying within the range known from the
// last render.
func (s *ScrollbarState) Scroll(n int) {
	s.Offset += n
	if s.visible > 0 {
		s.Offset = min(s.Offset, s.maxOffset())
	}
	s.Offset = max(s.Offset, 0)
}

// First scrolls to the start.
func (s *ScrollbarState) First() { s.Offset = 0 }

// Last scrolls to the end.
func (s *ScrollbarState) Last() { s.Offset = s.maxOffset() }

// Visible returns the viewport length seen at the last render.
func (s *ScrollbarState) Visible() int { return s.visible }

// Scrollbar draws a track with a thumb whose length and position reflect
// how much of the content is visible and where.
type Scrollbar struct {
	direction  Direction
	state      *ScrollbarState
	trackStyle Style
	thumbStyle Style
	trackRune  rune
	thumbRune  rune
}

// NewScrollbar creates a scrollbar along d bound to state.
func NewScrollbar(d Direction, state *ScrollbarState) *Scrollbar {
	sb := &Scrollbar{direction: d, state: state}
	if d == Horizontal {
		sb.trackRune, sb.thumbRune = '─', '━'
	} else {
		sb.trackRune, sb.thumbRune = '│', '┃'
	}
	return sb
}

func (sb *Scrollbar) TrackStyle(s Style) *Scrollbar {
	sb.trackStyle = s
	return sb
}

func (sb *Scrollbar) ThumbStyle(s Style) *Scrollbar {
	sb.thumbStyle = s
	return sb
}

// Runes overrides the track and thumb runes.
func (sb *Scrollbar) Runes(track, thumb rune) *Scrollbar {
	sb.trackRune, sb.thumbRune = track, thumb
	return sb
}

func (sb *Scrollbar) Children() []*Element { return nil }

func (sb *Scrollbar) Height(size Vec2) int {
	if sb.direction == Horizontal {
		return 1
	}
	return size.Y
}

func (sb *Scrollbar) Width(size Vec2) int {
	if sb.direction == Horizontal {
		return size.X
	}
	return 1
}

// thumb returns the thumb's offset and length within a track of the given
// length, clamping the state's offset as a side effect.
func (sb *Scrollbar) thumb(visible int) (pos, length int) {
	st := sb.state
	st.clamp(visible)
	if st.ContentLen <= visible || visible == 0 {
		return 0, visible
	}
	length = int(math.Round(float64(visible*visible) / float64(st.ContentLen)))
	length = min(max(length, 1), visible)
	ratio := float64(st.Offset) / float64(st.maxOffset())
	pos = int(math.Round(ratio * float64(visible-length)))
	return pos, length
}

func (sb *Scrollbar) Render(buf *Buffer, rect Rect, _ CacheNode) {
	if rect.IsEmpty() {
		return
	}
	d := sb.direction
	visible := rect.Size.Axis(d)
	pos, length := sb.thumb(visible)
	for i := range visible {
		r, s := sb.trackRune, sb.trackStyle
		if i >= pos && i < pos+length {
			r, s = sb.thumbRune, sb.thumbStyle
		}
		buf.Set(rect.Pos.Add(axisVec(d, i, 0)), Cell{Rune: r, Style: s})
	}
}
