package termgrid

// Scrollable shows a window onto a child that may be larger than the space
// it is given. The child is rendered at its full size into an off-screen
// buffer shifted by the scroll offset, and the visible window is cut out and
// composited onto the target. Scrollbars appear along each scrolling axis
// when the content overflows.
type Scrollable struct {
	child      *Element
	vertical   *ScrollbarState
	horizontal *ScrollbarState
	barStyle   Style
	thumbStyle Style
}

// NewScrollable scrolls child along d using state.
func NewScrollable(child any, d Direction, state *ScrollbarState) *Scrollable {
	s := &Scrollable{child: El(child)}
	if d == Horizontal {
		s.horizontal = state
	} else {
		s.vertical = state
	}
	return s
}

// NewScrollableBoth scrolls child along both axes.
func NewScrollableBoth(child any, vertical, horizontal *ScrollbarState) *Scrollable {
	return &Scrollable{child: El(child), vertical: vertical, horizontal: horizontal}
}

// ScrollbarStyle sets the track and thumb styles of the scrollbars.
func (s *Scrollable) ScrollbarStyle(track, thumb Style) *Scrollable {
	s.barStyle, s.thumbStyle = track, thumb
	return s
}

func (s *Scrollable) Children() []*Element { return []*Element{s.child} }

func (s *Scrollable) Height(size Vec2) int { return s.child.Height(size) }
func (s *Scrollable) Width(size Vec2) int  { return s.child.Width(size) }

// viewport works out the visible area, the content size and which
// scrollbars are needed for rect.
func (s *Scrollable) viewport(rect Rect) (view, content Vec2, needV, needH bool) {
	view = rect.Size
	content = view
	if s.vertical != nil {
		content.Y = s.child.Height(view)
		if content.Y > view.Y {
			needV = true
			view.X = subSat(view.X, 1)
			content.Y = s.child.Height(view)
		}
	}
	if s.horizontal != nil {
		content.X = s.child.Width(view)
		if content.X > view.X {
			needH = true
			view.Y = subSat(view.Y, 1)
			if s.vertical != nil && !needV {
				content.Y = s.child.Height(view)
				if content.Y > view.Y {
					needV = true
					view.X = subSat(view.X, 1)
				}
			}
		}
	}
	content.X = max(content.X, view.X)
	content.Y = max(content.Y, view.Y)
	return view, content, needV, needH
}

func (s *Scrollable) Render(buf *Buffer, rect Rect, node CacheNode) {
	if rect.IsEmpty() {
		return
	}
	view, content, needV, needH := s.viewport(rect)
	if view.X == 0 || view.Y == 0 {
		return
	}

	var off Vec2
	if s.vertical != nil {
		s.vertical.ContentLen = content.Y
		s.vertical.clamp(view.Y)
		off.Y = s.vertical.Offset
	}
	if s.horizontal != nil {
		s.horizontal.ContentLen = content.X
		s.horizontal.clamp(view.X)
		off.X = s.horizontal.Offset
	}

	scratch := NewBuffer(NewRect(rect.X()-off.X, rect.Y()-off.Y, content.X, content.Y))
	s.child.Render(scratch, scratch.Rect(), node.Child(0))
	buf.Merge(scratch.Subset(Rect{Pos: rect.Pos, Size: view}))

	if needV {
		NewScrollbar(Vertical, s.vertical).TrackStyle(s.barStyle).ThumbStyle(s.thumbStyle).
			Render(buf, NewRect(rect.X()+view.X, rect.Y(), 1, view.Y), CacheNode{})
	}
	if needH {
		NewScrollbar(Horizontal, s.horizontal).TrackStyle(s.barStyle).ThumbStyle(s.thumbStyle).
			Render(buf, NewRect(rect.X(), rect.Y()+view.Y, view.X, 1), CacheNode{})
	}
}
