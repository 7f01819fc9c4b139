package termgrid

import "github.com/rivo/uniseg"

// DefaultEllipsis marks text cut off at the bottom of a span.
const DefaultEllipsis = "..."

// Span is a run of styled text, wrapped to the width it is given.
type Span struct {
	text     string
	style    Style
	align    TextAlign
	wrap     Wrap
	ellipsis string
}

// NewSpan creates a left-aligned, word-wrapped span.
func NewSpan(text string) *Span {
	return &Span{text: text, ellipsis: DefaultEllipsis}
}

// Text returns the span's text.
func (s *Span) Text() string { return s.text }

// SetText replaces the text.
func (s *Span) SetText(text string) *Span {
	s.text = text
	return s
}

func (s *Span) Style(st Style) *Span {
	s.style = st
	return s
}

func (s *Span) FG(c Color) *Span {
	s.style.FG = c
	return s
}

func (s *Span) BG(c Color) *Span {
	s.style.BG = c
	return s
}

func (s *Span) Attr(a Attribute) *Span {
	s.style.Attr |= a
	return s
}

func (s *Span) Align(a TextAlign) *Span {
	s.align = a
	return s
}

func (s *Span) Wrap(w Wrap) *Span {
	s.wrap = w
	return s
}

// Ellipsis sets the marker shown when text does not fit; "" disables it.
func (s *Span) Ellipsis(e string) *Span {
	s.ellipsis = e
	return s
}

func (s *Span) String() string { return s.text }

func (s *Span) Children() []*Element { return nil }

func (s *Span) tokenizer() *Tokenizer {
	return TokenizeString(s.text).Wrap(s.wrap)
}

// Height is the number of lines the text wraps to at size.X.
func (s *Span) Height(size Vec2) int {
	return wrappedHeight(s.tokenizer(), size.X)
}

func wrappedHeight(t *Tokenizer, width int) int {
	if width <= 0 {
		return 0
	}
	n := 0
	for t.NextLine(width).Kind != TokenEnd {
		n++
	}
	return n
}

// Width is the narrowest width at which the text fits in size.Y lines
// without breaking a word. With no height to fit into it is the unwrapped
// width.
func (s *Span) Width(size Vec2) int {
	natural := s.naturalWidth()
	if size.Y <= 0 || natural == 0 {
		return natural
	}
	// words are not broken, and together they must fit in size.Y lines
	words, longest := 0, 0
	t := s.tokenizer()
	for tok := t.NextWord(); tok.Kind != TokenEnd; tok = t.NextWord() {
		words += tok.Width
		longest = max(longest, tok.Width)
	}
	for w := max(longest, (words+size.Y-1)/size.Y); w < natural; w++ {
		if wrappedHeight(s.tokenizer(), w) <= size.Y {
			return w
		}
	}
	return natural
}

// naturalWidth is the width of the longest line when only explicit
// newlines break it.
func (s *Span) naturalWidth() int {
	t := s.tokenizer()
	width, longest := 0, 0
	for {
		tok := t.NextWord()
		switch tok.Kind {
		case TokenEnd:
			return max(longest, width)
		case TokenNewline:
			longest = max(longest, width)
			width = 0
		case TokenWord:
			if width > 0 {
				width++
			}
			width += tok.Width
		}
	}
}

func (s *Span) Render(buf *Buffer, rect Rect, _ CacheNode) {
	renderText(buf, rect, s.tokenizer(), s.align, s.ellipsis, func(int, int) Style { return s.style })
}

// renderText lays out wrapped lines from t inside rect. When text remains
// after the last row, that row is cut short to make room for ellipsis.
// styleAt gives the style for each column and row offset within rect.
func renderText(buf *Buffer, rect Rect, t *Tokenizer, align TextAlign, ellipsis string, styleAt func(col, row int) Style) {
	if rect.IsEmpty() {
		return
	}
	ew := uniseg.StringWidth(ellipsis)
	for row := 0; row < rect.Height(); row++ {
		tok := t.NextLine(rect.Width())
		if tok.Kind == TokenEnd {
			return
		}
		if tok.Kind == TokenNewline {
			continue
		}
		text, width := tok.Text, tok.Width
		last := row == rect.Height()-1
		if last && ew > 0 && !t.Done() {
			text, width = truncateWidth(text, rect.Width()-ew)
			text += ellipsis
			width += ew
			if width > rect.Width() {
				text, width = truncateWidth(text, rect.Width())
			}
		}
		x := rect.X() + align.offset(rect.Width(), width)
		drawStyled(buf, Vec2{x, rect.Y() + row}, text, rect.Right(), func(col int) Style {
			return styleAt(col-rect.X(), row)
		})
	}
}

// drawStyled writes text from pos up to the exclusive column limit, styling
// each cell by its absolute column.
func drawStyled(buf *Buffer, pos Vec2, text string, limit int, styleAt func(col int) Style) {
	x := pos.X
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		rs := g.Runes()
		style := styleAt(x)
		buf.Set(Vec2{x, pos.Y}, Cell{Rune: rs[0], Style: style})
		for i := 1; i < w; i++ {
			buf.Set(Vec2{x + i, pos.Y}, Cell{Rune: 0, Style: style})
		}
		x += w
	}
}

// truncateWidth cuts s to at most width display columns.
func truncateWidth(s string, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	g := uniseg.NewGraphemes(s)
	w, cut := 0, 0
	for g.Next() {
		gw := g.Width()
		if w+gw > width {
			break
		}
		w += gw
		_, cut = g.Positions()
	}
	return s[:cut], w
}
