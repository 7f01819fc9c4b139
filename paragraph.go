package termgrid

import (
	"math"

	"github.com/rivo/uniseg"
)

// Paragraph flows several spans together on shared lines. Each span keeps
// its own style; consecutive spans are joined by the separator.
type Paragraph struct {
	spans     []*Span
	separator string
}

// NewParagraph creates a paragraph of spans joined by single spaces.
func NewParagraph(spans ...*Span) *Paragraph {
	return &Paragraph{spans: spans, separator: " "}
}

// Push appends a span; strings become unstyled spans.
func (p *Paragraph) Push(s any) *Paragraph {
	switch s := s.(type) {
	case *Span:
		p.spans = append(p.spans, s)
	case string:
		p.spans = append(p.spans, NewSpan(s))
	default:
		panic("termgrid: paragraph parts must be strings or *Span")
	}
	return p
}

// Separator sets the text placed between spans.
func (p *Paragraph) Separator(sep string) *Paragraph {
	p.separator = sep
	return p
}

func (p *Paragraph) Children() []*Element { return nil }

// flow lays the words out at the given width, calling emit for every piece
// of text placed, and returns the number of lines used and the widest line.
// Line breaks follow Tokenizer.NextLine: a newline ends the current line,
// and a newline on an empty line is a blank line of its own.
func (p *Paragraph) flow(width int, emit func(pos Vec2, text string, style Style)) (lines, widest int) {
	if width <= 0 {
		return 0, 0
	}
	sepW := uniseg.StringWidth(p.separator)
	x := 0
	open := false // the current line has content
	put := func(text string, w int, style Style) {
		if emit != nil && w > 0 {
			emit(Vec2{x, lines}, text, style)
		}
		x += w
		widest = max(widest, x)
		open = true
	}
	breakLine := func() {
		lines++
		x, open = 0, false
	}
	for si, span := range p.spans {
		t := TokenizeString(span.text)
		first := si > 0
		for {
			tok := t.NextWord()
			if tok.Kind == TokenEnd {
				break
			}
			if tok.Kind == TokenNewline {
				breakLine()
				first = false
				continue
			}
			gap, gapW := " ", 1
			if first {
				gap, gapW = p.separator, sepW
			}
			first = false
			if x > 0 && x+gapW+tok.Width > width {
				breakLine()
			}
			if x > 0 {
				put(gap, gapW, DefaultStyle())
			}
			text, w := tok.Text, tok.Width
			for x == 0 && w > width {
				head, hw := truncateWidth(text, width)
				if hw == 0 {
					break
				}
				put(head, hw, span.style)
				text, w = text[len(head):], w-hw
				breakLine()
			}
			put(text, w, span.style)
		}
	}
	if open {
		lines++
	}
	return lines, widest
}

func (p *Paragraph) Height(size Vec2) int {
	lines, _ := p.flow(size.X, nil)
	return lines
}

// Width is the narrowest width at which the paragraph fits size.Y lines
// without breaking a word.
func (p *Paragraph) Width(size Vec2) int {
	_, natural := p.flow(math.MaxInt32, nil)
	if size.Y <= 0 || natural == 0 {
		return natural
	}
	longest := 0
	for _, s := range p.spans {
		t := TokenizeString(s.text)
		for tok := t.NextWord(); tok.Kind != TokenEnd; tok = t.NextWord() {
			longest = max(longest, tok.Width)
		}
	}
	for w := max(longest, natural/size.Y); w < natural; w++ {
		if lines, _ := p.flow(w, nil); lines <= size.Y {
			return w
		}
	}
	return natural
}

func (p *Paragraph) Render(buf *Buffer, rect Rect, _ CacheNode) {
	if rect.IsEmpty() {
		return
	}
	p.flow(rect.Width(), func(pos Vec2, text string, style Style) {
		if pos.Y >= rect.Height() {
			return
		}
		drawStyled(buf, rect.Pos.Add(pos), text, rect.Right(), func(int) Style { return style })
	})
}
