package termgrid

import "math"

// progressThumb holds the partial-cell glyphs from one eighth to full.
var progressThumb = []rune("▏▎▍▌▋▊▉█")

// ProgressBar is a horizontal bar filled to a percentage read from a shared
// value each time it renders.
type ProgressBar struct {
	state      *float64
	thumbStyle Style
	trackStyle Style
	track      rune
	thumb      []rune
}

// NewProgressBar creates a bar showing *state percent (0 to 100).
func NewProgressBar(state *float64) *ProgressBar {
	return &ProgressBar{state: state, track: ' ', thumb: progressThumb}
}

func (p *ProgressBar) ThumbStyle(s Style) *ProgressBar {
	p.thumbStyle = s
	return p
}

func (p *ProgressBar) TrackStyle(s Style) *ProgressBar {
	p.trackStyle = s
	return p
}

// Track sets the rune drawn over the unfilled part.
func (p *ProgressBar) Track(r rune) *ProgressBar {
	p.track = r
	return p
}

// Thumb sets the glyphs used for the filled part, from the smallest partial
// fill to a full cell. A single glyph gives whole-cell steps.
func (p *ProgressBar) Thumb(glyphs ...rune) *ProgressBar {
	if len(glyphs) > 0 {
		p.thumb = glyphs
	}
	return p
}

func (p *ProgressBar) Children() []*Element { return nil }
func (p *ProgressBar) Height(Vec2) int      { return 1 }
func (p *ProgressBar) Width(size Vec2) int  { return size.X }

func (p *ProgressBar) Render(buf *Buffer, rect Rect, _ CacheNode) {
	if rect.IsEmpty() {
		return
	}
	pct := min(max(*p.state, 0), 100)
	filled := pct / 100 * float64(rect.Width())
	full := int(math.Floor(filled))
	frac := filled - float64(full)
	steps := len(p.thumb)

	for x := range rect.Width() {
		pos := Vec2{rect.X() + x, rect.Y()}
		switch {
		case x < full:
			buf.Set(pos, Cell{Rune: p.thumb[steps-1], Style: p.thumbStyle})
		case x == full && steps > 1:
			head := int(math.Round(frac*float64(steps))) - 1
			if head >= 0 {
				buf.Set(pos, Cell{Rune: p.thumb[min(head, steps-1)], Style: p.thumbStyle})
				continue
			}
			fallthrough
		default:
			buf.Set(pos, Cell{Rune: p.track, Style: p.trackStyle})
		}
	}
	for y := rect.Y() + 1; y < rect.Bottom(); y++ {
		buf.FillRect(NewRect(rect.X(), y, rect.Width(), 1), Cell{Rune: p.track, Style: p.trackStyle})
	}
}
