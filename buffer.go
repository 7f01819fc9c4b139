package termgrid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a rectangular grid of cells at an absolute position. Cells are
// stored row-major: the cell at (x, y) lives at (x-X) + (y-Y)*Width.
type Buffer struct {
	rect  Rect
	cells []Cell
}

// OutOfBoundsError is the panic value raised when a buffer is addressed
// outside its rectangle.
type OutOfBoundsError struct {
	Pos  Vec2
	Rect Rect
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("termgrid: position %v outside buffer %v", e.Pos, e.Rect)
}

// NotContainedError is the panic value raised when a sub-rectangle does not
// fit inside the buffer it is taken from.
type NotContainedError struct {
	Inner Rect
	Outer Rect
}

func (e *NotContainedError) Error() string {
	return fmt.Sprintf("termgrid: rect %v not contained in buffer %v", e.Inner, e.Outer)
}

// NewBuffer creates a buffer covering rect filled with empty cells.
func NewBuffer(rect Rect) *Buffer {
	return NewFilledBuffer(rect, EmptyCell())
}

// NewFilledBuffer creates a buffer covering rect filled with c.
func NewFilledBuffer(rect Rect, c Cell) *Buffer {
	rect.Size = Vec2{max(rect.Size.X, 0), max(rect.Size.Y, 0)}
	cells := make([]Cell, rect.Area())
	for i := range cells {
		cells[i] = c
	}
	return &Buffer{rect: rect, cells: cells}
}

// Rect returns the area the buffer covers.
func (b *Buffer) Rect() Rect { return b.rect }

func (b *Buffer) X() int      { return b.rect.Pos.X }
func (b *Buffer) Y() int      { return b.rect.Pos.Y }
func (b *Buffer) Width() int  { return b.rect.Size.X }
func (b *Buffer) Height() int { return b.rect.Size.Y }

// Area returns the number of cells.
func (b *Buffer) Area() int { return len(b.cells) }

// InBounds reports whether pos is inside the buffer.
func (b *Buffer) InBounds(pos Vec2) bool {
	return b.rect.ContainsPos(pos)
}

// Index converts an absolute position into a cell index. It panics with
// *OutOfBoundsError when pos is outside the buffer.
func (b *Buffer) Index(pos Vec2) int {
	if !b.rect.ContainsPos(pos) {
		panic(&OutOfBoundsError{Pos: pos, Rect: b.rect})
	}
	return (pos.X - b.rect.Pos.X) + (pos.Y-b.rect.Pos.Y)*b.rect.Size.X
}

// PosOf converts a cell index back into an absolute position.
func (b *Buffer) PosOf(idx int) Vec2 {
	if idx < 0 || idx >= len(b.cells) {
		panic(fmt.Sprintf("termgrid: index %d outside buffer of %d cells", idx, len(b.cells)))
	}
	w := b.rect.Size.X
	return Vec2{b.rect.Pos.X + idx%w, b.rect.Pos.Y + idx/w}
}

// Get returns the cell at pos.
func (b *Buffer) Get(pos Vec2) Cell {
	return b.cells[b.Index(pos)]
}

// Set replaces the cell at pos.
func (b *Buffer) Set(pos Vec2, c Cell) {
	b.cells[b.Index(pos)] = c
}

// SetRune replaces the rune at pos, keeping its style.
func (b *Buffer) SetRune(pos Vec2, r rune) {
	b.cells[b.Index(pos)].Rune = r
}

// SetStyle replaces the style at pos, keeping its rune.
func (b *Buffer) SetStyle(pos Vec2, s Style) {
	b.cells[b.Index(pos)].Style = s
}

// PatchStyle layers s over the style at pos (see Style.Patch).
func (b *Buffer) PatchStyle(pos Vec2, s Style) {
	i := b.Index(pos)
	b.cells[i].Style = b.cells[i].Style.Patch(s)
}

// SetAttr replaces only the attributes at pos.
func (b *Buffer) SetAttr(pos Vec2, a Attribute) {
	b.cells[b.Index(pos)].Style.Attr = a
}

// SetFG replaces only the foreground at pos.
func (b *Buffer) SetFG(pos Vec2, c Color) {
	b.cells[b.Index(pos)].Style.FG = c
}

// SetBG replaces only the background at pos.
func (b *Buffer) SetBG(pos Vec2, c Color) {
	b.cells[b.Index(pos)].Style.BG = c
}

// Fill sets every cell to c.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// FillRect sets every cell of r that lies in the buffer to c.
func (b *Buffer) FillRect(r Rect, c Cell) {
	r = r.Intersect(b.rect)
	for y := r.Y(); y < r.Bottom(); y++ {
		row := b.Index(Vec2{r.X(), y})
		for i := row; i < row+r.Width(); i++ {
			b.cells[i] = c
		}
	}
}

// StyleRect patches the style of every cell of r that lies in the buffer.
func (b *Buffer) StyleRect(r Rect, s Style) {
	r = r.Intersect(b.rect)
	for y := r.Y(); y < r.Bottom(); y++ {
		row := b.Index(Vec2{r.X(), y})
		for i := row; i < row+r.Width(); i++ {
			b.cells[i].Style = b.cells[i].Style.Patch(s)
		}
	}
}

// SetString writes s starting at pos and returns the number of columns
// written. Output stops at the right edge of the buffer; a double-width
// glyph that would straddle the edge is not written. Zero-width runes are
// dropped.
func (b *Buffer) SetString(pos Vec2, s string, style Style) int {
	return b.SetStringClipped(pos, s, style, b.rect.Right()-pos.X)
}

// SetStringClipped is SetString limited to maxWidth columns.
func (b *Buffer) SetStringClipped(pos Vec2, s string, style Style, maxWidth int) int {
	idx := b.Index(pos)
	limit := min(maxWidth, b.rect.Right()-pos.X)
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > limit {
			break
		}
		b.cells[idx] = Cell{Rune: r, Style: style}
		if w == 2 {
			b.cells[idx+1] = Cell{Rune: 0, Style: style}
		}
		idx += w
		written += w
	}
	return written
}

// HLine draws length copies of r rightwards from pos, clipped to the buffer.
func (b *Buffer) HLine(pos Vec2, length int, r rune, style Style) {
	b.FillRect(NewRect(pos.X, pos.Y, length, 1), Cell{Rune: r, Style: style})
}

// VLine draws length copies of r downwards from pos, clipped to the buffer.
func (b *Buffer) VLine(pos Vec2, length int, r rune, style Style) {
	b.FillRect(NewRect(pos.X, pos.Y, 1, length), Cell{Rune: r, Style: style})
}

// Subset returns a copy of the cells inside r. It panics with
// *NotContainedError when r is not fully inside the buffer. An empty r
// yields an empty buffer.
func (b *Buffer) Subset(r Rect) *Buffer {
	if r.IsEmpty() {
		return &Buffer{rect: Rect{Pos: r.Pos}}
	}
	if !b.rect.Contains(r) {
		panic(&NotContainedError{Inner: r, Outer: b.rect})
	}
	sub := &Buffer{rect: r, cells: make([]Cell, r.Area())}
	for y := 0; y < r.Height(); y++ {
		src := b.Index(Vec2{r.X(), r.Y() + y})
		copy(sub.cells[y*r.Width():(y+1)*r.Width()], b.cells[src:src+r.Width()])
	}
	return sub
}

// Merge composites other onto b. The result covers the union of both
// rectangles; cells from other win where they overlap, cells covered by
// neither are empty.
func (b *Buffer) Merge(other *Buffer) {
	if other.rect.IsEmpty() {
		return
	}
	if !b.rect.IsEmpty() && b.rect.Contains(other.rect) {
		b.blit(other)
		return
	}
	merged := NewBuffer(b.rect.Union(other.rect))
	if !b.rect.IsEmpty() {
		merged.blit(b)
	}
	merged.blit(other)
	*b = *merged
}

// blit copies src into b; src must lie inside b.
func (b *Buffer) blit(src *Buffer) {
	w := src.rect.Width()
	for y := 0; y < src.rect.Height(); y++ {
		dst := b.Index(Vec2{src.rect.X(), src.rect.Y() + y})
		copy(b.cells[dst:dst+w], src.cells[y*w:(y+1)*w])
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{rect: b.rect, cells: append([]Cell(nil), b.cells...)}
}

// Line returns row y (absolute) as a string with trailing spaces trimmed.
func (b *Buffer) Line(y int) string {
	if y < b.rect.Y() || y >= b.rect.Bottom() {
		return ""
	}
	var sb strings.Builder
	start := (y - b.rect.Y()) * b.rect.Width()
	for _, c := range b.cells[start : start+b.rect.Width()] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer contents, one line per row, for tests and
// debugging. Placeholder cells of wide glyphs are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.rect.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := b.cells[y*b.rect.Width() : (y+1)*b.rect.Width()]
		for _, c := range row {
			if c.Rune != 0 {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces and trailing blank lines
// removed.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, 0, b.rect.Height())
	for y := b.rect.Y(); y < b.rect.Bottom(); y++ {
		lines = append(lines, b.Line(y))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
