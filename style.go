// Package termgrid is a terminal layout and rendering engine. Widgets are
// measured, laid out against constraints and painted into an off-screen cell
// buffer, which is then diffed against the previous frame to emit only the
// escape sequences needed to update the screen.
package termgrid

// Attribute is a set of text attributes that can be combined.
type Attribute uint8

const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrikethrough
)

// sgrAttrs pairs each attribute with its SGR parameter, in emission order.
var sgrAttrs = [...]struct {
	attr Attribute
	code string
}{
	{AttrBold, "1"},
	{AttrDim, "2"},
	{AttrItalic, "3"},
	{AttrUnderline, "4"},
	{AttrBlink, "5"},
	{AttrInverse, "7"},
	{AttrHidden, "8"},
	{AttrStrikethrough, "9"},
}

// Has reports whether the set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns the set with attr added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns the set with attr removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// ColorMode is the encoding of a Color.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default
	Color16                       // basic 16 colors (0-15)
	Color256                      // 256 color palette
	ColorRGB                      // 24-bit
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index & 0x0f}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit color from a packed value such as 0xFF5500.
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Mode == ColorDefault
}

// Style combines foreground, background and attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns s with the foreground set to c.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns s with the background set to c.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

func (s Style) Bold() Style          { s.Attr = s.Attr.With(AttrBold); return s }
func (s Style) Dim() Style           { s.Attr = s.Attr.With(AttrDim); return s }
func (s Style) Italic() Style        { s.Attr = s.Attr.With(AttrItalic); return s }
func (s Style) Underline() Style     { s.Attr = s.Attr.With(AttrUnderline); return s }
func (s Style) Blink() Style         { s.Attr = s.Attr.With(AttrBlink); return s }
func (s Style) Inverse() Style       { s.Attr = s.Attr.With(AttrInverse); return s }
func (s Style) Hidden() Style        { s.Attr = s.Attr.With(AttrHidden); return s }
func (s Style) Strikethrough() Style { s.Attr = s.Attr.With(AttrStrikethrough); return s }

// Patch layers o over s: non-default colors of o replace those of s and the
// attributes are combined.
func (s Style) Patch(o Style) Style {
	if !o.FG.IsDefault() {
		s.FG = o.FG
	}
	if !o.BG.IsDefault() {
		s.BG = o.BG
	}
	s.Attr |= o.Attr
	return s
}

// Cell is a single character cell. A Rune of 0 marks the trailing half of a
// double-width glyph.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a space with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
