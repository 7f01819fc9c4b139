package termgrid

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// StyleFromLipgloss converts the colors and text attributes of a lipgloss
// style. Layout properties (padding, borders, widths) are ignored.
func StyleFromLipgloss(ls lipgloss.Style) Style {
	s := Style{
		FG: ColorFromLipgloss(ls.GetForeground()),
		BG: ColorFromLipgloss(ls.GetBackground()),
	}
	flags := []struct {
		on   bool
		attr Attribute
	}{
		{ls.GetBold(), AttrBold},
		{ls.GetFaint(), AttrDim},
		{ls.GetItalic(), AttrItalic},
		{ls.GetUnderline(), AttrUnderline},
		{ls.GetBlink(), AttrBlink},
		{ls.GetReverse(), AttrInverse},
		{ls.GetStrikethrough(), AttrStrikethrough},
	}
	for _, f := range flags {
		if f.on {
			s.Attr |= f.attr
		}
	}
	return s
}

// ColorFromLipgloss converts a lipgloss color. Adaptive colors resolve to
// their dark-background variant; unparseable values become the default.
func ColorFromLipgloss(c lipgloss.TerminalColor) Color {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return DefaultColor()
	case lipgloss.Color:
		return parseColor(string(v))
	case lipgloss.ANSIColor:
		return indexColor(int(v))
	case lipgloss.AdaptiveColor:
		return parseColor(v.Dark)
	case lipgloss.CompleteColor:
		return parseColor(v.TrueColor)
	case lipgloss.CompleteAdaptiveColor:
		return parseColor(v.Dark.TrueColor)
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return DefaultColor()
	}
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// parseColor reads "#rrggbb" or a palette index.
func parseColor(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColor()
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return DefaultColor()
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultColor()
	}
	return indexColor(n)
}

func indexColor(n int) Color {
	switch {
	case n < 0 || n > 255:
		return DefaultColor()
	case n < 16:
		return BasicColor(uint8(n))
	}
	return PaletteColor(uint8(n))
}
