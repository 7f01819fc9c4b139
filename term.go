package termgrid

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// ErrUnknownTerminalSize is returned when the terminal size cannot be
	// determined.
	ErrUnknownTerminalSize = errors.New("unknown terminal size")
	// ErrNoPreviousWidget is returned by Rerender before anything has been
	// rendered.
	ErrNoPreviousWidget = errors.New("no previous widget to rerender")
)

// debugFrames enables per-frame tracing on stderr via TERMGRID_DEBUG.
var debugFrames = os.Getenv("TERMGRID_DEBUG") != ""

var debugLog = log.New(os.Stderr, "termgrid: ", log.Lmicroseconds)

func debugf(format string, args ...any) {
	if debugFrames {
		debugLog.Printf(format, args...)
	}
}

// Frame describes the area available to the widget being built.
type Frame struct {
	Area Rect
}

// Size returns the frame's size.
func (f Frame) Size() Vec2 { return f.Area.Size }

// Term drives rendering to a terminal. Each frame it diffs the layout cache
// against the new widget tree, renders into a fresh buffer and paints only
// what changed since the previous frame.
type Term struct {
	out     io.Writer
	in      *os.File
	painter Painter
	sizeFn  func() (width, height int, err error)

	padding Padding
	small   *Element

	cache      *Cache
	prev       *Buffer
	prevWidget *Element

	raw   *term.State
	setup bool
}

// NewTerm creates a driver writing to stdout, with colors degraded to what
// the environment advertises.
func NewTerm() *Term {
	t := &Term{
		out:   os.Stdout,
		in:    os.Stdin,
		cache: NewCache(),
	}
	t.painter.Profile = termenv.EnvColorProfile()
	return t
}

// Output sets where frames are written. The next frame is painted in full.
func (t *Term) Output(w io.Writer) *Term {
	t.out = w
	t.prev = nil
	return t
}

// Input sets the terminal read from and put in raw mode by Setup.
func (t *Term) Input(f *os.File) *Term {
	t.in = f
	return t
}

// ColorProfile overrides the detected color profile.
func (t *Term) ColorProfile(p termenv.Profile) *Term {
	t.painter.Profile = p
	return t
}

// SizeFunc replaces terminal size detection.
func (t *Term) SizeFunc(fn func() (width, height int, err error)) *Term {
	t.sizeFn = fn
	return t
}

// Padding leaves space around the rendered area.
func (t *Term) Padding(p Padding) *Term {
	t.padding = p
	return t
}

// SmallScreen is shown instead of the widget when the widget does not fit.
func (t *Term) SmallScreen(w any) *Term {
	t.small = El(w)
	return t
}

// Cache returns the layout cache.
func (t *Term) Cache() *Cache { return t.cache }

// LastStats describes the output of the last frame.
func (t *Term) LastStats() PaintStats { return t.painter.Stats }

// Size returns the terminal size.
func (t *Term) Size() (Vec2, error) {
	var w, h int
	var err error
	if t.sizeFn != nil {
		w, h, err = t.sizeFn()
	} else {
		w, h, err = terminalSize(int(os.Stdout.Fd()))
	}
	if err != nil {
		return Vec2{}, fmt.Errorf("%w: %v", ErrUnknownTerminalSize, err)
	}
	return Vec2{w, h}, nil
}

// rect is the area inside the padding.
func (t *Term) rect() (Rect, error) {
	size, err := t.Size()
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		Pos:  Vec2{t.padding.Left, t.padding.Top},
		Size: size.SubSat(t.padding.Size()),
	}, nil
}

// Render draws w (anything El accepts).
func (t *Term) Render(w any) error {
	rect, err := t.rect()
	if err != nil {
		return err
	}
	return t.renderElement(El(w), rect)
}

// Draw builds the widget for the current frame with view and draws it.
func (t *Term) Draw(view func(Frame) *Element) error {
	rect, err := t.rect()
	if err != nil {
		return err
	}
	return t.renderElement(view(Frame{Area: rect}), rect)
}

// Rerender draws the last widget again, picking up changes to shared state
// such as scroll positions.
func (t *Term) Rerender() error {
	if t.prevWidget == nil {
		return ErrNoPreviousWidget
	}
	rect, err := t.rect()
	if err != nil {
		return err
	}
	return t.renderElement(t.prevWidget, rect)
}

// ClearCache drops all cached layout. Cached sizes are keyed only on the
// space available and the layout's own constraints, so call this after
// changing content a cached size depends on.
func (t *Term) ClearCache() {
	t.cache.Clear()
}

func (t *Term) renderElement(el *Element, rect Rect) error {
	buf := NewBuffer(rect)
	target := el
	if t.small != nil && (rect.Width() < el.Width(rect.Size) || rect.Height() < el.Height(rect.Size)) {
		target = t.small
	}
	t.cache.Diff(target)
	target.Render(buf, rect, t.cache.Root())
	t.prevWidget = el

	if t.prev != nil && t.prev.rect != rect {
		if _, err := io.WriteString(t.out, "\x1b[2J"); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}
	if err := t.painter.PaintDiff(t.out, buf, t.prev); err != nil {
		return err
	}
	t.prev = buf

	if debugFrames {
		st := t.painter.Stats
		cs := t.cache.Stats()
		debugf("frame %v: %d cells, %d moves, %d bytes, full=%v, cache nodes=%d invalidated=%d",
			rect, st.Cells, st.Moves, st.Bytes, st.Full, cs.Nodes, cs.Invalidations)
	}
	return nil
}

// Setup switches to the alternate screen, hides the cursor and puts the
// input terminal in raw mode. It is a no-op when already set up.
func (t *Term) Setup() error {
	if t.setup {
		return nil
	}
	if t.in != nil && term.IsTerminal(int(t.in.Fd())) {
		state, err := term.MakeRaw(int(t.in.Fd()))
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		t.raw = state
	}
	if _, err := io.WriteString(t.out, "\x1b[?1049h\x1b[2J\x1b[?25l"); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	t.setup = true
	t.prev = nil
	return nil
}

// Restore undoes Setup.
func (t *Term) Restore() error {
	if !t.setup {
		return nil
	}
	t.setup = false
	t.prev = nil
	_, werr := io.WriteString(t.out, "\x1b[?1049l\x1b[?25h")
	if t.raw != nil {
		if err := term.Restore(int(t.in.Fd()), t.raw); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
		t.raw = nil
	}
	if werr != nil {
		return fmt.Errorf("leave alternate screen: %w", werr)
	}
	return nil
}
