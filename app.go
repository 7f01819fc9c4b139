package termgrid

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Action tells the runner what to do after an event or update.
type Action uint8

const (
	ActionNone     Action = 0
	ActionRerender Action = 1 << 0 // draw the last widget again
	ActionRender   Action = 1 << 1 // rebuild the widget with View and draw it
	ActionQuit     Action = 1 << 2 // stop the application
)

func (a Action) Has(o Action) bool { return a&o != 0 }

// DefaultPollTimeout is how often Update runs when the application does not
// say otherwise.
const DefaultPollTimeout = 100 * time.Millisecond

// Application builds the widget tree for a frame. An application may also
// implement EventHandler, Updater and PollTimeouter.
type Application interface {
	View(f Frame) *Element
}

// EventHandler receives decoded terminal input (tea.KeyMsg, tea.MouseMsg,
// tea.WindowSizeMsg and so on).
type EventHandler interface {
	Event(msg tea.Msg) Action
}

// Updater is called on every poll tick.
type Updater interface {
	Update() Action
}

// PollTimeouter sets the interval between ticks.
type PollTimeouter interface {
	PollTimeout() time.Duration
}

type tickMsg time.Time

// runner adapts an Application to bubbletea's event loop. bubbletea only
// decodes input and schedules ticks; all drawing goes through the Term.
type runner struct {
	term    *Term
	app     Application
	timeout time.Duration
	size    Vec2
	err     error
}

func newRunner(t *Term, app Application) *runner {
	r := &runner{term: t, app: app, timeout: DefaultPollTimeout}
	if p, ok := app.(PollTimeouter); ok && p.PollTimeout() > 0 {
		r.timeout = p.PollTimeout()
	}
	r.size, _ = t.Size()
	return r
}

func (r *runner) Init() tea.Cmd {
	return r.tick()
}

func (r *runner) tick() tea.Cmd {
	return tea.Tick(r.timeout, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (r *runner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var act Action
	var next tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		if u, ok := r.app.(Updater); ok {
			act |= u.Update()
		}
		if size, err := r.term.Size(); err == nil && size != r.size {
			r.size = size
			act |= ActionRender
		}
		next = r.tick()
	case tea.WindowSizeMsg:
		r.size = Vec2{msg.Width, msg.Height}
		act |= ActionRender
		if h, ok := r.app.(EventHandler); ok {
			act |= h.Event(msg)
		}
	default:
		if h, ok := r.app.(EventHandler); ok {
			act |= h.Event(msg)
		} else if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
			act |= ActionQuit
		}
	}

	if act.Has(ActionQuit) {
		return r, tea.Quit
	}
	var err error
	switch {
	case act.Has(ActionRender):
		err = r.term.Draw(r.app.View)
	case act.Has(ActionRerender):
		err = r.term.Rerender()
	}
	if err != nil {
		r.err = err
		return r, tea.Quit
	}
	return r, next
}

func (r *runner) View() string { return "" }

// Run takes over the terminal and drives app until it returns ActionQuit.
// Input decoding and tick scheduling are done by a bubbletea program with
// its renderer disabled; extra program options are passed through.
func (t *Term) Run(app Application, opts ...tea.ProgramOption) error {
	if err := t.Setup(); err != nil {
		return err
	}
	defer t.Restore()

	if err := t.Draw(app.View); err != nil {
		return err
	}
	r := newRunner(t, app)
	base := []tea.ProgramOption{tea.WithoutRenderer()}
	if t.in != nil {
		base = append(base, tea.WithInput(t.in))
	}
	p := tea.NewProgram(r, append(base, opts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return r.err
}
