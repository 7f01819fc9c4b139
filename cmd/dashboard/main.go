package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/kungfusheep/termgrid"
)

var services = []string{"auth", "billing", "search", "gateway", "storage", "queue", "mailer", "cdn"}

type dashboard struct {
	cpu, mem, disk float64
	latency        []int
	requests       [][3]string
	list           *ListState
	table          *TableState
	tick           int
}

func newDashboard() *dashboard {
	d := &dashboard{list: NewListState(), table: NewTableState(0)}
	d.list.Select(0)
	d.table.Select(0)
	for range 20 {
		d.step()
	}
	return d
}

func (d *dashboard) step() {
	d.tick++
	d.cpu = clamp(d.cpu + rand.Float64()*20 - 10)
	d.mem = clamp(d.mem + rand.Float64()*6 - 3)
	d.disk = clamp(d.disk + rand.Float64()*0.5)
	d.latency = append(d.latency, 20+rand.Intn(180))
	if len(d.latency) > 50 {
		d.latency = d.latency[1:]
	}
	status := "200"
	if rand.Intn(10) == 0 {
		status = "500"
	}
	req := [3]string{
		time.Now().Format("15:04:05"),
		services[rand.Intn(len(services))],
		status,
	}
	d.requests = append([][3]string{req}, d.requests...)
	if len(d.requests) > 100 {
		d.requests = d.requests[:100]
	}
}

func clamp(v float64) float64 {
	return min(max(v, 0), 100)
}

func (d *dashboard) gauge(name string, v *float64, c Color) *Layout {
	return HStack().
		Push(NewSpan(name).Attr(AttrBold), Length(6)).
		Push(NewProgressBar(v).ThumbStyle(DefaultStyle().Foreground(c)).Track('·'), Fill(1)).
		Push(fmt.Sprintf(" %3.0f%%", *v), Length(5))
}

func (d *dashboard) View(f Frame) *Element {
	header := NewGrad(" termgrid dashboard ", Hex(0xff5f87), Hex(0x5fafff)).
		Style(DefaultStyle().Bold()).
		Align(AlignCenter)

	gauges := VBlock().
		Title("resources").
		Border(BorderRounded).
		Push(d.gauge("cpu", &d.cpu, Green), Length(1)).
		Push(d.gauge("mem", &d.mem, Yellow), Length(1)).
		Push(d.gauge("disk", &d.disk, Magenta), Length(1))

	lat := NewParagraph().Separator("  ")
	for _, ms := range d.latency[max(len(d.latency)-10, 0):] {
		s := NewSpan(fmt.Sprintf("%dms", ms))
		if ms > 150 {
			s.FG(Red)
		}
		lat.Push(s)
	}
	latency := VBlock().Title("latency").Push(lat, Fill(1))

	svc := NewList(services, d.list).
		HighlightSymbol("> ").
		SelectedStyle(DefaultStyle().Foreground(Cyan).Bold()).
		Scrollbar(true)

	reqs := NewTable([]Unit{UnitLength(8), UnitFill(1), UnitLength(6)}, d.table).
		Header(NewRow("time", "service", "status")).
		HeaderStyle(DefaultStyle().Bold()).
		HeaderSeparator(true).
		Spacing(1).
		SelectedStyle(DefaultStyle().Inverse())
	for _, r := range d.requests {
		row := NewRow(r[0], r[1], r[2])
		if r[2] != "200" {
			row.Style(DefaultStyle().Foreground(Red))
		}
		reqs.Push(row)
	}

	body := NewGrid([]Unit{UnitPercent(30), UnitFill(1)}, []Unit{UnitLength(5), UnitFill(1)}).
		Push(VBlock().Title("services").Push(svc, Fill(1)), 0, 1).
		Push(gauges, 1, 0).
		Push(latency, 0, 0).
		Push(VBlock().Title("requests").Push(reqs, Fill(1)), 1, 1)

	return El(VStack().
		Push(header, Length(1)).
		Push(body, Fill(1)).
		Push(NewSpan("j/k select  q quit").Style(DefaultStyle().Dim()), Length(1)))
}

func (d *dashboard) Event(msg tea.Msg) Action {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionNone
	}
	switch k.String() {
	case "q", "ctrl+c":
		return ActionQuit
	case "j", "down":
		i, _ := d.list.Selected()
		d.list.Select(min(i+1, len(services)-1))
		j, _ := d.table.Selected()
		d.table.Select(min(j+1, len(d.requests)-1))
		return ActionRender
	case "k", "up":
		i, _ := d.list.Selected()
		d.list.Select(i - 1)
		j, _ := d.table.Selected()
		d.table.Select(j - 1)
		return ActionRender
	}
	return ActionNone
}

func (d *dashboard) Update() Action {
	d.step()
	return ActionRender
}

func (d *dashboard) PollTimeout() time.Duration { return 500 * time.Millisecond }

func main() {
	term := NewTerm().SmallScreen(NewSpan("terminal too small").Align(AlignCenter))
	if err := term.Run(newDashboard()); err != nil {
		log.Fatal(err)
	}
}
