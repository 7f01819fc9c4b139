// scroll pages through a text file on a tcell screen.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/termgrid"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: scroll FILE")
		os.Exit(2)
	}
	lines, err := readLines(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	body := termgrid.VStack()
	for i, l := range lines {
		body.Push(termgrid.HStack().
			Push(termgrid.NewSpan(fmt.Sprintf("%4d ", i+1)).Style(termgrid.DefaultStyle().Dim()), termgrid.Length(5)).
			Push(termgrid.NewSpan(l), termgrid.Fill(1)), termgrid.Min(1))
	}
	state := termgrid.NewScrollbarState(0)
	view := termgrid.VBlock().
		Title(termgrid.NewSpan(os.Args[1]).Attr(termgrid.AttrBold)).
		Border(termgrid.BorderRounded).
		Push(termgrid.NewScrollable(body, termgrid.Vertical, state), termgrid.Fill(1))
	root := termgrid.El(view)

	cache := termgrid.NewCache()
	var prev *termgrid.Buffer
	draw := func() {
		w, h := screen.Size()
		rect := termgrid.NewRect(0, 0, w, h)
		buf := termgrid.NewBuffer(rect)
		cache.Diff(root)
		root.Render(buf, rect, cache.Root())
		termgrid.PaintTcell(screen, buf, prev)
		screen.Show()
		prev = buf
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			cache.Clear()
			prev = nil
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
				state.Next()
			case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
				state.Prev()
			case ev.Key() == tcell.KeyPgDn, ev.Rune() == ' ':
				_, h := screen.Size()
				state.Scroll(h - 2)
			case ev.Key() == tcell.KeyPgUp:
				_, h := screen.Size()
				state.Scroll(2 - h)
			case ev.Key() == tcell.KeyHome, ev.Rune() == 'g':
				state.First()
			case ev.Key() == tcell.KeyEnd, ev.Rune() == 'G':
				state.Last()
			}
		}
		draw()
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
