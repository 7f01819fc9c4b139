package termgrid

import (
	"fmt"
	"io"
	"testing"
)

type benchItem struct {
	Name   string
	Value  int
	Active bool
}

func generateItems(n int) []benchItem {
	items := make([]benchItem, n)
	for i := range items {
		items[i] = benchItem{
			Name:   fmt.Sprintf("Item %d", i),
			Value:  i * 10,
			Active: i%2 == 0,
		}
	}
	return items
}

func createTree(items []benchItem) *Element {
	v := VStack()
	for _, item := range items {
		style := DefaultStyle()
		if item.Active {
			style = style.Bold().Foreground(Green)
		}
		v.Push(HStack().
			Push(NewSpan(item.Name).Style(style), Fill(1)).
			Push(fmt.Sprintf("%d", item.Value), Length(8)), Length(1))
	}
	return El(v)
}

func BenchmarkTreeCreation(b *testing.B) {
	items := generateItems(1000)
	for b.Loop() {
		_ = createTree(items)
	}
}

func BenchmarkFullRender(b *testing.B) {
	items := generateItems(1000)
	rect := NewRect(0, 0, 120, 50)
	cache := NewCache()
	for b.Loop() {
		tree := createTree(items)
		buf := NewBuffer(rect)
		cache.Diff(tree)
		tree.Render(buf, rect, cache.Root())
	}
}

func BenchmarkCachedRender(b *testing.B) {
	tree := createTree(generateItems(1000))
	rect := NewRect(0, 0, 120, 50)
	cache := NewCache()
	cache.Diff(tree)
	for b.Loop() {
		buf := NewBuffer(rect)
		cache.Diff(tree)
		tree.Render(buf, rect, cache.Root())
	}
}

func BenchmarkPaintDiff(b *testing.B) {
	rect := NewRect(0, 0, 120, 50)
	prev, next := NewBuffer(rect), NewBuffer(rect)
	for y := range 50 {
		line := fmt.Sprintf("Line %d: some content here that fills the buffer", y)
		prev.SetString(Vec2{0, y}, line, DefaultStyle())
		next.SetString(Vec2{0, y}, line, DefaultStyle())
	}
	// a few changes per frame
	for y := 0; y < 50; y += 10 {
		next.SetString(Vec2{60, y}, "changed", DefaultStyle().Foreground(Red))
	}

	b.Run("Diff", func(b *testing.B) {
		var p Painter
		for b.Loop() {
			p.PaintDiff(io.Discard, next, prev)
		}
	})
	b.Run("Full", func(b *testing.B) {
		var p Painter
		for b.Loop() {
			p.Paint(io.Discard, next)
		}
	})
}

func BenchmarkWrap(b *testing.B) {
	text := ""
	for i := range 200 {
		text += fmt.Sprintf("word%d ", i)
	}
	for b.Loop() {
		t := TokenizeString(text)
		for t.NextLine(40).Kind != TokenEnd {
		}
	}
}
