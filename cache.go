package termgrid

import (
	"iter"
	"reflect"
)

// Cache is the per-frame layout cache. It mirrors the shape of the widget
// tree: every element gets a node holding an opaque value its widget may use
// to remember work between frames (typically computed sizes keyed by the
// inputs that produced them).
//
// Nodes live in one slice and refer to their children by index; released
// nodes go on a free list and are reused.
type Cache struct {
	nodes []cacheEntry
	free  []int32
	root  int32

	invalidations int
}

type cacheEntry struct {
	kind     reflect.Type
	local    any
	children []int32
}

// CacheStats describes the cache after the last Diff.
type CacheStats struct {
	Nodes         int // live nodes
	Invalidations int // nodes cleared because their widget type changed
}

// NewCache creates a cache with an empty root.
func NewCache() *Cache {
	c := &Cache{}
	c.root = c.alloc()
	return c
}

func (c *Cache) alloc() int32 {
	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		return idx
	}
	c.nodes = append(c.nodes, cacheEntry{})
	return int32(len(c.nodes) - 1)
}

// release returns idx and its whole subtree to the free list.
func (c *Cache) release(idx int32) {
	e := &c.nodes[idx]
	for _, child := range e.children {
		c.release(child)
	}
	c.nodes[idx] = cacheEntry{children: e.children[:0]}
	c.free = append(c.free, idx)
}

// Root returns the node for the root element.
func (c *Cache) Root() CacheNode {
	return CacheNode{cache: c, idx: c.root}
}

// Diff reconciles the cache with the tree rooted at root, pre-order. A node
// whose recorded widget type differs from its element loses its value and
// all of its descendants. Each node's child list is then grown or truncated
// to match the element's children and the children are visited in order.
// Diffing the same tree twice leaves the cache unchanged.
func (c *Cache) Diff(root *Element) {
	c.invalidations = 0
	c.diff(c.root, root)
}

func (c *Cache) diff(idx int32, el *Element) {
	e := &c.nodes[idx]
	if e.kind != el.kind {
		if e.kind != nil {
			c.invalidations++
		}
		for _, child := range e.children {
			c.release(child)
		}
		e = &c.nodes[idx]
		e.kind = el.kind
		e.local = nil
		e.children = e.children[:0]
	}

	kids := el.Children()
	for n := len(c.nodes[idx].children); n > len(kids); n-- {
		c.release(c.nodes[idx].children[n-1])
		c.nodes[idx].children = c.nodes[idx].children[:n-1]
	}
	for len(c.nodes[idx].children) < len(kids) {
		child := c.alloc()
		c.nodes[idx].children = append(c.nodes[idx].children, child)
	}
	for i, kid := range kids {
		c.diff(c.nodes[idx].children[i], kid)
	}
}

// Clear drops every cached value and node.
func (c *Cache) Clear() {
	c.nodes = c.nodes[:0]
	c.free = c.free[:0]
	c.root = c.alloc()
}

// Stats reports the cache's size and the work done by the last Diff.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Nodes: len(c.nodes) - len(c.free), Invalidations: c.invalidations}
}

// CacheNode is a handle to one node of a Cache. The zero CacheNode is
// detached: it stores nothing and all its children are detached too, so a
// widget can be rendered without a cache.
type CacheNode struct {
	cache *Cache
	idx   int32
}

func (n CacheNode) entry() *cacheEntry {
	if n.cache == nil {
		return nil
	}
	return &n.cache.nodes[n.idx]
}

// Child returns the node of the i-th child element. Outside the diffed range
// it returns a detached node.
func (n CacheNode) Child(i int) CacheNode {
	e := n.entry()
	if e == nil || i < 0 || i >= len(e.children) {
		return CacheNode{}
	}
	return CacheNode{cache: n.cache, idx: e.children[i]}
}

// Children iterates over the child nodes.
func (n CacheNode) Children() iter.Seq2[int, CacheNode] {
	return func(yield func(int, CacheNode) bool) {
		e := n.entry()
		if e == nil {
			return
		}
		for i, idx := range e.children {
			if !yield(i, CacheNode{cache: n.cache, idx: idx}) {
				return
			}
		}
	}
}

// Len returns the number of child nodes.
func (n CacheNode) Len() int {
	if e := n.entry(); e != nil {
		return len(e.children)
	}
	return 0
}

// Kind returns the widget type recorded by the last Diff.
func (n CacheNode) Kind() reflect.Type {
	if e := n.entry(); e != nil {
		return e.kind
	}
	return nil
}

// Local returns the widget's stored value, or nil.
func (n CacheNode) Local() any {
	if e := n.entry(); e != nil {
		return e.local
	}
	return nil
}

// SetLocal stores v for the widget. It is a no-op on a detached node.
func (n CacheNode) SetLocal(v any) {
	if e := n.entry(); e != nil {
		e.local = v
	}
}

// Detached reports whether the node is backed by no cache.
func (n CacheNode) Detached() bool {
	return n.cache == nil
}

// LocalAs returns the node's value if it has type T.
func LocalAs[T any](n CacheNode) (T, bool) {
	v, ok := n.Local().(T)
	return v, ok
}
