// Package render materialises island layouts as page nodes, SVG, PNG,
// HTML, JSON and terminal previews.
package render

import (
	"fmt"
	"slices"
	"sync"

	"dconn.dev/islands/internal/layout"
)

// Class names the page stylesheet targets
const (
	IslandClass = "tile-island"
	BlockClass  = "tile-island-block"
)

// Node is one positioned element. Islands are nodes whose children are
// their tiles.
type Node struct {
	ID       string
	Class    string
	Hidden   bool // decorative, excluded from the accessibility tree
	Left     int
	Top      int
	Width    int
	Height   int
	Children []Node
}

// Style returns the node's inline CSS
func (n Node) Style() string {
	return fmt.Sprintf("left: %dpx; top: %dpx; width: %dpx; height: %dpx;", n.Left, n.Top, n.Width, n.Height)
}

// IslandNode builds the node tree for one island
func IslandNode(is layout.Island) Node {
	n := Node{
		ID:       is.ID,
		Class:    IslandClass,
		Hidden:   true,
		Left:     is.Left,
		Top:      is.Top,
		Width:    is.Width,
		Height:   is.Height,
		Children: make([]Node, len(is.Tiles)),
	}
	for i := range is.Tiles {
		left, top, size := is.TileRect(i)
		n.Children[i] = Node{
			Class:  BlockClass,
			Left:   left,
			Top:    top,
			Width:  size,
			Height: size,
		}
	}
	return n
}

// Scene is the container islands are rendered into. It implements
// layout.Surface and is safe for concurrent use.
type Scene struct {
	mu      sync.RWMutex
	islands []layout.Island
	nodes   []Node
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddIsland appends the island's nodes
func (s *Scene) AddIsland(is layout.Island) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.islands = append(s.islands, is)
	s.nodes = append(s.nodes, IslandNode(is))
}

// RemoveIsland drops the island's nodes. Unknown islands are ignored.
func (s *Scene) RemoveIsland(is layout.Island) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.islands, func(x layout.Island) bool { return x.ID == is.ID })
	if i < 0 {
		return
	}
	s.islands = slices.Delete(s.islands, i, i+1)
	s.nodes = slices.Delete(s.nodes, i, i+1)
}

// Nodes returns a snapshot of the island nodes in insertion order
func (s *Scene) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.nodes)
}

// Islands returns a snapshot of the rendered islands
func (s *Scene) Islands() []layout.Island {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.islands)
}

// Len returns the number of rendered islands
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// TileCount returns the number of rendered tile nodes
func (s *Scene) TileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, node := range s.nodes {
		n += len(node.Children)
	}
	return n
}

var _ layout.Surface = (*Scene)(nil)
