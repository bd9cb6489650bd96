package geomgraph

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/geom"
)

// NodeMap indexes the nodes of a graph by their point, creating nodes on
// demand through a factory function.
type NodeMap struct {
	nodes   map[orb.Point]*Node
	newNode func(pt orb.Point) *Node
}

// NewNodeMap returns an empty node map. The factory is called to create a
// node the first time a point is added; a nil factory creates plain nodes
// without an edge end star.
func NewNodeMap(newNode func(pt orb.Point) *Node) *NodeMap {
	if newNode == nil {
		newNode = func(pt orb.Point) *Node { return NewNode(pt, nil) }
	}
	return &NodeMap{nodes: map[orb.Point]*Node{}, newNode: newNode}
}

// AddNode returns the node at the given point, creating it if necessary.
func (nm *NodeMap) AddNode(pt orb.Point) *Node {
	n, ok := nm.nodes[pt]
	if !ok {
		n = nm.newNode(pt)
		nm.nodes[pt] = n
	}
	return n
}

// Add inserts an edge end into the star of the node at its origin.
func (nm *NodeMap) Add(e *EdgeEnd) {
	nm.AddNode(e.Coordinate()).Add(e)
}

// Find returns the node at the given point, or nil.
func (nm *NodeMap) Find(pt orb.Point) *Node {
	return nm.nodes[pt]
}

// Nodes returns all nodes ordered by x, then y.
func (nm *NodeMap) Nodes() []*Node {
	nodes := make([]*Node, 0, len(nm.nodes))
	for _, n := range nm.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		pi, pj := nodes[i].pt, nodes[j].pt
		return pi[0] < pj[0] || (pi[0] == pj[0] && pi[1] < pj[1])
	})
	return nodes
}

// BoundaryNodes returns the nodes, ordered by x then y, that lie on the
// boundary of the given geometry.
func (nm *NodeMap) BoundaryNodes(geomIndex int) []*Node {
	var boundary []*Node
	for _, n := range nm.Nodes() {
		if n.label.Location(geomIndex) == geom.Boundary {
			boundary = append(boundary, n)
		}
	}
	return boundary
}
