package geomgraph

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/geom"
)

// EdgeEndStar orders the edge ends incident on a node. Plain geometry graphs
// do not need one; graph clients that do supply a node factory creating nodes
// with the star implementation they need.
type EdgeEndStar interface {
	Insert(e *EdgeEnd)
}

// Node is a point of a geometry graph: an endpoint or self-intersection of
// the geometry's edges, or an isolated point. A node is isolated when it has
// a location relative to only one of the two geometries.
type Node struct {
	pt    orb.Point
	label *Label
	star  EdgeEndStar
}

// NewNode returns a node at the given point with an empty label.
func NewNode(pt orb.Point, star EdgeEndStar) *Node {
	return &Node{pt: pt, label: NewNullLabel(), star: star}
}

// Coordinate returns the node's point.
func (n *Node) Coordinate() orb.Point {
	return n.pt
}

// Label returns the node's label.
func (n *Node) Label() *Label {
	return n.label
}

// Edges returns the node's star of incident edge ends, or nil if the node
// was created without one.
func (n *Node) Edges() EdgeEndStar {
	return n.star
}

// Add inserts an edge end incident on this node into the node's star.
func (n *Node) Add(e *EdgeEnd) {
	if n.star == nil {
		panic("bug: adding edge end to node without a star")
	}
	n.star.Insert(e)
	e.node = n
}

// IsIsolated returns true if the node has a location relative to only one
// geometry.
func (n *Node) IsIsolated() bool {
	return n.label.GeometryCount() == 1
}

// SetLabel merges an On location for the given geometry into the node's
// label.
func (n *Node) SetLabel(geomIndex int, onLocation geom.Location) {
	n.label.SetLocation(geomIndex, onLocation)
}

// SetLabelBoundary updates the node's location for the given geometry to
// reflect one more boundary component passing through it, following the
// mod-2 rule: an even number of boundaries cancel out to an interior point.
func (n *Node) SetLabelBoundary(geomIndex int) {
	loc := n.label.Location(geomIndex)
	var newLoc geom.Location
	switch loc {
	case geom.Boundary:
		newLoc = geom.Interior
	case geom.Interior:
		newLoc = geom.Boundary
	default:
		newLoc = geom.Boundary
	}
	n.label.SetLocation(geomIndex, newLoc)
}
