package geomgraph

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
)

// EdgeEnd is the end of an edge incident on a node: the node's point together
// with the direction of the edge's first segment leaving it. Edge ends around
// a node compare by the angle of their direction vector, counterclockwise
// from the positive x axis.
type EdgeEnd struct {
	edge     *Edge
	label    *Label
	node     *Node
	p0, p1   orb.Point
	dx, dy   float64
	quadrant int
}

// NewEdgeEnd returns the edge end at p0 in the direction of p1.
func NewEdgeEnd(edge *Edge, p0, p1 orb.Point, label *Label) *EdgeEnd {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	return &EdgeEnd{
		edge:     edge,
		label:    label,
		p0:       p0,
		p1:       p1,
		dx:       dx,
		dy:       dy,
		quadrant: quadrant(dx, dy),
	}
}

// Edge returns the edge this end belongs to.
func (e *EdgeEnd) Edge() *Edge {
	return e.edge
}

// Label returns the edge end's label.
func (e *EdgeEnd) Label() *Label {
	return e.label
}

// Coordinate returns the point of the node the edge end is incident on.
func (e *EdgeEnd) Coordinate() orb.Point {
	return e.p0
}

// Node returns the node the edge end has been inserted at, or nil.
func (e *EdgeEnd) Node() *Node {
	return e.node
}

// CompareDirection compares the directions of two edge ends: -1 if this end
// points clockwise of other, 0 if they point the same way, 1 if
// counterclockwise. Comparing by quadrant first makes the ordering total even
// when the orientation test of near-parallel vectors is inconclusive.
func (e *EdgeEnd) CompareDirection(other *EdgeEnd) int {
	if e.dx == other.dx && e.dy == other.dy {
		return 0
	}
	if e.quadrant != other.quadrant {
		if other.quadrant < e.quadrant {
			return 1
		}
		return -1
	}
	return algorithm.OrientationIndex(other.p0, other.p1, e.p1)
}
