package geomgraph

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
)

// Edge is a chain of line segments in a geometry graph, carrying a label and
// the list of points where other edges intersect it. An edge is isolated when
// no edge of the other geometry intersects it.
type Edge struct {
	pts        []orb.Point
	label      *Label
	eiList     EdgeIntersectionList
	isIsolated bool
}

// NewEdge returns an edge over the given points. Edges start out isolated
// until an intersection with the other geometry is recorded.
func NewEdge(pts []orb.Point, label *Label) *Edge {
	return &Edge{pts: pts, label: label, isIsolated: true}
}

// NumPoints returns the number of points of the edge.
func (e *Edge) NumPoints() int {
	return len(e.pts)
}

// Coordinate returns the i'th point of the edge.
func (e *Edge) Coordinate(i int) orb.Point {
	return e.pts[i]
}

// Coordinates returns the points of the edge.
func (e *Edge) Coordinates() []orb.Point {
	return e.pts
}

// IsClosed returns true if the edge's first and last points coincide.
func (e *Edge) IsClosed() bool {
	return e.pts[0] == e.pts[len(e.pts)-1]
}

// Label returns the edge's label.
func (e *Edge) Label() *Label {
	return e.label
}

// SetIsolated marks whether the edge is isolated.
func (e *Edge) SetIsolated(isolated bool) {
	e.isIsolated = isolated
}

// IsIsolated returns true if no edge of the other geometry intersects this
// edge.
func (e *Edge) IsIsolated() bool {
	return e.isIsolated
}

// Intersections returns the edge's intersection list.
func (e *Edge) Intersections() *EdgeIntersectionList {
	return &e.eiList
}

// AddIntersections adds all intersection points found by the intersector on
// the given segment of this edge.
func (e *Edge) AddIntersections(li *algorithm.LineIntersector, segmentIndex, geomIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		e.AddIntersection(li, segmentIndex, geomIndex, i)
	}
}

// AddIntersection adds the i'th intersection point found by the intersector
// on the given segment of this edge. An intersection that falls on the far
// vertex of the segment is normalized to the start of the next segment, so
// that an intersection at an interior vertex has a single representation.
func (e *Edge) AddIntersection(li *algorithm.LineIntersector, segmentIndex, geomIndex, intIndex int) {
	pt := li.Intersection(intIndex)
	dist := li.EdgeDistance(geomIndex, intIndex)
	nextSegIndex := segmentIndex + 1
	if nextSegIndex < len(e.pts) && pt == e.pts[nextSegIndex] {
		segmentIndex = nextSegIndex
		dist = 0.0
	}
	e.eiList.Add(pt, segmentIndex, dist)
}

// SplitEdges returns the edges the intersection points split this edge into.
// Each split edge gets a copy of this edge's label. The intersection list
// itself is not modified.
func (e *Edge) SplitEdges() []*Edge {
	list := e.eiList.withEndpoints(e)

	split := make([]*Edge, 0, len(list)-1)
	for i := 0; i+1 < len(list); i++ {
		split = append(split, e.splitEdge(list[i], list[i+1]))
	}
	return split
}

func (e *Edge) splitEdge(ei0, ei1 EdgeIntersection) *Edge {
	npts := ei1.SegmentIndex - ei0.SegmentIndex + 2

	// if the second intersection is at a vertex, the vertex is the endpoint
	// of the split edge and must not be added twice
	useIntPt1 := 0.0 < ei1.Dist || ei1.Pt != e.pts[ei1.SegmentIndex]
	if !useIntPt1 {
		npts--
	}

	pts := make([]orb.Point, 0, npts)
	pts = append(pts, ei0.Pt)
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		pts = append(pts, e.pts[i])
	}
	if useIntPt1 {
		pts = append(pts, ei1.Pt)
	}
	return NewEdge(pts, e.label.Copy())
}
