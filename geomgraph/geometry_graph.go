package geomgraph

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
	"github.com/synhershko/nettopologysuite/geom"
)

// DetermineBoundary returns the location of a point through which the given
// number of boundary components pass, following the mod-2 rule.
func DetermineBoundary(boundaryCount int) geom.Location {
	if boundaryCount%2 == 1 {
		return geom.Boundary
	}
	return geom.Interior
}

// GeometryGraph is the labelled topology graph of a single geometry. The
// geometry's index (0 or 1) selects which element of the graph's labels it
// occupies, so that the graphs of two geometries can be merged.
type GeometryGraph struct {
	argIndex int
	g        orb.Geometry
	edges    []*Edge
	nodes    *NodeMap

	boundaryNodes []*Node

	// the mod-2 rule must not be applied to self-intersections between the
	// rings of a multipolygon, which are already known to be boundary points
	useBoundaryDeterminationRule bool
}

// NewGeometryGraph builds the graph of the given geometry. It returns an
// error when the geometry contains a line with fewer than 2 distinct points
// or a ring with fewer than 4.
func NewGeometryGraph(argIndex int, g orb.Geometry) (*GeometryGraph, error) {
	gg := &GeometryGraph{
		argIndex:                     argIndex,
		g:                            g,
		nodes:                        NewNodeMap(nil),
		useBoundaryDeterminationRule: true,
	}
	if err := gg.add(g); err != nil {
		return nil, err
	}
	return gg, nil
}

// Geometry returns the geometry the graph was built from.
func (gg *GeometryGraph) Geometry() orb.Geometry {
	return gg.g
}

// Edges returns the graph's edges.
func (gg *GeometryGraph) Edges() []*Edge {
	return gg.edges
}

// Nodes returns the graph's node map.
func (gg *GeometryGraph) Nodes() *NodeMap {
	return gg.nodes
}

// BoundaryNodes returns the nodes on the boundary of the geometry.
func (gg *GeometryGraph) BoundaryNodes() []*Node {
	if gg.boundaryNodes == nil {
		gg.boundaryNodes = gg.nodes.BoundaryNodes(gg.argIndex)
	}
	return gg.boundaryNodes
}

func (gg *GeometryGraph) add(g orb.Geometry) error {
	if geom.IsEmpty(g) {
		return nil
	}
	switch t := g.(type) {
	case orb.Point:
		gg.addPoint(t)
	case orb.MultiPoint:
		for _, pt := range t {
			gg.addPoint(pt)
		}
	case orb.LineString:
		return gg.addLineString(t)
	case orb.MultiLineString:
		for _, ls := range t {
			if err := gg.addLineString(ls); err != nil {
				return err
			}
		}
	case orb.Ring:
		// a standalone ring is a closed curve without boundary
		return gg.addLineString(orb.LineString(t))
	case orb.Polygon:
		return gg.addPolygon(t)
	case orb.MultiPolygon:
		gg.useBoundaryDeterminationRule = false
		for _, poly := range t {
			if err := gg.addPolygon(poly); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, g2 := range t {
			if err := gg.add(g2); err != nil {
				return err
			}
		}
	case orb.Bound:
		return gg.addPolygon(t.ToPolygon())
	default:
		return fmt.Errorf("unsupported geometry type %T", g)
	}
	return nil
}

func (gg *GeometryGraph) addPoint(pt orb.Point) {
	gg.insertPoint(pt, geom.Interior)
}

func (gg *GeometryGraph) addLineString(ls orb.LineString) error {
	if len(ls) == 0 {
		return nil
	}
	pts := removeRepeatedPoints(ls)
	if len(pts) < 2 {
		return fmt.Errorf("invalid geometry: line with too few distinct points at (%v %v)", pts[0][0], pts[0][1])
	}

	e := NewEdge(pts, NewLineLabel(gg.argIndex, geom.Interior))
	gg.edges = append(gg.edges, e)

	gg.insertBoundaryPoint(pts[0])
	gg.insertBoundaryPoint(pts[len(pts)-1])
	return nil
}

func (gg *GeometryGraph) addPolygon(poly orb.Polygon) error {
	if len(poly) == 0 {
		return nil
	}
	if err := gg.addPolygonRing(poly[0], geom.Exterior, geom.Interior); err != nil {
		return err
	}
	for _, hole := range poly[1:] {
		// holes are opposite to the shell: their interior side is the
		// polygon's exterior
		if err := gg.addPolygonRing(hole, geom.Interior, geom.Exterior); err != nil {
			return err
		}
	}
	return nil
}

// addPolygonRing adds a ring with the given locations on its left and right
// sides, as seen walking the ring clockwise. The ring's actual winding is
// detected and the sides swapped accordingly.
func (gg *GeometryGraph) addPolygonRing(r orb.Ring, cwLeft, cwRight geom.Location) error {
	if len(r) == 0 {
		return nil
	}
	pts := removeRepeatedPoints(r)
	if len(pts) < 4 {
		return fmt.Errorf("invalid geometry: ring with too few distinct points at (%v %v)", pts[0][0], pts[0][1])
	}

	left, right := cwLeft, cwRight
	if algorithm.IsCCW(orb.Ring(pts)) {
		left, right = cwRight, cwLeft
	}
	e := NewEdge(pts, NewAreaLabel(gg.argIndex, geom.Boundary, left, right))
	gg.edges = append(gg.edges, e)

	gg.insertPoint(pts[0], geom.Boundary)
	return nil
}

func (gg *GeometryGraph) insertPoint(pt orb.Point, loc geom.Location) {
	gg.nodes.AddNode(pt).SetLabel(gg.argIndex, loc)
}

// insertBoundaryPoint adds a line endpoint, applying the mod-2 rule to
// determine whether the accumulated endpoints at this location form a
// boundary point.
func (gg *GeometryGraph) insertBoundaryPoint(pt orb.Point) {
	n := gg.nodes.AddNode(pt)
	boundaryCount := 1
	if n.Label().Location(gg.argIndex) == geom.Boundary {
		boundaryCount++
	}
	n.SetLabel(gg.argIndex, DetermineBoundary(boundaryCount))
}

// ComputeSelfNodes finds the self-intersections of the geometry's edges and
// adds them as nodes of the graph. For purely areal geometries intersections
// of a ring with itself are not computed; rings with such intersections are
// invalid and are caught by the noding validator instead.
func (gg *GeometryGraph) ComputeSelfNodes(li *algorithm.LineIntersector) *SegmentIntersector {
	si := NewSegmentIntersector(li, true, false)
	ringBased := gg.isRingsOnly(gg.g)
	for i, e0 := range gg.edges {
		for _, e1 := range gg.edges[i:] {
			if ringBased && e0 == e1 {
				continue
			}
			computeEdgeIntersections(e0, e1, si)
		}
	}
	gg.addSelfIntersectionNodes()
	return si
}

func (gg *GeometryGraph) isRingsOnly(g orb.Geometry) bool {
	switch g.(type) {
	case orb.Ring, orb.Polygon, orb.MultiPolygon, orb.Bound:
		return true
	}
	return false
}

func (gg *GeometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		eLoc := e.Label().Location(gg.argIndex)
		for _, ei := range e.Intersections().List() {
			gg.addSelfIntersectionNode(ei.Pt, eLoc)
		}
	}
}

func (gg *GeometryGraph) addSelfIntersectionNode(pt orb.Point, loc geom.Location) {
	// a self-intersection at an existing boundary node keeps its location
	if gg.isBoundaryNode(pt) {
		return
	}
	if loc == geom.Boundary && gg.useBoundaryDeterminationRule {
		gg.insertBoundaryPoint(pt)
	} else {
		gg.insertPoint(pt, loc)
	}
}

func (gg *GeometryGraph) isBoundaryNode(pt orb.Point) bool {
	n := gg.nodes.Find(pt)
	return n != nil && n.Label().Location(gg.argIndex) == geom.Boundary
}

// ComputeEdgeIntersections finds all intersections between the edges of this
// graph and another geometry's graph, recording them on both graphs' edges.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li *algorithm.LineIntersector, includeProper bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, includeProper, true)
	si.SetBoundaryNodes(gg.BoundaryNodes(), other.BoundaryNodes())
	for _, e0 := range gg.edges {
		for _, e1 := range other.edges {
			computeEdgeIntersections(e0, e1, si)
		}
	}
	return si
}

func computeEdgeIntersections(e0, e1 *Edge, si *SegmentIntersector) {
	for i := 0; i < e0.NumPoints()-1; i++ {
		for j := 0; j < e1.NumPoints()-1; j++ {
			si.AddIntersections(e0, i, e1, j)
		}
	}
}

// SplitEdges returns the edges of the graph split at their intersection
// points.
func (gg *GeometryGraph) SplitEdges() []*Edge {
	var split []*Edge
	for _, e := range gg.edges {
		split = append(split, e.SplitEdges()...)
	}
	return split
}

func removeRepeatedPoints(pts []orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(pts))
	for _, pt := range pts {
		if len(out) == 0 || out[len(out)-1] != pt {
			out = append(out, pt)
		}
	}
	return out
}
