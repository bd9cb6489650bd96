package relate

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/geomgraph"
)

// Computer derives the intersection matrix of two geometries from their
// topology graphs. The graphs are noded against each other, the resulting
// nodes and edges are labelled with their locations relative to both
// geometries, and the labels are folded into the matrix.
type Computer struct {
	graphs    [2]*geomgraph.GeometryGraph
	li        algorithm.LineIntersector
	ptLocator algorithm.PointLocator

	// the nodes of the combined graph, with edge end bundle stars
	nodes *geomgraph.NodeMap

	isolatedEdges []*geomgraph.Edge
}

// NewComputer returns a computer over the graphs of the two geometries. The
// graphs must have been built with argument indices 0 and 1.
func NewComputer(g0, g1 *geomgraph.GeometryGraph) *Computer {
	return &Computer{
		graphs: [2]*geomgraph.GeometryGraph{g0, g1},
		nodes: geomgraph.NewNodeMap(func(pt orb.Point) *geomgraph.Node {
			return geomgraph.NewNode(pt, NewEdgeEndBundleStar())
		}),
	}
}

// ComputeIM computes the intersection matrix. It returns a NodingError when
// a geometry is invalid in a way that breaks its own noding, and a
// TopologyError when labelling fails.
func (rc *Computer) ComputeIM() (*geom.IntersectionMatrix, error) {
	im := geom.NewIntersectionMatrix()
	// the exteriors always intersect, the plane is unbounded
	im.Set(geom.Exterior, geom.Exterior, 2)

	ga := rc.graphs[0].Geometry()
	gb := rc.graphs[1].Geometry()
	if geom.IsEmpty(ga) || geom.IsEmpty(gb) || !ga.Bound().Intersects(gb.Bound()) {
		rc.computeDisjointIM(im)
		return im, nil
	}

	rc.graphs[0].ComputeSelfNodes(&rc.li)
	rc.graphs[1].ComputeSelfNodes(&rc.li)
	for i := 0; i < 2; i++ {
		if err := geomgraph.NewNodingValidator(rc.graphs[i].SplitEdges()).CheckValid(); err != nil {
			return nil, err
		}
	}

	// compute intersections between the edges of the two geometries; proper
	// intersections are not added as nodes, their effect on the matrix is
	// inferred from the geometries' dimensions instead
	intersector := rc.graphs[0].ComputeEdgeIntersections(rc.graphs[1], &rc.li, false)

	rc.computeIntersectionNodes(0)
	rc.computeIntersectionNodes(1)

	// the labels of the argument graphs' nodes override anything derived
	// from intersections, since they carry boundary information
	rc.copyNodesAndLabels(0)
	rc.copyNodesAndLabels(1)

	rc.labelIsolatedNodes()

	rc.computeProperIntersectionIM(intersector, im)

	var eeBuilder EdgeEndBuilder
	rc.insertEdgeEnds(eeBuilder.ComputeEdgeEnds(rc.graphs[0].Edges()))
	rc.insertEdgeEnds(eeBuilder.ComputeEdgeEnds(rc.graphs[1].Edges()))

	if err := rc.labelNodeEdges(); err != nil {
		return nil, err
	}

	rc.labelIsolatedEdges(0, 1)
	rc.labelIsolatedEdges(1, 0)

	rc.updateIM(im)
	return im, nil
}

// computeDisjointIM fills in the matrix for two geometries whose bounds do
// not overlap: each geometry's interior and boundary lie entirely in the
// other's exterior.
func (rc *Computer) computeDisjointIM(im *geom.IntersectionMatrix) {
	ga := rc.graphs[0].Geometry()
	if !geom.IsEmpty(ga) {
		im.Set(geom.Interior, geom.Exterior, geom.Dimension(ga))
		im.Set(geom.Boundary, geom.Exterior, geom.BoundaryDimension(ga))
	}
	gb := rc.graphs[1].Geometry()
	if !geom.IsEmpty(gb) {
		im.Set(geom.Exterior, geom.Interior, geom.Dimension(gb))
		im.Set(geom.Exterior, geom.Boundary, geom.BoundaryDimension(gb))
	}
}

// computeIntersectionNodes creates nodes for all intersections on the edges
// of the given geometry. A node on the boundary of the geometry counts as one
// more boundary component under the mod-2 rule; any other node is in the
// geometry's interior.
func (rc *Computer) computeIntersectionNodes(argIndex int) {
	for _, e := range rc.graphs[argIndex].Edges() {
		eLoc := e.Label().Location(argIndex)
		for _, ei := range e.Intersections().List() {
			n := rc.nodes.AddNode(ei.Pt)
			if eLoc == geom.Boundary {
				n.SetLabelBoundary(argIndex)
			} else if n.Label().IsNull(argIndex) {
				n.SetLabel(argIndex, geom.Interior)
			}
		}
	}
}

// copyNodesAndLabels copies the nodes of an argument graph into the combined
// graph, with their locations.
func (rc *Computer) copyNodesAndLabels(argIndex int) {
	for _, graphNode := range rc.graphs[argIndex].Nodes().Nodes() {
		rc.nodes.AddNode(graphNode.Coordinate()).SetLabel(argIndex, graphNode.Label().Location(argIndex))
	}
}

// labelIsolatedNodes finds the location of each node that lies on only one of
// the geometries relative to the other.
func (rc *Computer) labelIsolatedNodes() {
	for _, n := range rc.nodes.Nodes() {
		label := n.Label()
		if label.GeometryCount() == 0 {
			panic("bug: node with empty label found")
		}
		if n.IsIsolated() {
			if label.IsNull(0) {
				rc.labelIsolatedNode(n, 0)
			} else {
				rc.labelIsolatedNode(n, 1)
			}
		}
	}
}

func (rc *Computer) labelIsolatedNode(n *geomgraph.Node, targetIndex int) {
	loc := rc.ptLocator.Locate(n.Coordinate(), rc.graphs[targetIndex].Geometry())
	n.Label().SetAllLocations(targetIndex, loc)
}

// computeProperIntersectionIM folds the effect of proper edge intersections
// into the matrix. Proper intersections are not noded, but the dimensions of
// the two geometries determine what a proper crossing of their edges implies.
func (rc *Computer) computeProperIntersectionIM(intersector *geomgraph.SegmentIntersector, im *geom.IntersectionMatrix) {
	dimA := geom.Dimension(rc.graphs[0].Geometry())
	dimB := geom.Dimension(rc.graphs[1].Geometry())
	hasProper := intersector.HasProperIntersection()
	hasProperInterior := intersector.HasProperInteriorIntersection()

	// points have no edges, so only line/area combinations matter
	switch {
	case dimA == geom.DimSurface && dimB == geom.DimSurface:
		// properly intersecting boundaries means the areas properly overlap
		if hasProper {
			im.SetAtLeastPattern("212101212")
		}
	case dimA == geom.DimSurface && dimB == geom.DimCurve:
		// the line's interior properly crossing the area's boundary does not
		// imply the line reaches the area's exterior, another component of
		// the area may contain the rest of the line
		if hasProper {
			im.SetAtLeastPattern("FFF0FFFF2")
		}
		if hasProperInterior {
			im.SetAtLeastPattern("1FFFFF1FF")
		}
	case dimA == geom.DimCurve && dimB == geom.DimSurface:
		if hasProper {
			im.SetAtLeastPattern("F0FFFFFF2")
		}
		if hasProperInterior {
			im.SetAtLeastPattern("1F1FFFFFF")
		}
	case dimA == geom.DimCurve && dimB == geom.DimCurve:
		// only an intersection in the interior of both lines is conclusive;
		// an endpoint of some other line of the geometry may lie on the
		// crossing point
		if hasProperInterior {
			im.SetAtLeastPattern("0FFFFFFFF")
		}
	}
}

func (rc *Computer) insertEdgeEnds(ends []*geomgraph.EdgeEnd) {
	for _, e := range ends {
		rc.nodes.Add(e)
	}
}

func (rc *Computer) labelNodeEdges() error {
	for _, n := range rc.nodes.Nodes() {
		star := n.Edges().(*EdgeEndBundleStar)
		if err := star.ComputeLabelling(&rc.graphs); err != nil {
			return err
		}
	}
	return nil
}

// labelIsolatedEdges finds the location of the edges of one geometry that
// have no intersection with the other geometry. Such an edge lies entirely
// in one location relative to the other geometry, so locating one of its
// points suffices.
func (rc *Computer) labelIsolatedEdges(thisIndex, targetIndex int) {
	for _, e := range rc.graphs[thisIndex].Edges() {
		if !e.IsIsolated() {
			continue
		}
		rc.labelIsolatedEdge(e, targetIndex, rc.graphs[targetIndex].Geometry())
		rc.isolatedEdges = append(rc.isolatedEdges, e)
	}
}

func (rc *Computer) labelIsolatedEdge(e *geomgraph.Edge, targetIndex int, target orb.Geometry) {
	if 0 < geom.Dimension(target) {
		loc := rc.ptLocator.Locate(e.Coordinate(0), target)
		e.Label().SetAllLocations(targetIndex, loc)
	} else {
		// points cannot contain an edge
		e.Label().SetAllLocations(targetIndex, geom.Exterior)
	}
}

// updateIM folds the labels of the isolated edges and all nodes into the
// matrix.
func (rc *Computer) updateIM(im *geom.IntersectionMatrix) {
	for _, e := range rc.isolatedEdges {
		geomgraph.UpdateMatrix(e.Label(), im)
	}
	for _, n := range rc.nodes.Nodes() {
		label := n.Label()
		im.SetAtLeastIfValid(label.Location(0), label.Location(1), 0)
		n.Edges().(*EdgeEndBundleStar).UpdateIM(im)
	}
}
