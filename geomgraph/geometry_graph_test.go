package geomgraph

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/tdewolff/test"
)

func buildGraph(t *testing.T, argIndex int, g orb.Geometry) *GeometryGraph {
	gg, err := NewGeometryGraph(argIndex, g)
	test.Error(t, err)
	return gg
}

func TestGraphLineString(t *testing.T) {
	gg := buildGraph(t, 0, orb.LineString{{0, 0}, {5, 0}, {5, 5}})
	test.T(t, len(gg.Edges()), 1)
	test.T(t, gg.Edges()[0].Label().Location(0), geom.Interior)
	test.That(t, gg.Edges()[0].Label().IsLine(0))

	bdy := gg.BoundaryNodes()
	test.T(t, len(bdy), 2)
	test.T(t, bdy[0].Coordinate(), orb.Point{0, 0})
	test.T(t, bdy[1].Coordinate(), orb.Point{5, 5})
}

func TestGraphClosedLineString(t *testing.T) {
	// a closed line has no boundary, its endpoint cancels out under mod 2
	gg := buildGraph(t, 0, orb.LineString{{0, 0}, {5, 0}, {5, 5}, {0, 0}})
	test.T(t, len(gg.BoundaryNodes()), 0)
	n := gg.Nodes().Find(orb.Point{0, 0})
	test.That(t, n != nil)
	test.T(t, n.Label().Location(0), geom.Interior)
}

func TestGraphMultiLineStringBoundary(t *testing.T) {
	// three lines sharing an endpoint make it a boundary point, two do not
	two := orb.MultiLineString{
		{{0, 0}, {5, 5}},
		{{5, 5}, {10, 0}},
	}
	gg := buildGraph(t, 0, two)
	test.T(t, gg.Nodes().Find(orb.Point{5, 5}).Label().Location(0), geom.Interior)

	three := orb.MultiLineString{
		{{0, 0}, {5, 5}},
		{{5, 5}, {10, 0}},
		{{5, 5}, {5, 10}},
	}
	gg = buildGraph(t, 0, three)
	test.T(t, gg.Nodes().Find(orb.Point{5, 5}).Label().Location(0), geom.Boundary)
}

func TestGraphPolygon(t *testing.T) {
	// counterclockwise shell, so the interior lies on the left
	gg := buildGraph(t, 1, orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}})
	test.T(t, len(gg.Edges()), 1)

	label := gg.Edges()[0].Label()
	test.That(t, label.IsAreaAt(1))
	test.T(t, label.Location(1), geom.Boundary)
	test.T(t, label.LocationAt(1, Left), geom.Interior)
	test.T(t, label.LocationAt(1, Right), geom.Exterior)

	test.T(t, gg.Nodes().Find(orb.Point{0, 0}).Label().Location(1), geom.Boundary)
}

func TestGraphPolygonWinding(t *testing.T) {
	ccw := buildGraph(t, 0, orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}})
	cw := buildGraph(t, 0, orb.Polygon{{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}})
	test.T(t, ccw.Edges()[0].Label().LocationAt(0, Left), geom.Interior)
	test.T(t, cw.Edges()[0].Label().LocationAt(0, Left), geom.Exterior)
}

func TestGraphPolygonHole(t *testing.T) {
	gg := buildGraph(t, 0, orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
	})
	test.T(t, len(gg.Edges()), 2)

	// the hole ring is clockwise, so the polygon interior lies on its left
	hole := gg.Edges()[1].Label()
	test.T(t, hole.LocationAt(0, Left), geom.Interior)
	test.T(t, hole.LocationAt(0, Right), geom.Exterior)
}

func TestGraphDegenerate(t *testing.T) {
	_, err := NewGeometryGraph(0, orb.LineString{{1, 1}, {1, 1}})
	test.That(t, err != nil)

	_, err = NewGeometryGraph(0, orb.Polygon{{{0, 0}, {1, 1}, {0, 0}}})
	test.That(t, err != nil)

	// repeated points collapse but the geometry stays valid
	gg := buildGraph(t, 0, orb.LineString{{0, 0}, {0, 0}, {5, 5}, {5, 5}})
	test.T(t, gg.Edges()[0].NumPoints(), 2)
}

func TestGraphSelfNodes(t *testing.T) {
	lines := orb.MultiLineString{
		{{0, 0}, {10, 10}},
		{{0, 10}, {10, 0}},
	}
	gg := buildGraph(t, 0, lines)
	var li algorithm.LineIntersector
	gg.ComputeSelfNodes(&li)

	n := gg.Nodes().Find(orb.Point{5, 5})
	test.That(t, n != nil)
	test.T(t, n.Label().Location(0), geom.Interior)

	split := gg.SplitEdges()
	test.T(t, len(split), 4)
	test.Error(t, NewNodingValidator(split).CheckValid())
}

func TestGraphValidatorBowtie(t *testing.T) {
	// a ring crossing itself is not self-noded, the validator must catch it
	bowtie := orb.Polygon{{{0, 0}, {4, 4}, {4, 0}, {0, 4}, {0, 0}}}
	gg := buildGraph(t, 0, bowtie)
	var li algorithm.LineIntersector
	gg.ComputeSelfNodes(&li)

	err := NewNodingValidator(gg.SplitEdges()).CheckValid()
	test.That(t, err != nil)
	nodingErr, ok := err.(*geom.NodingError)
	test.That(t, ok)
	test.T(t, nodingErr.Pt, orb.Point{2, 2})
}

func TestSplitEdges(t *testing.T) {
	gg := buildGraph(t, 0, orb.LineString{{0, 0}, {10, 0}})
	e := gg.Edges()[0]

	var li algorithm.LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{4, -1}, orb.Point{4, 1})
	e.AddIntersections(&li, 0, 0)
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{7, -1}, orb.Point{7, 1})
	e.AddIntersections(&li, 0, 0)

	split := e.SplitEdges()
	test.T(t, len(split), 3)
	test.T(t, split[0].Coordinates(), []orb.Point{{0, 0}, {4, 0}})
	test.T(t, split[1].Coordinates(), []orb.Point{{4, 0}, {7, 0}})
	test.T(t, split[2].Coordinates(), []orb.Point{{7, 0}, {10, 0}})

	// splitting does not consume the recorded intersections
	test.T(t, len(e.Intersections().List()), 2)
}

func TestEdgeEndCompareDirection(t *testing.T) {
	origin := orb.Point{0, 0}
	label := NewNullLabel()
	east := NewEdgeEnd(nil, origin, orb.Point{1, 0}, label)
	north := NewEdgeEnd(nil, origin, orb.Point{0, 1}, label)
	northEast := NewEdgeEnd(nil, origin, orb.Point{1, 1}, label)
	west := NewEdgeEnd(nil, origin, orb.Point{-1, 0}, label)

	test.T(t, east.CompareDirection(north), -1)
	test.T(t, north.CompareDirection(east), 1)
	test.T(t, east.CompareDirection(east), 0)
	test.T(t, northEast.CompareDirection(east), 1)
	test.T(t, northEast.CompareDirection(north), -1)
	test.T(t, west.CompareDirection(northEast), 1)
}
