package algorithm

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/tdewolff/test"
)

var squareRing = orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}

func TestLocateInRing(t *testing.T) {
	test.T(t, LocateInRing(orb.Point{5, 5}, squareRing), geom.Interior)
	test.T(t, LocateInRing(orb.Point{15, 5}, squareRing), geom.Exterior)
	test.T(t, LocateInRing(orb.Point{10, 5}, squareRing), geom.Boundary)
	test.T(t, LocateInRing(orb.Point{10, 10}, squareRing), geom.Boundary)
	test.T(t, LocateInRing(orb.Point{5, 0}, squareRing), geom.Boundary)

	// points level with vertices, where ray crossings are easily miscounted
	comb := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {8, 5}, {6, 10}, {4, 5}, {2, 10}, {0, 10}, {0, 0}}
	test.T(t, LocateInRing(orb.Point{5, 5}, comb), geom.Interior)
	test.T(t, LocateInRing(orb.Point{-1, 5}, comb), geom.Exterior)
	test.T(t, LocateInRing(orb.Point{11, 5}, comb), geom.Exterior)
}

func TestIsPointInRing(t *testing.T) {
	test.That(t, IsPointInRing(orb.Point{5, 5}, squareRing))
	test.That(t, !IsPointInRing(orb.Point{15, 5}, squareRing))
}

func TestIsOnLine(t *testing.T) {
	line := []orb.Point{{0, 0}, {10, 0}, {10, 10}}
	test.That(t, IsOnLine(orb.Point{5, 0}, line))
	test.That(t, IsOnLine(orb.Point{10, 0}, line))
	test.That(t, IsOnLine(orb.Point{0, 0}, line))
	test.That(t, !IsOnLine(orb.Point{5, 5}, line))
}

func TestPointLocatorPolygon(t *testing.T) {
	holed := orb.Polygon{
		squareRing,
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}
	var pl PointLocator
	test.T(t, pl.Locate(orb.Point{2, 2}, holed), geom.Interior)
	test.T(t, pl.Locate(orb.Point{5, 5}, holed), geom.Exterior)
	test.T(t, pl.Locate(orb.Point{4, 5}, holed), geom.Boundary)
	test.T(t, pl.Locate(orb.Point{0, 5}, holed), geom.Boundary)
	test.T(t, pl.Locate(orb.Point{11, 5}, holed), geom.Exterior)
}

func TestPointLocatorLineString(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}}
	var pl PointLocator
	test.T(t, pl.Locate(orb.Point{5, 0}, line), geom.Interior)
	test.T(t, pl.Locate(orb.Point{0, 0}, line), geom.Boundary)
	test.T(t, pl.Locate(orb.Point{10, 0}, line), geom.Boundary)
	test.T(t, pl.Locate(orb.Point{5, 1}, line), geom.Exterior)

	closed := orb.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 0}}
	test.T(t, pl.Locate(orb.Point{0, 0}, closed), geom.Interior)
}

func TestPointLocatorMod2(t *testing.T) {
	var pl PointLocator

	// the shared endpoint of two lines is an interior point, of three lines a
	// boundary point
	two := orb.MultiLineString{
		{{0, 0}, {5, 5}},
		{{5, 5}, {10, 0}},
	}
	test.T(t, pl.Locate(orb.Point{5, 5}, two), geom.Interior)

	three := append(two, orb.LineString{{5, 5}, {5, 10}})
	test.T(t, pl.Locate(orb.Point{5, 5}, three), geom.Boundary)
	test.T(t, pl.Locate(orb.Point{0, 0}, three), geom.Boundary)
}

func TestPointLocatorCollection(t *testing.T) {
	coll := orb.Collection{
		orb.Point{20, 20},
		orb.LineString{{0, 0}, {10, 0}},
		orb.Polygon{squareRing},
	}
	var pl PointLocator
	test.T(t, pl.Locate(orb.Point{20, 20}, coll), geom.Interior)
	test.T(t, pl.Locate(orb.Point{5, 5}, coll), geom.Interior)
	test.T(t, pl.Locate(orb.Point{30, 30}, coll), geom.Exterior)
	test.That(t, pl.Intersects(orb.Point{5, 5}, coll))
	test.That(t, !pl.Intersects(orb.Point{30, 30}, coll))
}

func TestLocateInAreas(t *testing.T) {
	poly := orb.Polygon{squareRing}
	test.T(t, LocateInAreas(orb.Point{5, 5}, poly), geom.Interior)
	test.T(t, LocateInAreas(orb.Point{10, 5}, poly), geom.Boundary)
	test.T(t, LocateInAreas(orb.Point{15, 5}, poly), geom.Exterior)

	// non-areal geometries have no inside
	test.T(t, LocateInAreas(orb.Point{5, 0}, orb.LineString{{0, 0}, {10, 0}}), geom.Exterior)

	coll := orb.Collection{orb.LineString{{0, 0}, {10, 0}}, poly}
	test.T(t, LocateInAreas(orb.Point{5, 5}, coll), geom.Interior)
}
