package relate

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/geomgraph"
)

// Relate computes the DE-9IM intersection matrix of two geometries. It
// returns an error when a geometry is invalid: degenerate rings or lines, a
// ring crossing itself, or inconsistent topology.
func Relate(a, b orb.Geometry) (*geom.IntersectionMatrix, error) {
	g0, err := geomgraph.NewGeometryGraph(0, a)
	if err != nil {
		return nil, err
	}
	g1, err := geomgraph.NewGeometryGraph(1, b)
	if err != nil {
		return nil, err
	}
	return NewComputer(g0, g1).ComputeIM()
}

// Matches returns true if the intersection matrix of the two geometries
// matches the given DE-9IM pattern, nine symbols from 012TF* in row-major
// order.
func Matches(a, b orb.Geometry, pattern string) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.Matches(pattern)
}

// Intersects returns true if the two geometries have any point in common.
func Intersects(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsIntersects(), nil
}

// Disjoint returns true if the two geometries have no point in common.
func Disjoint(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsDisjoint(), nil
}

// Touches returns true if the geometries intersect on their boundaries only.
// Two points never touch, their boundaries are empty.
func Touches(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsTouches(geom.Dimension(a), geom.Dimension(b)), nil
}

// Crosses returns true if the geometries share some interior points, but
// neither lies in the other: the intersection has a lower dimension than
// both, or for two lines is a point.
func Crosses(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCrosses(geom.Dimension(a), geom.Dimension(b)), nil
}

// Within returns true if every point of a lies in b, and a's interior meets
// b's interior.
func Within(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsWithin(), nil
}

// Contains returns true if every point of b lies in a, and a's interior
// meets b's interior.
func Contains(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsContains(), nil
}

// Covers returns true if every point of b lies in a. Unlike Contains this
// holds when b lies entirely on a's boundary.
func Covers(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCovers(), nil
}

// CoveredBy returns true if every point of a lies in b.
func CoveredBy(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCoveredBy(), nil
}

// Overlaps returns true if the geometries have the same dimension, share
// some but not all of their points, and the shared part has their common
// dimension.
func Overlaps(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsOverlaps(geom.Dimension(a), geom.Dimension(b)), nil
}

// Equals returns true if the geometries cover exactly the same point set.
func Equals(a, b orb.Geometry) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsEquals(geom.Dimension(a), geom.Dimension(b)), nil
}
