package algorithm

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestLineIntersectorProper(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{2, 2}, orb.Point{0, 2}, orb.Point{2, 0})
	test.That(t, li.HasIntersection())
	test.T(t, li.IntersectionNum(), PointIntersection)
	test.That(t, li.IsProper())
	test.T(t, li.Intersection(0), orb.Point{1, 1})
	test.That(t, li.IsInteriorIntersection())
}

func TestLineIntersectorNone(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1, 1}, orb.Point{2, 2}, orb.Point{3, 3})
	test.That(t, !li.HasIntersection())

	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{0, 1}, orb.Point{1, 1})
	test.That(t, !li.HasIntersection())

	// bounds overlap but the segments do not cross
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{10, 10}, orb.Point{6, 4}, orb.Point{10, 0})
	test.That(t, !li.HasIntersection())
}

func TestLineIntersectorEndpoint(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1, 1}, orb.Point{1, 1}, orb.Point{2, 0})
	test.That(t, li.HasIntersection())
	test.That(t, !li.IsProper())
	test.T(t, li.Intersection(0), orb.Point{1, 1})
	test.That(t, !li.IsInteriorIntersection())

	// an endpoint in the interior of the other segment
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, 0}, orb.Point{1, 1})
	test.That(t, li.HasIntersection())
	test.That(t, !li.IsProper())
	test.T(t, li.Intersection(0), orb.Point{1, 0})
	test.That(t, li.IsInteriorIntersection())
}

func TestLineIntersectorCollinear(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{3, 0}, orb.Point{1, 0}, orb.Point{2, 0})
	test.T(t, li.IntersectionNum(), CollinearIntersection)
	test.That(t, li.IsIntersection(orb.Point{1, 0}))
	test.That(t, li.IsIntersection(orb.Point{2, 0}))

	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, 0}, orb.Point{3, 0})
	test.T(t, li.IntersectionNum(), CollinearIntersection)
	test.That(t, li.IsIntersection(orb.Point{1, 0}))
	test.That(t, li.IsIntersection(orb.Point{2, 0}))

	// collinear segments meeting in a single point
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 0}, orb.Point{2, 0})
	test.T(t, li.IntersectionNum(), PointIntersection)
	test.T(t, li.Intersection(0), orb.Point{1, 0})

	// disjoint collinear segments
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{2, 0}, orb.Point{3, 0})
	test.That(t, !li.HasIntersection())
}

func TestLineIntersectorLargeMagnitude(t *testing.T) {
	var li LineIntersector

	// proper crossing far from the origin
	li.ComputeIntersection(orb.Point{1e15, 1e15}, orb.Point{1e15 + 2, 1e15 + 2}, orb.Point{1e15, 1e15 + 2}, orb.Point{1e15 + 2, 1e15})
	test.That(t, li.HasIntersection())
	test.That(t, li.IsProper())
	test.T(t, li.Intersection(0), orb.Point{1e15 + 1, 1e15 + 1})

	// near-collinear miss: a parallel segment offset by one unit in 1e15
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{1e15, 1e15}, orb.Point{1, 0}, orb.Point{1e15 + 1, 1e15})
	test.That(t, !li.HasIntersection())

	// collinear overlap at large coordinates; the orientation filter cannot
	// certify the zero determinant here, so this runs the exact fallback
	li.ComputeIntersection(orb.Point{1e8, 1e8}, orb.Point{1e8 + 3, 1e8 + 3}, orb.Point{1e8 + 1, 1e8 + 1}, orb.Point{1e8 + 2, 1e8 + 2})
	test.T(t, li.IntersectionNum(), CollinearIntersection)
	test.That(t, li.IsIntersection(orb.Point{1e8 + 1, 1e8 + 1}))
	test.That(t, li.IsIntersection(orb.Point{1e8 + 2, 1e8 + 2}))
}

func TestLineIntersectorPoint(t *testing.T) {
	var li LineIntersector
	li.ComputePointIntersection(orb.Point{1, 1}, orb.Point{0, 0}, orb.Point{2, 2})
	test.That(t, li.HasIntersection())
	test.That(t, li.IsProper())

	li.ComputePointIntersection(orb.Point{0, 0}, orb.Point{0, 0}, orb.Point{2, 2})
	test.That(t, li.HasIntersection())
	test.That(t, !li.IsProper())

	li.ComputePointIntersection(orb.Point{1, 2}, orb.Point{0, 0}, orb.Point{2, 2})
	test.That(t, !li.HasIntersection())
}

func TestEdgeDistance(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{5, -5}, orb.Point{5, 5})
	test.That(t, li.IsProper())
	test.Float(t, li.EdgeDistance(0, 0), 5.0)
	test.Float(t, li.EdgeDistance(1, 0), 5.0)

	li.ComputeIntersection(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{10, 0}, orb.Point{10, 10})
	test.Float(t, li.EdgeDistance(0, 0), 10.0)
	test.Float(t, li.EdgeDistance(1, 0), 0.0)
}
