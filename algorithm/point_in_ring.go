package algorithm

import (
	"github.com/paulmach/orb"

	"github.com/synhershko/nettopologysuite/geom"
)

// LocateInRing determines whether p lies inside, on, or outside the closed
// ring by counting the crossings of the x-positive ray from p with the ring's
// segments. Callers are responsible for any bounding-box pre-filtering.
func LocateInRing(p orb.Point, ring orb.Ring) geom.Location {
	rc := rayCrossing{p: p}
	for i := 1; i < len(ring); i++ {
		rc.countSegment(ring[i], ring[i-1])
		if rc.onSegment {
			return geom.Boundary
		}
	}
	if rc.crossings%2 == 1 {
		return geom.Interior
	}
	return geom.Exterior
}

// IsPointInRing returns true if p lies strictly inside the closed ring. The
// result is unspecified for points exactly on the ring.
func IsPointInRing(p orb.Point, ring orb.Ring) bool {
	return LocateInRing(p, ring) == geom.Interior
}

type rayCrossing struct {
	p         orb.Point
	crossings int
	onSegment bool
}

func (rc *rayCrossing) countSegment(p1, p2 orb.Point) {
	// segments strictly to the left of the point cannot cross the ray
	if p1[0] < rc.p[0] && p2[0] < rc.p[0] {
		return
	}
	if rc.p == p2 {
		rc.onSegment = true
		return
	}
	// horizontal segments are on the ray or miss it entirely
	if p1[1] == rc.p[1] && p2[1] == rc.p[1] {
		minX, maxX := p1[0], p2[0]
		if maxX < minX {
			minX, maxX = maxX, minX
		}
		if minX <= rc.p[0] && rc.p[0] <= maxX {
			rc.onSegment = true
		}
		return
	}
	// count segments that straddle the ray's y, by the exact orientation of
	// the point relative to the upward-directed segment
	if (rc.p[1] < p1[1] && p2[1] <= rc.p[1]) || (rc.p[1] < p2[1] && p1[1] <= rc.p[1]) {
		sign := OrientationIndex(p1, p2, rc.p)
		if sign == Collinear {
			rc.onSegment = true
			return
		}
		if p2[1] < p1[1] {
			sign = -sign
		}
		if 0 < sign {
			rc.crossings++
		}
	}
}

// IsOnLine returns true if p lies on any segment of the line.
func IsOnLine(p orb.Point, line []orb.Point) bool {
	var li LineIntersector
	for i := 1; i < len(line); i++ {
		li.ComputePointIntersection(p, line[i-1], line[i])
		if li.HasIntersection() {
			return true
		}
	}
	return false
}
