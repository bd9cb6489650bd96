package algorithm

import (
	"math"

	"github.com/paulmach/orb"
)

// The distance helpers below compute Euclidean distances in plain double
// precision. Unlike OrientationIndex they are not robust: for nearly parallel
// or very long segments, cancellation can make the result inexact in the last
// digits. This is a known precision limitation kept for compatibility;
// callers needing exact classification near degeneracy should use
// OrientationIndex instead.

func distance(a, b orb.Point) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// DistancePointToSegment returns the distance from p to the segment a-b.
func DistancePointToSegment(p, a, b orb.Point) float64 {
	if a == b {
		return distance(p, a)
	}

	len2 := (b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1])
	r := ((p[0]-a[0])*(b[0]-a[0]) + (p[1]-a[1])*(b[1]-a[1])) / len2
	if r <= 0.0 {
		return distance(p, a)
	}
	if 1.0 <= r {
		return distance(p, b)
	}
	return DistancePointToLinePerpendicular(p, a, b)
}

// DistancePointToLinePerpendicular returns the perpendicular distance from p
// to the infinite line through a and b.
func DistancePointToLinePerpendicular(p, a, b orb.Point) float64 {
	len2 := (b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1])
	s := ((a[1]-p[1])*(b[0]-a[0]) - (a[0]-p[0])*(b[1]-a[1])) / len2
	return math.Abs(s) * math.Sqrt(len2)
}

// DistanceSegmentToSegment returns the distance between the segments a-b and
// c-d, zero when they intersect.
func DistanceSegmentToSegment(a, b, c, d orb.Point) float64 {
	if a == b {
		return DistancePointToSegment(a, c, d)
	}
	if c == d {
		return DistancePointToSegment(d, a, b)
	}

	noIntersection := false
	if !boundsIntersect(a, b, c, d) {
		noIntersection = true
	} else {
		denom := (b[0]-a[0])*(d[1]-c[1]) - (b[1]-a[1])*(d[0]-c[0])
		if denom == 0.0 {
			noIntersection = true
		} else {
			rNum := (a[1]-c[1])*(d[0]-c[0]) - (a[0]-c[0])*(d[1]-c[1])
			sNum := (a[1]-c[1])*(b[0]-a[0]) - (a[0]-c[0])*(b[1]-a[1])
			r := rNum / denom
			s := sNum / denom
			if r < 0.0 || 1.0 < r || s < 0.0 || 1.0 < s {
				noIntersection = true
			}
		}
	}

	if noIntersection {
		return math.Min(
			math.Min(DistancePointToSegment(a, c, d), DistancePointToSegment(b, c, d)),
			math.Min(DistancePointToSegment(c, a, b), DistancePointToSegment(d, a, b)))
	}
	return 0.0
}
