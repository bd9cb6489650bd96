package algorithm

import (
	"math"

	"github.com/paulmach/orb"
)

// The type of intersection between two line segments.
const (
	NoIntersection        = 0 // the segments do not intersect
	PointIntersection     = 1 // the segments intersect in a single point
	CollinearIntersection = 2 // the segments overlap along a collinear stretch
)

// LineIntersector computes the intersection of two line segments, classifying
// it as none, a single point, or a collinear overlap. An intersection is
// proper when it is not merely a shared endpoint of the two segments. The
// classification is exact because it is driven entirely by OrientationIndex;
// only the computed coordinate of a proper crossing is approximate.
//
// The zero value is ready for use, and a single value may be reused across
// any number of ComputeIntersection calls.
type LineIntersector struct {
	result     int
	inputLines [2][2]orb.Point
	intPt      [2]orb.Point
	isProperV  bool
}

// ComputeIntersection computes the intersection between the segments p1-p2
// and q1-q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 orb.Point) {
	li.inputLines[0][0], li.inputLines[0][1] = p1, p2
	li.inputLines[1][0], li.inputLines[1][1] = q1, q2
	li.result = li.computeIntersect(p1, p2, q1, q2)
}

// ComputePointIntersection computes the intersection between the point p and
// the segment p1-p2.
func (li *LineIntersector) ComputePointIntersection(p, p1, p2 orb.Point) {
	li.isProperV = false
	li.result = NoIntersection
	// a bounds check first, it is cheaper than the orientation test
	if !boundsContain(p1, p2, p) {
		return
	}
	if OrientationIndex(p1, p2, p) == Collinear && OrientationIndex(p2, p1, p) == Collinear {
		li.isProperV = p != p1 && p != p2
		li.intPt[0] = p
		li.result = PointIntersection
	}
}

// HasIntersection returns true if the last computed pair intersects.
func (li *LineIntersector) HasIntersection() bool {
	return li.result != NoIntersection
}

// IntersectionNum returns the number of intersection points (0, 1, or 2 for a
// collinear overlap).
func (li *LineIntersector) IntersectionNum() int {
	return li.result
}

// Intersection returns the i'th intersection point.
func (li *LineIntersector) Intersection(i int) orb.Point {
	return li.intPt[i]
}

// IsIntersection returns true if pt is one of the intersection points.
func (li *LineIntersector) IsIntersection(pt orb.Point) bool {
	for i := 0; i < li.result; i++ {
		if li.intPt[i] == pt {
			return true
		}
	}
	return false
}

// IsProper returns true if the intersection is a single point that is not a
// shared endpoint of the two segments.
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProperV
}

// IsInteriorIntersection returns true if an intersection point lies in the
// interior of either input segment, i.e. is not an endpoint of it.
func (li *LineIntersector) IsInteriorIntersection() bool {
	return li.isInteriorIntersectionOf(0) || li.isInteriorIntersectionOf(1)
}

func (li *LineIntersector) isInteriorIntersectionOf(inputLineIndex int) bool {
	for i := 0; i < li.result; i++ {
		if li.intPt[i] != li.inputLines[inputLineIndex][0] && li.intPt[i] != li.inputLines[inputLineIndex][1] {
			return true
		}
	}
	return false
}

// EdgeDistance returns the distance of the i'th intersection point along the
// given input segment, in the ordering metric used for edge intersection
// lists.
func (li *LineIntersector) EdgeDistance(segIndex, intIndex int) float64 {
	return computeEdgeDistance(li.intPt[intIndex], li.inputLines[segIndex][0], li.inputLines[segIndex][1])
}

// computeEdgeDistance returns a distance metric of p along the segment p0-p1.
// It is not the true Euclidean distance, only a measure that sorts
// consistently: the larger ordinate delta is used so that segments parallel
// to an axis still order correctly.
func computeEdgeDistance(p, p0, p1 orb.Point) float64 {
	dx := math.Abs(p1[0] - p0[0])
	dy := math.Abs(p1[1] - p0[1])

	dist := -1.0
	if p == p0 {
		dist = 0.0
	} else if p == p1 {
		if dy < dx {
			dist = dx
		} else {
			dist = dy
		}
	} else {
		pdx := math.Abs(p[0] - p0[0])
		pdy := math.Abs(p[1] - p0[1])
		if dy < dx {
			dist = pdx
		} else {
			dist = pdy
		}
		if dist == 0.0 {
			dist = math.Max(pdx, pdy)
		}
	}
	if dist == 0.0 && p != p0 {
		panic("bug: bad edge distance calculation")
	}
	return dist
}

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 orb.Point) int {
	li.isProperV = false

	// a bounds check first, it is cheaper than the orientation tests
	if !boundsIntersect(p1, p2, q1, q2) {
		return NoIntersection
	}

	// if both endpoints of a segment lie on the same side of the other
	// segment, the segments do not intersect
	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if (0 < pq1 && 0 < pq2) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}
	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if (0 < qp1 && 0 < qp2) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	if pq1 == Collinear && pq2 == Collinear && qp1 == Collinear && qp2 == Collinear {
		return li.computeCollinearIntersection(p1, p2, q1, q2)
	}

	// a single intersection point; when it is an endpoint, copy the endpoint
	// exactly rather than computing it, for robustness
	if pq1 == Collinear || pq2 == Collinear || qp1 == Collinear || qp2 == Collinear {
		switch {
		case p1 == q1 || p1 == q2:
			li.intPt[0] = p1
		case p2 == q1 || p2 == q2:
			li.intPt[0] = p2
		case pq1 == Collinear:
			li.intPt[0] = q1
		case pq2 == Collinear:
			li.intPt[0] = q2
		case qp1 == Collinear:
			li.intPt[0] = p1
		default:
			li.intPt[0] = p2
		}
	} else {
		li.isProperV = true
		li.intPt[0] = intersectionPoint(p1, p2, q1, q2)
	}
	return PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 orb.Point) int {
	q1InP := boundsContain(p1, p2, q1)
	q2InP := boundsContain(p1, p2, q2)
	p1InQ := boundsContain(q1, q2, p1)
	p2InQ := boundsContain(q1, q2, p2)

	switch {
	case p1InQ && p2InQ:
		li.intPt[0], li.intPt[1] = p1, p2
		return CollinearIntersection
	case q1InP && q2InP:
		li.intPt[0], li.intPt[1] = q1, q2
		return CollinearIntersection
	case q1InP && p1InQ:
		li.intPt[0], li.intPt[1] = q1, p1
		return collinearOrPoint(q1, p1, q2InP, p2InQ)
	case q1InP && p2InQ:
		li.intPt[0], li.intPt[1] = q1, p2
		return collinearOrPoint(q1, p2, q2InP, p1InQ)
	case q2InP && p1InQ:
		li.intPt[0], li.intPt[1] = q2, p1
		return collinearOrPoint(q2, p1, q1InP, p2InQ)
	case q2InP && p2InQ:
		li.intPt[0], li.intPt[1] = q2, p2
		return collinearOrPoint(q2, p2, q1InP, p1InQ)
	}
	return NoIntersection
}

// collinearOrPoint distinguishes a collinear overlap that collapses to a
// single shared point from a true overlap stretch.
func collinearOrPoint(pt0, pt1 orb.Point, otherIn0, otherIn1 bool) int {
	if pt0 == pt1 && !otherIn0 && !otherIn1 {
		return PointIntersection
	}
	return CollinearIntersection
}

// intersectionPoint computes the coordinate of a proper crossing. The inputs
// are normalized around the centre of their common extent to keep precision,
// and the homogeneous-coordinate result is checked against the segment
// bounds; if rounding pushed it outside, the endpoint closest to all four
// input endpoints is used instead.
func intersectionPoint(p1, p2, q1, q2 orb.Point) orb.Point {
	n := normalizeToBoundCentre(&p1, &p2, &q1, &q2)
	pt, ok := hcoordsIntersection(p1, p2, q1, q2)
	if !ok {
		return centralEndpoint(
			orb.Point{p1[0] + n[0], p1[1] + n[1]}, orb.Point{p2[0] + n[0], p2[1] + n[1]},
			orb.Point{q1[0] + n[0], q1[1] + n[1]}, orb.Point{q2[0] + n[0], q2[1] + n[1]})
	}
	if !boundsContain(p1, p2, pt) || !boundsContain(q1, q2, pt) {
		return centralEndpoint(
			orb.Point{p1[0] + n[0], p1[1] + n[1]}, orb.Point{p2[0] + n[0], p2[1] + n[1]},
			orb.Point{q1[0] + n[0], q1[1] + n[1]}, orb.Point{q2[0] + n[0], q2[1] + n[1]})
	}
	return orb.Point{pt[0] + n[0], pt[1] + n[1]}
}

// hcoordsIntersection intersects two lines using homogeneous coordinates.
// It fails for (near-)parallel lines, where the computation overflows.
func hcoordsIntersection(p1, p2, q1, q2 orb.Point) (orb.Point, bool) {
	px := p1[1] - p2[1]
	py := p2[0] - p1[0]
	pw := p1[0]*p2[1] - p2[0]*p1[1]

	qx := q1[1] - q2[1]
	qy := q2[0] - q1[0]
	qw := q1[0]*q2[1] - q2[0]*q1[1]

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	xInt := x / w
	yInt := y / w
	if math.IsNaN(xInt) || math.IsNaN(yInt) || math.IsInf(xInt, 0) || math.IsInf(yInt, 0) {
		return orb.Point{}, false
	}
	return orb.Point{xInt, yInt}, true
}

// centralEndpoint returns the input endpoint closest to the centroid of all
// four endpoints, a reasonable approximation when the exact intersection
// cannot be computed.
func centralEndpoint(p1, p2, q1, q2 orb.Point) orb.Point {
	centre := orb.Point{(p1[0] + p2[0] + q1[0] + q2[0]) / 4.0, (p1[1] + p2[1] + q1[1] + q2[1]) / 4.0}
	best := p1
	bestDist := distance(centre, p1)
	for _, pt := range []orb.Point{p2, q1, q2} {
		if d := distance(centre, pt); d < bestDist {
			best = pt
			bestDist = d
		}
	}
	return best
}

// normalizeToBoundCentre translates the four endpoints so the centre of the
// overlap of the two segment bounds moves to the origin, removing common
// significant digits from the intersection computation. It returns the
// applied offset.
func normalizeToBoundCentre(p1, p2, q1, q2 *orb.Point) orb.Point {
	minX0, maxX0 := math.Min(p1[0], p2[0]), math.Max(p1[0], p2[0])
	minY0, maxY0 := math.Min(p1[1], p2[1]), math.Max(p1[1], p2[1])
	minX1, maxX1 := math.Min(q1[0], q2[0]), math.Max(q1[0], q2[0])
	minY1, maxY1 := math.Min(q1[1], q2[1]), math.Max(q1[1], q2[1])

	intMidX := (math.Max(minX0, minX1) + math.Min(maxX0, maxX1)) / 2.0
	intMidY := (math.Max(minY0, minY1) + math.Min(maxY0, maxY1)) / 2.0

	for _, pt := range []*orb.Point{p1, p2, q1, q2} {
		pt[0] -= intMidX
		pt[1] -= intMidY
	}
	return orb.Point{intMidX, intMidY}
}

// boundsIntersect returns true if the bounding boxes of segments a-b and c-d
// overlap.
func boundsIntersect(a, b, c, d orb.Point) bool {
	return math.Min(c[0], d[0]) <= math.Max(a[0], b[0]) &&
		math.Min(a[0], b[0]) <= math.Max(c[0], d[0]) &&
		math.Min(c[1], d[1]) <= math.Max(a[1], b[1]) &&
		math.Min(a[1], b[1]) <= math.Max(c[1], d[1])
}

// boundsContain returns true if p lies within the bounding box of the segment
// a-b.
func boundsContain(a, b, p orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}
