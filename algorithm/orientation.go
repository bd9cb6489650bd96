// Package algorithm implements the robust geometric predicates and the line
// segment intersector that the topology graph is built on. The orientation
// predicate is exact; the distance helpers are not (see distance.go).
package algorithm

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
)

// Orientation index values.
const (
	Clockwise        = -1
	Collinear        = 0
	CounterClockwise = 1
)

// OrientationIndex returns the orientation of q relative to the directed line
// from p1 to p2: CounterClockwise if q lies to the left, Clockwise if it lies
// to the right, Collinear if the three points are collinear. The sign of the
// cross-product determinant is computed exactly: a floating-point error-bound
// filter first, and an arbitrary-precision determinant when the filter cannot
// certify the sign.
func OrientationIndex(p1, p2, q orb.Point) int {
	if index := orientationIndexFilter(p1, p2, q); index <= 1 {
		return index
	}
	return int(bigxy.OrientationIndex(coord(p1), coord(p2), coord(q)))
}

func coord(p orb.Point) geom.Coord {
	return geom.Coord{p[0], p[1]}
}

// The error bound below which the double-precision determinant sign cannot be
// trusted near collinearity.
const orientationSafeEpsilon = 1e-15

// orientationIndexFilter computes the determinant sign in double precision
// and returns 2 when the result is within the rounding error bound.
func orientationIndexFilter(pa, pb, pc orb.Point) int {
	detLeft := (pa[0] - pc[0]) * (pb[1] - pc[1])
	detRight := (pa[1] - pc[1]) * (pb[0] - pc[0])
	det := detLeft - detRight

	var detSum float64
	if 0.0 < detLeft {
		if detRight <= 0.0 {
			return signum(det)
		}
		detSum = detLeft + detRight
	} else if detLeft < 0.0 {
		if 0.0 <= detRight {
			return signum(det)
		}
		detSum = -detLeft - detRight
	} else {
		return signum(det)
	}

	errBound := orientationSafeEpsilon * detSum
	if errBound <= det || errBound <= -det {
		return signum(det)
	}
	return 2
}

func signum(x float64) int {
	if 0.0 < x {
		return 1
	}
	if x < 0.0 {
		return -1
	}
	return 0
}

// IsCCW returns true if the ring is oriented counter-clockwise. It finds the
// highest vertex and classifies the turn between its distinct neighbours,
// which is only valid for rings that do not self-cross; for fewer than three
// distinct points it returns false.
func IsCCW(ring orb.Ring) bool {
	nPts := len(ring) - 1
	if nPts < 3 {
		return false
	}

	hiPt := ring[0]
	hiIndex := 0
	for i := 1; i <= nPts; i++ {
		if hiPt[1] < ring[i][1] {
			hiPt = ring[i]
			hiIndex = i
		}
	}

	// previous distinct point
	iPrev := hiIndex
	for {
		iPrev--
		if iPrev < 0 {
			iPrev = nPts
		}
		if ring[iPrev] != hiPt || iPrev == hiIndex {
			break
		}
	}

	// next distinct point
	iNext := hiIndex
	for {
		iNext = (iNext + 1) % nPts
		if ring[iNext] != hiPt || iNext == hiIndex {
			break
		}
	}

	prev, next := ring[iPrev], ring[iNext]
	if prev == hiPt || next == hiPt || prev == next {
		return false // degenerate ring
	}

	disc := OrientationIndex(prev, hiPt, next)
	if disc == Collinear {
		// the three points are collinear at the top: the ring is CCW if the
		// previous point is to the right of the next
		return next[0] < prev[0]
	}
	return 0 < disc
}
