package geomgraph

import (
	"github.com/synhershko/nettopologysuite/algorithm"
)

// SegmentIntersector tests segments of graph edges against each other and
// records the intersections found on the edges' intersection lists. It also
// accumulates summary facts about the intersections seen: whether there was
// any, whether there was a proper one, and whether a proper intersection lay
// in the interior of both segments.
type SegmentIntersector struct {
	li             *algorithm.LineIntersector
	includeProper  bool
	recordIsolated bool

	hasIntersection   bool
	hasProper         bool
	hasProperInterior bool

	bdyNodes [2][]*Node
}

// NewSegmentIntersector returns a segment intersector over the given line
// intersector. If includeProper is false, proper intersections are not
// recorded on the edges (they are still detected). If recordIsolated is true,
// intersecting edges are marked as not isolated.
func NewSegmentIntersector(li *algorithm.LineIntersector, includeProper, recordIsolated bool) *SegmentIntersector {
	return &SegmentIntersector{li: li, includeProper: includeProper, recordIsolated: recordIsolated}
}

// SetBoundaryNodes provides the boundary nodes of the two geometries, used to
// recognize proper intersections at boundary points.
func (si *SegmentIntersector) SetBoundaryNodes(bdyNodes0, bdyNodes1 []*Node) {
	si.bdyNodes[0] = bdyNodes0
	si.bdyNodes[1] = bdyNodes1
}

// HasIntersection returns true if any intersection was found.
func (si *SegmentIntersector) HasIntersection() bool {
	return si.hasIntersection
}

// HasProperIntersection returns true if a proper intersection was found.
func (si *SegmentIntersector) HasProperIntersection() bool {
	return si.hasProper
}

// HasProperInteriorIntersection returns true if a proper intersection was
// found in the interior of both segments.
func (si *SegmentIntersector) HasProperInteriorIntersection() bool {
	return si.hasProperInterior
}

// isTrivialIntersection reports an intersection that is simply two adjacent
// segments of the same edge meeting at their shared vertex, or the closing
// point of a ring. Those are not true self-intersections.
func (si *SegmentIntersector) isTrivialIntersection(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.NumPoints() - 1
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) || (segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i0, i1 int) bool {
	return i0-i1 == 1 || i1-i0 == 1
}

// AddIntersections tests a segment of e0 against a segment of e1 and records
// any intersection on both edges.
func (si *SegmentIntersector) AddIntersections(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	si.li.ComputeIntersection(e0.Coordinate(segIndex0), e0.Coordinate(segIndex0+1),
		e1.Coordinate(segIndex1), e1.Coordinate(segIndex1+1))
	if !si.li.HasIntersection() {
		return
	}

	if si.recordIsolated {
		e0.SetIsolated(false)
		e1.SetIsolated(false)
	}
	if !si.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		si.hasIntersection = true
		if si.includeProper || !si.li.IsProper() {
			e0.AddIntersections(si.li, segIndex0, 0)
			e1.AddIntersections(si.li, segIndex1, 1)
		}
		if si.li.IsProper() {
			si.hasProper = true
			if !si.isBoundaryPoint(si.bdyNodes[:]) {
				si.hasProperInterior = true
			}
		}
	}
}

func (si *SegmentIntersector) isBoundaryPoint(bdyNodes [][]*Node) bool {
	for _, nodes := range bdyNodes {
		for _, n := range nodes {
			if si.li.IsIntersection(n.Coordinate()) {
				return true
			}
		}
	}
	return false
}
