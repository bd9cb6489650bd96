package relate

import (
	"github.com/synhershko/nettopologysuite/geomgraph"
)

// EdgeEndBuilder creates the edge ends of edges split at their intersection
// points: for each split point two edge ends arise, one pointing back along
// the edge and one pointing forwards.
type EdgeEndBuilder struct{}

// ComputeEdgeEnds returns the edge ends of all the given edges.
func (eeb EdgeEndBuilder) ComputeEdgeEnds(edges []*geomgraph.Edge) []*geomgraph.EdgeEnd {
	var ends []*geomgraph.EdgeEnd
	for _, e := range edges {
		ends = eeb.computeEdgeEnds(e, ends)
	}
	return ends
}

func (eeb EdgeEndBuilder) computeEdgeEnds(e *geomgraph.Edge, ends []*geomgraph.EdgeEnd) []*geomgraph.EdgeEnd {
	list := splitPoints(e)
	for i, eiCurr := range list {
		var eiPrev, eiNext *geomgraph.EdgeIntersection
		if 0 < i {
			eiPrev = &list[i-1]
		}
		if i+1 < len(list) {
			eiNext = &list[i+1]
		}
		ends = eeb.addEdgeEndForPrev(e, ends, eiCurr, eiPrev)
		ends = eeb.addEdgeEndForNext(e, ends, eiCurr, eiNext)
	}
	return ends
}

// splitPoints returns the edge's intersections with its endpoints added, the
// points the edge is split at.
func splitPoints(e *geomgraph.Edge) []geomgraph.EdgeIntersection {
	var list geomgraph.EdgeIntersectionList
	for _, ei := range e.Intersections().List() {
		list.Add(ei.Pt, ei.SegmentIndex, ei.Dist)
	}
	list.Add(e.Coordinate(0), 0, 0.0)
	list.Add(e.Coordinate(e.NumPoints()-1), e.NumPoints()-1, 0.0)
	return list.List()
}

// addEdgeEndForPrev adds the edge end at eiCurr pointing backwards along the
// edge, towards eiPrev if that lies within the same segment. The edge end
// runs opposite to the edge, so its label is the edge's label with the sides
// flipped.
func (eeb EdgeEndBuilder) addEdgeEndForPrev(e *geomgraph.Edge, ends []*geomgraph.EdgeEnd, eiCurr geomgraph.EdgeIntersection, eiPrev *geomgraph.EdgeIntersection) []*geomgraph.EdgeEnd {
	iPrev := eiCurr.SegmentIndex
	if eiCurr.Dist == 0.0 {
		// there is no previous point at the start of the edge
		if iPrev == 0 {
			return ends
		}
		iPrev--
	}
	pPrev := e.Coordinate(iPrev)
	if eiPrev != nil && iPrev <= eiPrev.SegmentIndex {
		pPrev = eiPrev.Pt
	}
	label := e.Label().Copy()
	label.Flip()
	return append(ends, geomgraph.NewEdgeEnd(e, eiCurr.Pt, pPrev, label))
}

// addEdgeEndForNext adds the edge end at eiCurr pointing forwards along the
// edge, towards eiNext if that lies within the same segment.
func (eeb EdgeEndBuilder) addEdgeEndForNext(e *geomgraph.Edge, ends []*geomgraph.EdgeEnd, eiCurr geomgraph.EdgeIntersection, eiNext *geomgraph.EdgeIntersection) []*geomgraph.EdgeEnd {
	iNext := eiCurr.SegmentIndex + 1
	// there is no next point at the end of the edge
	if e.NumPoints() <= iNext && eiCurr.Dist == 0.0 {
		return ends
	}
	pNext := e.Coordinate(iNext)
	if eiNext != nil && eiNext.SegmentIndex == eiCurr.SegmentIndex {
		pNext = eiNext.Pt
	}
	return append(ends, geomgraph.NewEdgeEnd(e, eiCurr.Pt, pNext, e.Label().Copy()))
}
