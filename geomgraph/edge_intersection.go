package geomgraph

import (
	"sort"

	"github.com/paulmach/orb"
)

// EdgeIntersection is a point on an edge where it intersects another edge
// (or itself). The intersection's position along the edge is given by the
// index of the segment it lies on and a distance metric along that segment.
type EdgeIntersection struct {
	Pt           orb.Point
	SegmentIndex int
	Dist         float64
}

func (ei EdgeIntersection) before(segmentIndex int, dist float64) bool {
	return ei.SegmentIndex < segmentIndex || (ei.SegmentIndex == segmentIndex && ei.Dist < dist)
}

// EdgeIntersectionList is the list of intersection points on an edge, kept
// sorted along the edge and with duplicates removed.
type EdgeIntersectionList struct {
	list []EdgeIntersection
}

// Add adds an intersection to the list unless an intersection at the same
// position is already present.
func (eil *EdgeIntersectionList) Add(pt orb.Point, segmentIndex int, dist float64) {
	i := sort.Search(len(eil.list), func(i int) bool {
		return !eil.list[i].before(segmentIndex, dist)
	})
	if i < len(eil.list) && eil.list[i].SegmentIndex == segmentIndex && eil.list[i].Dist == dist {
		return
	}
	eil.list = append(eil.list, EdgeIntersection{})
	copy(eil.list[i+1:], eil.list[i:])
	eil.list[i] = EdgeIntersection{Pt: pt, SegmentIndex: segmentIndex, Dist: dist}
}

// IsIntersection returns true if pt is one of the intersection points in the
// list.
func (eil *EdgeIntersectionList) IsIntersection(pt orb.Point) bool {
	for _, ei := range eil.list {
		if ei.Pt == pt {
			return true
		}
	}
	return false
}

// List returns the intersections in order along the edge.
func (eil *EdgeIntersectionList) List() []EdgeIntersection {
	return eil.list
}

// withEndpoints returns a copy of the list with intersections for the edge's
// endpoints added, which turns the intervals between consecutive entries into
// the split edges of the original edge.
func (eil *EdgeIntersectionList) withEndpoints(e *Edge) []EdgeIntersection {
	maxSegIndex := len(e.pts) - 1
	full := EdgeIntersectionList{list: make([]EdgeIntersection, len(eil.list))}
	copy(full.list, eil.list)
	full.Add(e.pts[0], 0, 0.0)
	full.Add(e.pts[maxSegIndex], maxSegIndex, 0.0)
	return full.list
}
