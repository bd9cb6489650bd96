package geomgraph

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/algorithm"
	"github.com/synhershko/nettopologysuite/geom"
)

// NodingValidator checks that a set of split edges is fully noded: edges may
// meet only at their endpoints. An intersection in the interior of a segment
// means a node was missed, which happens when the input geometry is invalid,
// for example a ring that crosses itself.
type NodingValidator struct {
	edges []*Edge
}

// NewNodingValidator returns a validator over the given split edges.
func NewNodingValidator(edges []*Edge) *NodingValidator {
	return &NodingValidator{edges: edges}
}

// CheckValid returns a NodingError when two segments intersect anywhere but
// at a shared endpoint.
func (v *NodingValidator) CheckValid() error {
	var li algorithm.LineIntersector
	for i, e0 := range v.edges {
		for _, e1 := range v.edges[i:] {
			if err := v.checkEdgePair(&li, e0, e1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *NodingValidator) checkEdgePair(li *algorithm.LineIntersector, e0, e1 *Edge) error {
	for i := 0; i < e0.NumPoints()-1; i++ {
		for j := 0; j < e1.NumPoints()-1; j++ {
			if e0 == e1 && i == j {
				continue
			}
			li.ComputeIntersection(e0.Coordinate(i), e0.Coordinate(i+1), e1.Coordinate(j), e1.Coordinate(j+1))
			if li.HasIntersection() && li.IsInteriorIntersection() {
				return &geom.NodingError{
					Pt:   li.Intersection(0),
					Seg0: [2]orb.Point{e0.Coordinate(i), e0.Coordinate(i + 1)},
					Seg1: [2]orb.Point{e1.Coordinate(j), e1.Coordinate(j + 1)},
				}
			}
		}
	}
	return nil
}
