// Package relate computes the DE-9IM intersection matrix of two geometries
// and the named spatial predicates defined over it.
package relate

import (
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/geomgraph"
)

// EdgeEndBundle collects the edge ends at a node that point in the same
// direction. Coincident edges of the two geometries end up in one bundle,
// whose label combines the locations of all its members.
type EdgeEndBundle struct {
	rep   *geomgraph.EdgeEnd
	label *geomgraph.Label
	ends  []*geomgraph.EdgeEnd
}

// NewEdgeEndBundle returns a bundle seeded with a single edge end.
func NewEdgeEndBundle(e *geomgraph.EdgeEnd) *EdgeEndBundle {
	b := &EdgeEndBundle{rep: e, label: e.Label().Copy()}
	b.Insert(e)
	return b
}

// Insert adds an edge end to the bundle.
func (b *EdgeEndBundle) Insert(e *geomgraph.EdgeEnd) {
	b.ends = append(b.ends, e)
}

// Label returns the bundle's combined label.
func (b *EdgeEndBundle) Label() *geomgraph.Label {
	return b.label
}

// computeLabel combines the labels of the member edge ends. The On location
// follows the mod-2 rule over the members' boundary locations; the side
// locations take interior over exterior, since a point next to any interior
// member is inside the geometry.
func (b *EdgeEndBundle) computeLabel() {
	isArea := false
	for _, e := range b.ends {
		if e.Label().IsArea() {
			isArea = true
		}
	}
	if isArea {
		b.label = geomgraph.NewAreaNullLabel()
	} else {
		b.label = geomgraph.NewNullLabel()
	}
	for i := 0; i < 2; i++ {
		b.computeLabelOn(i)
		if isArea {
			b.computeLabelSide(i, geomgraph.Left)
			b.computeLabelSide(i, geomgraph.Right)
		}
	}
}

func (b *EdgeEndBundle) computeLabelOn(geomIndex int) {
	boundaryCount := 0
	foundInterior := false
	for _, e := range b.ends {
		switch e.Label().Location(geomIndex) {
		case geom.Boundary:
			boundaryCount++
		case geom.Interior:
			foundInterior = true
		}
	}
	loc := geom.NoLocation
	if foundInterior {
		loc = geom.Interior
	}
	if 0 < boundaryCount {
		loc = geomgraph.DetermineBoundary(boundaryCount)
	}
	b.label.SetLocationAt(geomIndex, geomgraph.On, loc)
}

func (b *EdgeEndBundle) computeLabelSide(geomIndex, side int) {
	for _, e := range b.ends {
		if !e.Label().IsArea() {
			continue
		}
		switch e.Label().LocationAt(geomIndex, side) {
		case geom.Interior:
			b.label.SetLocationAt(geomIndex, side, geom.Interior)
			return
		case geom.Exterior:
			b.label.SetLocationAt(geomIndex, side, geom.Exterior)
		}
	}
}

// updateIM merges the bundle's label into the intersection matrix.
func (b *EdgeEndBundle) updateIM(im *geom.IntersectionMatrix) {
	geomgraph.UpdateMatrix(b.label, im)
}
