package relate

import (
	"sort"

	"github.com/synhershko/nettopologysuite/algorithm"
	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/geomgraph"
)

// EdgeEndBundleStar is the star of edge end bundles around a node, ordered
// counterclockwise by direction. Edge ends pointing in the same direction
// share a bundle.
type EdgeEndBundleStar struct {
	bundles []*EdgeEndBundle

	// location of the node relative to the areal parts of each geometry,
	// computed at most once
	ptInAreaLocation [2]geom.Location
}

// NewEdgeEndBundleStar returns an empty star.
func NewEdgeEndBundleStar() *EdgeEndBundleStar {
	return &EdgeEndBundleStar{ptInAreaLocation: [2]geom.Location{geom.NoLocation, geom.NoLocation}}
}

// Insert adds an edge end to the bundle with its direction, creating the
// bundle if there is none yet.
func (s *EdgeEndBundleStar) Insert(e *geomgraph.EdgeEnd) {
	i := sort.Search(len(s.bundles), func(i int) bool {
		return 0 <= s.bundles[i].rep.CompareDirection(e)
	})
	if i < len(s.bundles) && s.bundles[i].rep.CompareDirection(e) == 0 {
		s.bundles[i].Insert(e)
		return
	}
	s.bundles = append(s.bundles, nil)
	copy(s.bundles[i+1:], s.bundles[i:])
	s.bundles[i] = NewEdgeEndBundle(e)
}

// Bundles returns the star's bundles in counterclockwise order.
func (s *EdgeEndBundleStar) Bundles() []*EdgeEndBundle {
	return s.bundles
}

// ComputeLabelling completes the labels of all bundles in the star. Side
// locations known from area edges are propagated to the bundles between
// them; locations still unknown after that are found by locating the node
// relative to the areal parts of the geometry.
func (s *EdgeEndBundleStar) ComputeLabelling(graphs *[2]*geomgraph.GeometryGraph) error {
	for _, b := range s.bundles {
		b.computeLabel()
	}
	if err := s.propagateSideLabels(0); err != nil {
		return err
	}
	if err := s.propagateSideLabels(1); err != nil {
		return err
	}

	// an area edge with only a line label for a geometry but a boundary
	// location on it is a dimensional collapse: an area of that geometry
	// collapsed to a line. The node is then not inside the geometry.
	var hasDimensionalCollapseEdge [2]bool
	for _, b := range s.bundles {
		for i := 0; i < 2; i++ {
			if b.label.IsLine(i) && b.label.Location(i) == geom.Boundary {
				hasDimensionalCollapseEdge[i] = true
			}
		}
	}
	for _, b := range s.bundles {
		for i := 0; i < 2; i++ {
			if !b.label.IsAnyNull(i) {
				continue
			}
			loc := geom.Exterior
			if !hasDimensionalCollapseEdge[i] {
				loc = s.locationInArea(i, b, graphs)
			}
			b.label.SetAllLocationsIfNull(i, loc)
		}
	}
	return nil
}

func (s *EdgeEndBundleStar) locationInArea(geomIndex int, b *EdgeEndBundle, graphs *[2]*geomgraph.GeometryGraph) geom.Location {
	if s.ptInAreaLocation[geomIndex] == geom.NoLocation {
		s.ptInAreaLocation[geomIndex] = algorithm.LocateInAreas(b.rep.Coordinate(), graphs[geomIndex].Geometry())
	}
	return s.ptInAreaLocation[geomIndex]
}

// propagateSideLabels fills in unknown side locations of the bundles from the
// known ones: scanning the star counterclockwise, the location between two
// consecutive bundles is constant, so each bundle's right side must match the
// previous bundle's left side.
func (s *EdgeEndBundleStar) propagateSideLabels(geomIndex int) error {
	startLoc := geom.NoLocation
	for _, b := range s.bundles {
		if b.label.IsAreaAt(geomIndex) && b.label.LocationAt(geomIndex, geomgraph.Left) != geom.NoLocation {
			startLoc = b.label.LocationAt(geomIndex, geomgraph.Left)
		}
	}
	// no side locations at all for this geometry
	if startLoc == geom.NoLocation {
		return nil
	}

	currLoc := startLoc
	for _, b := range s.bundles {
		label := b.label
		if label.LocationAt(geomIndex, geomgraph.On) == geom.NoLocation {
			label.SetLocationAt(geomIndex, geomgraph.On, currLoc)
		}
		if !label.IsAreaAt(geomIndex) {
			continue
		}
		leftLoc := label.LocationAt(geomIndex, geomgraph.Left)
		rightLoc := label.LocationAt(geomIndex, geomgraph.Right)
		if rightLoc != geom.NoLocation {
			if rightLoc != currLoc {
				return &geom.TopologyError{Msg: "side location conflict", Pt: b.rep.Coordinate()}
			}
			if leftLoc == geom.NoLocation {
				panic("bug: single null side at " + label.String())
			}
			currLoc = leftLoc
		} else {
			if leftLoc != geom.NoLocation {
				panic("bug: single null side at " + label.String())
			}
			label.SetLocationAt(geomIndex, geomgraph.Right, currLoc)
			label.SetLocationAt(geomIndex, geomgraph.Left, currLoc)
		}
	}
	return nil
}

// UpdateIM merges the labels of all bundles into the intersection matrix.
func (s *EdgeEndBundleStar) UpdateIM(im *geom.IntersectionMatrix) {
	for _, b := range s.bundles {
		b.updateIM(im)
	}
}
