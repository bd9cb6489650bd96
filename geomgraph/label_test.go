package geomgraph

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/synhershko/nettopologysuite/geom"
)

func TestLabelMerge(t *testing.T) {
	// null locations are filled from the other label, set ones are kept
	l := NewNullLabel()
	l.SetLocation(0, geom.Boundary)
	other := NewLabel(geom.Interior)
	l.Merge(other)
	test.T(t, l.Location(0), geom.Boundary)
	test.T(t, l.Location(1), geom.Interior)

	// merging two line labels does not introduce side locations
	test.That(t, !l.IsArea())

	// merging an area label expands the line label, null sides included
	area := NewAreaLabel(1, geom.Boundary, geom.Interior, geom.Exterior)
	l.Merge(area)
	test.That(t, l.IsAreaAt(1))
	test.T(t, l.Location(1), geom.Interior)
	test.T(t, l.LocationAt(1, Left), geom.Interior)
	test.T(t, l.LocationAt(1, Right), geom.Exterior)
}

func TestLabelSetAllLocationsIfNull(t *testing.T) {
	l := NewAreaNullLabel()
	l.SetLocationAt(0, Left, geom.Interior)

	// every unset position is filled individually
	l.SetAllLocationsIfNull(0, geom.Exterior)
	test.T(t, l.Location(0), geom.Exterior)
	test.T(t, l.LocationAt(0, Left), geom.Interior)
	test.T(t, l.LocationAt(0, Right), geom.Exterior)

	l.SetAllLocationsIfNull(1, geom.Exterior)
	test.T(t, l.Location(1), geom.Exterior)
}
