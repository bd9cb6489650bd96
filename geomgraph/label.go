// Package geomgraph builds labelled topology graphs of geometries. Each
// geometry contributes edges (for its lineal and areal parts) and nodes (for
// its points, line endpoints, and self-intersections). Every edge and node
// carries a Label recording its topological location relative to each of up
// to two geometries, which is the raw material for computing intersection
// matrices.
package geomgraph

import "github.com/synhershko/nettopologysuite/geom"

// The topological positions a label can describe relative to a graph
// component: on the component itself, or in the areas to its left and right.
const (
	On    = 0
	Left  = 1
	Right = 2
)

// TopologyLocation records the location of a graph component relative to a
// single geometry. For components of lineal or puntal geometries only the On
// location is used; for areal geometries the Left and Right locations record
// which side of the component lies inside the geometry.
type TopologyLocation struct {
	on, left, right geom.Location
	isArea          bool
}

func newTopologyLocation(on geom.Location) TopologyLocation {
	return TopologyLocation{on: on, left: geom.NoLocation, right: geom.NoLocation}
}

func newAreaTopologyLocation(on, left, right geom.Location) TopologyLocation {
	return TopologyLocation{on: on, left: left, right: right, isArea: true}
}

// Get returns the location for the given position.
func (tl TopologyLocation) Get(position int) geom.Location {
	switch position {
	case Left:
		return tl.left
	case Right:
		return tl.right
	}
	return tl.on
}

func (tl TopologyLocation) isNull() bool {
	return tl.on == geom.NoLocation && tl.left == geom.NoLocation && tl.right == geom.NoLocation
}

func (tl TopologyLocation) isAnyNull() bool {
	if !tl.isArea {
		return tl.on == geom.NoLocation
	}
	return tl.on == geom.NoLocation || tl.left == geom.NoLocation || tl.right == geom.NoLocation
}

func (tl *TopologyLocation) set(position int, loc geom.Location) {
	switch position {
	case On:
		tl.on = loc
	case Left:
		tl.left = loc
		tl.isArea = true
	case Right:
		tl.right = loc
		tl.isArea = true
	}
}

func (tl *TopologyLocation) setAll(loc geom.Location) {
	tl.on = loc
	if tl.isArea {
		tl.left = loc
		tl.right = loc
	}
}

// flip swaps the left and right locations.
func (tl *TopologyLocation) flip() {
	if tl.isArea {
		tl.left, tl.right = tl.right, tl.left
	}
}

func (tl TopologyLocation) symbols() string {
	if tl.isArea {
		return string([]byte{tl.left.Symbol(), tl.on.Symbol(), tl.right.Symbol()})
	}
	return string([]byte{tl.on.Symbol()})
}

// Label records the topological location of a graph component relative to the
// two geometries of a relate operation. Geometry indices are 0 and 1.
type Label struct {
	locs [2]TopologyLocation
}

// NewLabel returns a label with the given On location for both geometries.
func NewLabel(on geom.Location) *Label {
	return &Label{locs: [2]TopologyLocation{newTopologyLocation(on), newTopologyLocation(on)}}
}

// NewNullLabel returns a label with no locations set.
func NewNullLabel() *Label {
	return NewLabel(geom.NoLocation)
}

// NewAreaNullLabel returns a label with side positions for both geometries
// but no locations set.
func NewAreaNullLabel() *Label {
	null := newAreaTopologyLocation(geom.NoLocation, geom.NoLocation, geom.NoLocation)
	return &Label{locs: [2]TopologyLocation{null, null}}
}

// NewLineLabel returns a label with the On location set for a single
// geometry.
func NewLineLabel(geomIndex int, on geom.Location) *Label {
	l := NewNullLabel()
	l.locs[geomIndex] = newTopologyLocation(on)
	return l
}

// NewAreaLabel returns a label with On, Left, and Right locations set for a
// single geometry.
func NewAreaLabel(geomIndex int, on, left, right geom.Location) *Label {
	l := NewNullLabel()
	l.locs[geomIndex] = newAreaTopologyLocation(on, left, right)
	return l
}

// Copy returns an independent copy of the label.
func (l *Label) Copy() *Label {
	l2 := *l
	return &l2
}

// Location returns the On location for the given geometry.
func (l *Label) Location(geomIndex int) geom.Location {
	return l.locs[geomIndex].on
}

// LocationAt returns the location for the given geometry and position.
func (l *Label) LocationAt(geomIndex, position int) geom.Location {
	return l.locs[geomIndex].Get(position)
}

// SetLocation sets the On location for the given geometry.
func (l *Label) SetLocation(geomIndex int, loc geom.Location) {
	l.locs[geomIndex].set(On, loc)
}

// SetLocationAt sets the location for the given geometry and position.
func (l *Label) SetLocationAt(geomIndex, position int, loc geom.Location) {
	l.locs[geomIndex].set(position, loc)
}

// SetAllLocations sets every position of the given geometry to loc.
func (l *Label) SetAllLocations(geomIndex int, loc geom.Location) {
	l.locs[geomIndex].setAll(loc)
}

// SetAllLocationsIfNull sets every still unset position of the given geometry
// to loc.
func (l *Label) SetAllLocationsIfNull(geomIndex int, loc geom.Location) {
	tl := &l.locs[geomIndex]
	if tl.on == geom.NoLocation {
		tl.on = loc
	}
	if tl.isArea {
		if tl.left == geom.NoLocation {
			tl.left = loc
		}
		if tl.right == geom.NoLocation {
			tl.right = loc
		}
	}
}

// Flip swaps the left and right locations of both geometries.
func (l *Label) Flip() {
	l.locs[0].flip()
	l.locs[1].flip()
}

// Merge updates any null locations of this label with the corresponding
// locations of lbl.
func (l *Label) Merge(lbl *Label) {
	for i := 0; i < 2; i++ {
		if !l.locs[i].isArea && lbl.locs[i].isArea {
			on := l.locs[i].on
			l.locs[i] = newAreaTopologyLocation(on, geom.NoLocation, geom.NoLocation)
		}
		for _, position := range []int{On, Left, Right} {
			if loc := lbl.locs[i].Get(position); loc != geom.NoLocation && l.locs[i].Get(position) == geom.NoLocation {
				l.locs[i].set(position, loc)
			}
		}
	}
}

// IsNull returns true if no location is set for the given geometry.
func (l *Label) IsNull(geomIndex int) bool {
	return l.locs[geomIndex].isNull()
}

// IsAnyNull returns true if any used location of the given geometry is unset.
func (l *Label) IsAnyNull(geomIndex int) bool {
	return l.locs[geomIndex].isAnyNull()
}

// IsArea returns true if either geometry has side locations.
func (l *Label) IsArea() bool {
	return l.locs[0].isArea || l.locs[1].isArea
}

// IsAreaAt returns true if the given geometry has side locations.
func (l *Label) IsAreaAt(geomIndex int) bool {
	return l.locs[geomIndex].isArea
}

// IsLine returns true if the given geometry has only an On location.
func (l *Label) IsLine(geomIndex int) bool {
	return !l.locs[geomIndex].isArea
}

// GeometryCount returns the number of geometries with a location set.
func (l *Label) GeometryCount() int {
	count := 0
	for i := 0; i < 2; i++ {
		if !l.locs[i].isNull() {
			count++
		}
	}
	return count
}

func (l *Label) String() string {
	return "A:" + l.locs[0].symbols() + " B:" + l.locs[1].symbols()
}

// UpdateMatrix merges the locations of a fully labelled edge into an
// intersection matrix: the edge itself contributes dimension 1, and if the
// label carries sides, the areas on its left and right contribute
// dimension 2.
func UpdateMatrix(l *Label, im *geom.IntersectionMatrix) {
	im.SetAtLeastIfValid(l.LocationAt(0, On), l.LocationAt(1, On), 1)
	if l.IsArea() {
		im.SetAtLeastIfValid(l.LocationAt(0, Left), l.LocationAt(1, Left), 2)
		im.SetAtLeastIfValid(l.LocationAt(0, Right), l.LocationAt(1, Right), 2)
	}
}
