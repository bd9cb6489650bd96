package algorithm

import (
	"github.com/paulmach/orb"
	"github.com/synhershko/nettopologysuite/geom"
)

// PointLocator determines the topological location (interior, boundary,
// exterior) of a point relative to a geometry. For collections the boundary
// follows the mod-2 rule: a point is on the boundary when it lies on the
// boundary of an odd number of components.
//
// The zero value is ready for use.
type PointLocator struct {
	isIn          bool
	numBoundaries int
}

// Intersects returns true if the point lies in the interior or on the
// boundary of the geometry.
func (pl *PointLocator) Intersects(p orb.Point, g orb.Geometry) bool {
	return pl.Locate(p, g) != geom.Exterior
}

// Locate returns the location of the point relative to the geometry.
func (pl *PointLocator) Locate(p orb.Point, g orb.Geometry) geom.Location {
	if geom.IsEmpty(g) {
		return geom.Exterior
	}
	switch t := g.(type) {
	case orb.Point:
		return locateOnPoint(p, t)
	case orb.LineString:
		return locateOnLineString(p, t)
	case orb.Ring:
		return locateOnRing(p, t)
	case orb.Polygon:
		return locateInPolygon(p, t)
	}

	pl.isIn = false
	pl.numBoundaries = 0
	pl.computeLocation(p, g)
	if pl.numBoundaries%2 == 1 {
		return geom.Boundary
	}
	if 0 < pl.numBoundaries || pl.isIn {
		return geom.Interior
	}
	return geom.Exterior
}

func (pl *PointLocator) computeLocation(p orb.Point, g orb.Geometry) {
	switch t := g.(type) {
	case orb.Point:
		pl.updateLocation(locateOnPoint(p, t))
	case orb.LineString:
		pl.updateLocation(locateOnLineString(p, t))
	case orb.Ring:
		pl.updateLocation(locateOnRing(p, t))
	case orb.Polygon:
		pl.updateLocation(locateInPolygon(p, t))
	case orb.MultiPoint:
		for _, pt := range t {
			pl.updateLocation(locateOnPoint(p, pt))
		}
	case orb.MultiLineString:
		for _, ls := range t {
			pl.updateLocation(locateOnLineString(p, ls))
		}
	case orb.MultiPolygon:
		for _, poly := range t {
			pl.updateLocation(locateInPolygon(p, poly))
		}
	case orb.Collection:
		for _, g2 := range t {
			pl.computeLocation(p, g2)
		}
	case orb.Bound:
		pl.updateLocation(locateInPolygon(p, t.ToPolygon()))
	}
}

func (pl *PointLocator) updateLocation(loc geom.Location) {
	switch loc {
	case geom.Interior:
		pl.isIn = true
	case geom.Boundary:
		pl.numBoundaries++
	}
}

func locateOnPoint(p, pt orb.Point) geom.Location {
	if pt == p {
		return geom.Interior
	}
	return geom.Exterior
}

func locateOnLineString(p orb.Point, ls orb.LineString) geom.Location {
	if len(ls) < 2 {
		return geom.Exterior
	}
	if !geom.IsClosed(ls) && (p == ls[0] || p == ls[len(ls)-1]) {
		return geom.Boundary
	}
	if IsOnLine(p, []orb.Point(ls)) {
		return geom.Interior
	}
	return geom.Exterior
}

// locateOnRing treats the ring as a closed curve without boundary, so a point
// on the ring is in its interior.
func locateOnRing(p orb.Point, r orb.Ring) geom.Location {
	if len(r) < 2 {
		return geom.Exterior
	}
	if IsOnLine(p, []orb.Point(r)) {
		return geom.Interior
	}
	return geom.Exterior
}

func locateInPolygon(p orb.Point, poly orb.Polygon) geom.Location {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return geom.Exterior
	}
	shellLoc := LocateInRing(p, poly[0])
	if shellLoc != geom.Interior {
		return shellLoc
	}
	for _, hole := range poly[1:] {
		holeLoc := LocateInRing(p, hole)
		if holeLoc == geom.Interior {
			return geom.Exterior
		}
		if holeLoc == geom.Boundary {
			return geom.Boundary
		}
	}
	return geom.Interior
}

// LocateInAreas returns the location of the point relative to the areal
// components of the geometry only. Puntal and lineal components are ignored,
// so for a geometry without areal components the result is always exterior.
func LocateInAreas(p orb.Point, g orb.Geometry) geom.Location {
	switch t := g.(type) {
	case orb.Polygon:
		return locateInPolygon(p, t)
	case orb.MultiPolygon:
		for _, poly := range t {
			if loc := locateInPolygon(p, poly); loc != geom.Exterior {
				return loc
			}
		}
	case orb.Collection:
		for _, g2 := range t {
			if loc := LocateInAreas(p, g2); loc != geom.Exterior {
				return loc
			}
		}
	case orb.Bound:
		return locateInPolygon(p, t.ToPolygon())
	}
	return geom.Exterior
}
