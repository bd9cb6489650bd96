package geom

import (
	"github.com/paulmach/orb"
)

// Dimension values of geometries and of DE-9IM matrix cells.
const (
	DimEmpty   = -1 // empty intersection or empty geometry part
	DimPoint   = 0
	DimCurve   = 1
	DimSurface = 2
)

// dimensionSymbol returns the DE-9IM character for a dimension value.
func dimensionSymbol(dim int) byte {
	switch dim {
	case DimEmpty:
		return 'F'
	case DimPoint:
		return '0'
	case DimCurve:
		return '1'
	case DimSurface:
		return '2'
	}
	panic("bug: invalid dimension value")
}

// Dimension returns the topological dimension of a geometry: 0 for points, 1
// for curves, 2 for surfaces. Collections take the largest dimension of their
// members; an empty collection has dimension DimEmpty.
func Dimension(g orb.Geometry) int {
	switch g := g.(type) {
	case orb.Point, orb.MultiPoint:
		return DimPoint
	case orb.LineString, orb.MultiLineString, orb.Ring:
		return DimCurve
	case orb.Polygon, orb.MultiPolygon, orb.Bound:
		return DimSurface
	case orb.Collection:
		dim := DimEmpty
		for _, h := range g {
			if d := Dimension(h); dim < d {
				dim = d
			}
		}
		return dim
	}
	panic("bug: unknown geometry type")
}

// BoundaryDimension returns the dimension of a geometry's boundary: DimEmpty
// for points and closed curves, DimPoint for open curves, DimCurve for
// surfaces.
func BoundaryDimension(g orb.Geometry) int {
	switch g := g.(type) {
	case orb.Point, orb.MultiPoint:
		return DimEmpty
	case orb.LineString:
		if IsClosed(g) {
			return DimEmpty
		}
		return DimPoint
	case orb.MultiLineString:
		for _, ls := range g {
			if !IsClosed(ls) {
				return DimPoint
			}
		}
		return DimEmpty
	case orb.Ring:
		return DimEmpty
	case orb.Polygon, orb.MultiPolygon, orb.Bound:
		return DimCurve
	case orb.Collection:
		dim := DimEmpty
		for _, h := range g {
			if d := BoundaryDimension(h); dim < d {
				dim = d
			}
		}
		return dim
	}
	panic("bug: unknown geometry type")
}
