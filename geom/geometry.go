// Package geom provides the topological vocabulary shared by the relationship
// engine: locations, dimensions, and the DE-9IM intersection matrix. The
// geometry data model itself is github.com/paulmach/orb; this package only
// inspects it through a narrow interface and never constructs or mutates
// geometries.
package geom

import (
	"github.com/paulmach/orb"
)

// IsEmpty returns true if the geometry contains no coordinates. A point is
// never empty.
func IsEmpty(g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.Point, orb.Bound:
		return false
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		for _, ls := range g {
			if !IsEmpty(ls) {
				return false
			}
		}
		return true
	case orb.Ring:
		return len(g) == 0
	case orb.Polygon:
		return len(g) == 0 || len(g[0]) == 0
	case orb.MultiPolygon:
		for _, p := range g {
			if !IsEmpty(p) {
				return false
			}
		}
		return true
	case orb.Collection:
		for _, h := range g {
			if !IsEmpty(h) {
				return false
			}
		}
		return true
	}
	panic("bug: unknown geometry type")
}

// IsClosed returns true if the line's last coordinate equals its first.
func IsClosed(ls orb.LineString) bool {
	return 2 < len(ls) && ls[0] == ls[len(ls)-1]
}
