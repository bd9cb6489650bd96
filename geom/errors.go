package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// TopologyError reports a fatal topological inconsistency found at a
// coordinate. It is not recoverable: the input violates a precondition of the
// algorithm that detected it.
type TopologyError struct {
	Msg string
	Pt  orb.Point
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s [ (%g %g) ]", e.Msg, e.Pt.X(), e.Pt.Y())
}

// NodingError reports an unresolved interior intersection between two
// segments of an edge set that was supposed to be fully noded. It carries the
// intersection coordinate and the endpoints of the offending segments.
type NodingError struct {
	Pt   orb.Point
	Seg0 [2]orb.Point
	Seg1 [2]orb.Point
}

func (e *NodingError) Error() string {
	return fmt.Sprintf("found unnoded intersection at (%g %g) between segment (%g %g)-(%g %g) and segment (%g %g)-(%g %g)",
		e.Pt.X(), e.Pt.Y(),
		e.Seg0[0].X(), e.Seg0[0].Y(), e.Seg0[1].X(), e.Seg0[1].Y(),
		e.Seg1[0].X(), e.Seg1[0].Y(), e.Seg1[1].X(), e.Seg1[1].Y())
}
