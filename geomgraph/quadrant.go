package geomgraph

// Quadrants of the plane, numbered counterclockwise starting with the
// quadrant of positive x and y. The x and y axes belong to the quadrant they
// bound counterclockwise, so the positive x axis lies in quadrant 0 and the
// positive y axis in quadrant 1.
const (
	quadrantNE = 0
	quadrantNW = 1
	quadrantSW = 2
	quadrantSE = 3
)

// quadrant returns the quadrant containing the direction vector (dx,dy).
func quadrant(dx, dy float64) int {
	if dx == 0.0 && dy == 0.0 {
		panic("bug: zero-length vector has no quadrant")
	}
	if 0.0 <= dx {
		if 0.0 <= dy {
			return quadrantNE
		}
		return quadrantSE
	}
	if 0.0 <= dy {
		return quadrantNW
	}
	return quadrantSW
}
