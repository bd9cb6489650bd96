package geom

// Location is the topological position of a point relative to a geometry. The
// values double as the row and column indices of an IntersectionMatrix.
type Location int

const (
	Interior Location = 0
	Boundary Location = 1
	Exterior Location = 2

	// NoLocation marks a location that has not been computed yet.
	NoLocation Location = -1
)

func (loc Location) String() string {
	switch loc {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	case NoLocation:
		return "None"
	}
	return "Invalid"
}

// Symbol returns the single-character notation for the location: 'i', 'b', 'e', or '-'.
func (loc Location) Symbol() byte {
	switch loc {
	case Interior:
		return 'i'
	case Boundary:
		return 'b'
	case Exterior:
		return 'e'
	case NoLocation:
		return '-'
	}
	panic("bug: invalid location value")
}
