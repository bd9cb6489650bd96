package geom

import (
	"fmt"
)

// IntersectionMatrix is a DE-9IM matrix: a 3x3 grid indexed by
// (Interior,Boundary,Exterior) of the first geometry against the same for the
// second, each cell holding the dimension of that intersection (DimEmpty when
// the intersection is empty). Cells are only ever raised via SetAtLeast, so
// folding contributions into the matrix is order-independent.
type IntersectionMatrix struct {
	m [3][3]int
}

// NewIntersectionMatrix returns a matrix with all cells empty.
func NewIntersectionMatrix() *IntersectionMatrix {
	im := &IntersectionMatrix{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			im.m[i][j] = DimEmpty
		}
	}
	return im
}

// Get returns the dimension of the cell at (row, col).
func (im *IntersectionMatrix) Get(row, col Location) int {
	return im.m[row][col]
}

// Set sets the cell at (row, col) to the given dimension.
func (im *IntersectionMatrix) Set(row, col Location, dim int) {
	im.m[row][col] = dim
}

// SetAtLeast raises the cell at (row, col) to at least the given dimension.
func (im *IntersectionMatrix) SetAtLeast(row, col Location, dim int) {
	if im.m[row][col] < dim {
		im.m[row][col] = dim
	}
}

// SetAtLeastIfValid raises the cell at (row, col) to at least the given
// dimension when both locations are known.
func (im *IntersectionMatrix) SetAtLeastIfValid(row, col Location, dim int) {
	if NoLocation < row && NoLocation < col {
		im.SetAtLeast(row, col, dim)
	}
}

// SetAtLeastPattern raises each cell to at least the dimension encoded by the
// corresponding pattern character, where 'F' constrains nothing.
func (im *IntersectionMatrix) SetAtLeastPattern(pattern string) {
	for i := 0; i < len(pattern); i++ {
		row, col := Location(i/3), Location(i%3)
		if c := pattern[i]; c != 'F' {
			im.SetAtLeast(row, col, int(c-'0'))
		}
	}
}

// matchesSymbol returns true if the dimension value satisfies the DE-9IM
// pattern symbol: 'T' any non-empty, 'F' empty, '*' anything, or an exact
// digit '0', '1', '2'.
func matchesSymbol(dim int, sym byte) (bool, error) {
	switch sym {
	case '*':
		return true, nil
	case 'T':
		return 0 <= dim, nil
	case 'F':
		return dim == DimEmpty, nil
	case '0', '1', '2':
		return dim == int(sym-'0'), nil
	}
	return false, fmt.Errorf("invalid DE-9IM pattern symbol %q", sym)
}

// Matches returns true if the matrix matches the 9-character DE-9IM pattern.
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("DE-9IM pattern %q must have length 9", pattern)
	}
	for i := 0; i < 9; i++ {
		ok, err := matchesSymbol(im.m[i/3][i%3], pattern[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func isTrue(dim int) bool {
	return 0 <= dim
}

// IsDisjoint returns true if the two geometries have no points in common.
func (im *IntersectionMatrix) IsDisjoint() bool {
	return im.m[Interior][Interior] == DimEmpty &&
		im.m[Interior][Boundary] == DimEmpty &&
		im.m[Boundary][Interior] == DimEmpty &&
		im.m[Boundary][Boundary] == DimEmpty
}

// IsIntersects returns true if the two geometries have at least one point in
// common.
func (im *IntersectionMatrix) IsIntersects() bool {
	return !im.IsDisjoint()
}

// IsTouches returns true if the geometries share boundary points but no
// interior points. Two points can never touch.
func (im *IntersectionMatrix) IsTouches(dimA, dimB int) bool {
	if dimB < dimA {
		return im.IsTouches(dimB, dimA)
	}
	if dimA == DimPoint && dimB == DimPoint {
		return false
	}
	return im.m[Interior][Interior] == DimEmpty &&
		(isTrue(im.m[Interior][Boundary]) ||
			isTrue(im.m[Boundary][Interior]) ||
			isTrue(im.m[Boundary][Boundary]))
}

// IsCrosses returns true if the geometries have some but not all interior
// points in common, and the shared interior has lower dimension than the
// inputs.
func (im *IntersectionMatrix) IsCrosses(dimA, dimB int) bool {
	if dimA == DimPoint && dimB == DimCurve ||
		dimA == DimPoint && dimB == DimSurface ||
		dimA == DimCurve && dimB == DimSurface {
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Interior][Exterior])
	}
	if dimA == DimCurve && dimB == DimPoint ||
		dimA == DimSurface && dimB == DimPoint ||
		dimA == DimSurface && dimB == DimCurve {
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Exterior][Interior])
	}
	if dimA == DimCurve && dimB == DimCurve {
		return im.m[Interior][Interior] == DimPoint
	}
	return false
}

// IsWithin returns true if the first geometry lies entirely in the second.
func (im *IntersectionMatrix) IsWithin() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimEmpty &&
		im.m[Boundary][Exterior] == DimEmpty
}

// IsContains returns true if the second geometry lies entirely in the first.
func (im *IntersectionMatrix) IsContains() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Exterior][Interior] == DimEmpty &&
		im.m[Exterior][Boundary] == DimEmpty
}

// IsCovers returns true if every point of the second geometry is a point of
// the first.
func (im *IntersectionMatrix) IsCovers() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Exterior][Interior] == DimEmpty &&
		im.m[Exterior][Boundary] == DimEmpty
}

// IsCoveredBy returns true if every point of the first geometry is a point of
// the second.
func (im *IntersectionMatrix) IsCoveredBy() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Interior][Exterior] == DimEmpty &&
		im.m[Boundary][Exterior] == DimEmpty
}

// IsEquals returns true if the geometries are topologically equal: same
// dimension, and each lies entirely in the other.
func (im *IntersectionMatrix) IsEquals(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimEmpty &&
		im.m[Boundary][Exterior] == DimEmpty &&
		im.m[Exterior][Interior] == DimEmpty &&
		im.m[Exterior][Boundary] == DimEmpty
}

// IsOverlaps returns true if the geometries share some but not all points and
// the shared part has the same dimension as the inputs.
func (im *IntersectionMatrix) IsOverlaps(dimA, dimB int) bool {
	if dimA == DimPoint && dimB == DimPoint ||
		dimA == DimSurface && dimB == DimSurface {
		return isTrue(im.m[Interior][Interior]) &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	}
	if dimA == DimCurve && dimB == DimCurve {
		return im.m[Interior][Interior] == DimCurve &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	}
	return false
}

// Transposed returns a new matrix with rows and columns swapped, i.e. the
// matrix of the relationship with the operands exchanged.
func (im *IntersectionMatrix) Transposed() *IntersectionMatrix {
	t := NewIntersectionMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.m[j][i] = im.m[i][j]
		}
	}
	return t
}

// String returns the matrix in the standard 9-character row-major DE-9IM
// notation.
func (im *IntersectionMatrix) String() string {
	buf := make([]byte, 9)
	for i := 0; i < 9; i++ {
		buf[i] = dimensionSymbol(im.m[i/3][i%3])
	}
	return string(buf)
}
