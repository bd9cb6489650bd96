package geom

import (
	"testing"

	"github.com/tdewolff/test"
)

func setMatrix(t *testing.T, pattern string) *IntersectionMatrix {
	im := NewIntersectionMatrix()
	for i := 0; i < 9; i++ {
		row, col := Location(i/3), Location(i%3)
		switch pattern[i] {
		case 'F':
			im.Set(row, col, DimEmpty)
		default:
			im.Set(row, col, int(pattern[i]-'0'))
		}
	}
	test.T(t, im.String(), pattern)
	return im
}

func TestMatrixString(t *testing.T) {
	im := NewIntersectionMatrix()
	test.T(t, im.String(), "FFFFFFFFF")

	im.Set(Interior, Interior, 2)
	im.Set(Exterior, Exterior, 2)
	test.T(t, im.String(), "2FFFFFFF2")
}

func TestMatrixSetAtLeast(t *testing.T) {
	im := NewIntersectionMatrix()
	im.SetAtLeast(Interior, Interior, 1)
	im.SetAtLeast(Interior, Interior, 0)
	test.T(t, im.Get(Interior, Interior), 1)

	im.SetAtLeastIfValid(Boundary, NoLocation, 1)
	test.T(t, im.Get(Boundary, Interior), DimEmpty)

	im.SetAtLeastPattern("FF2FFFFFF")
	test.T(t, im.String(), "1F2FFFFFF")
}

func TestMatrixMatches(t *testing.T) {
	im := setMatrix(t, "212101212")
	for _, pattern := range []string{"212101212", "TTTTTTTTT", "*********", "T*T***T**"} {
		matches, err := im.Matches(pattern)
		test.Error(t, err)
		test.That(t, matches)
	}
	for _, pattern := range []string{"FTTTTTTTT", "111101212", "012101212"} {
		matches, err := im.Matches(pattern)
		test.Error(t, err)
		test.That(t, !matches)
	}

	_, err := im.Matches("212")
	test.That(t, err != nil)
	_, err = im.Matches("21210121X")
	test.That(t, err != nil)
}

func TestMatrixTransposed(t *testing.T) {
	im := setMatrix(t, "102FF1FF2")
	test.T(t, im.Transposed().String(), "1FF0FF212")
	test.T(t, im.Transposed().Transposed().String(), im.String())
}

func TestMatrixPredicates(t *testing.T) {
	disjoint := setMatrix(t, "FF2FF1212")
	test.That(t, disjoint.IsDisjoint())
	test.That(t, !disjoint.IsIntersects())

	containsPoly := setMatrix(t, "212FF1FF2")
	test.That(t, containsPoly.IsContains())
	test.That(t, containsPoly.IsCovers())
	test.That(t, !containsPoly.IsWithin())
	test.That(t, containsPoly.Transposed().IsWithin())
	test.That(t, containsPoly.Transposed().IsCoveredBy())

	touchesLines := setMatrix(t, "FF1F00102")
	test.That(t, touchesLines.IsTouches(1, 1))
	test.That(t, !touchesLines.IsCrosses(1, 1))

	crossesLines := setMatrix(t, "0F1FF0102")
	test.That(t, crossesLines.IsCrosses(1, 1))
	test.That(t, !crossesLines.IsTouches(1, 1))
	test.That(t, !crossesLines.IsOverlaps(1, 1))

	overlapsLines := setMatrix(t, "1010F0102")
	test.That(t, overlapsLines.IsOverlaps(1, 1))
	test.That(t, !overlapsLines.IsCrosses(1, 1))

	overlapsPolys := setMatrix(t, "212101212")
	test.That(t, overlapsPolys.IsOverlaps(2, 2))
	test.That(t, !overlapsPolys.IsTouches(2, 2))

	equalPolys := setMatrix(t, "2FFF1FFF2")
	test.That(t, equalPolys.IsEquals(2, 2))
	test.That(t, equalPolys.IsContains())
	test.That(t, equalPolys.IsWithin())
	test.That(t, !equalPolys.IsEquals(1, 2))

	// a line on a polygon boundary is covered but not contained
	boundaryLine := setMatrix(t, "FF2101FF2").Transposed()
	test.That(t, boundaryLine.IsCoveredBy())
	test.That(t, !boundaryLine.IsWithin())
}

func TestMatrixTouchesDims(t *testing.T) {
	// points have no boundary, so they can never touch
	pointOnPoint := setMatrix(t, "0FFFFFFF2")
	test.That(t, !pointOnPoint.IsTouches(0, 0))

	pointOnLineEnd := setMatrix(t, "F0FFFF102")
	test.That(t, pointOnLineEnd.IsTouches(0, 1))
	test.That(t, pointOnLineEnd.Transposed().IsTouches(1, 0))
}
