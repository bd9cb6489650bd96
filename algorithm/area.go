package algorithm

import (
	"github.com/paulmach/orb"
)

// SignedArea returns the signed area of the ring by the Shoelace formula,
// positive when the ring is oriented clockwise. Rings with fewer than three
// points have zero area. The first coordinate is used as the origin of the
// summation to reduce the magnitude of the partial products.
func SignedArea(ring orb.Ring) float64 {
	if len(ring) < 3 {
		return 0.0
	}
	sum := 0.0
	x0 := ring[0][0]
	for i := 1; i < len(ring)-1; i++ {
		x := ring[i][0] - x0
		y1 := ring[i+1][1]
		y2 := ring[i-1][1]
		sum += x * (y2 - y1)
	}
	return sum / 2.0
}
