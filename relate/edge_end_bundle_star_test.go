package relate

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"

	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/geomgraph"
)

func TestEdgeEndBundleStarOrder(t *testing.T) {
	star := NewEdgeEndBundleStar()
	origin := orb.Point{0, 0}
	for _, p := range []orb.Point{{0, 1}, {1, 0}, {0, -1}, {1, 1}, {-1, 0}, {2, 0}} {
		star.Insert(geomgraph.NewEdgeEnd(nil, origin, p, geomgraph.NewLineLabel(0, geom.Interior)))
	}

	// the end towards (2,0) points the same way as (1,0) and joins its bundle
	bundles := star.Bundles()
	test.T(t, len(bundles), 5)
	test.T(t, len(bundles[0].ends), 2)

	// strictly counterclockwise order starting in the first quadrant
	for i := 0; i+1 < len(bundles); i++ {
		test.T(t, bundles[i].rep.CompareDirection(bundles[i+1].rep), -1)
	}
}
