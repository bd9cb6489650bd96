package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/tdewolff/argp"

	"github.com/synhershko/nettopologysuite/geom"
	"github.com/synhershko/nettopologysuite/relate"
)

type Relate struct {
	Pattern string `short:"m" default:"" desc:"DE-9IM pattern to match instead of printing the matrix"`
	A       string `index:"0" desc:"First geometry (WKT)"`
	B       string `index:"1" desc:"Second geometry (WKT)"`
}

func main() {
	root := argp.NewCmd(&Relate{}, "DE-9IM topological relationships between two WKT geometries")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Relate) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	a, err := wkt.Unmarshal(cmd.A)
	if err != nil {
		return fmt.Errorf("first geometry: %v", err)
	}
	b, err := wkt.Unmarshal(cmd.B)
	if err != nil {
		return fmt.Errorf("second geometry: %v", err)
	}

	im, err := relate.Relate(a, b)
	if err != nil {
		return err
	}

	if cmd.Pattern != "" {
		matches, err := im.Matches(cmd.Pattern)
		if err != nil {
			return err
		}
		fmt.Println(matches)
		return nil
	}

	fmt.Println(im)
	for _, pred := range predicates(im, a, b) {
		fmt.Println(pred)
	}
	return nil
}

// predicates returns the names of the predicates that hold for the matrix.
func predicates(im *geom.IntersectionMatrix, a, b orb.Geometry) []string {
	dimA, dimB := geom.Dimension(a), geom.Dimension(b)

	var names []string
	add := func(name string, holds bool) {
		if holds {
			names = append(names, name)
		}
	}
	add("disjoint", im.IsDisjoint())
	add("intersects", im.IsIntersects())
	add("touches", im.IsTouches(dimA, dimB))
	add("crosses", im.IsCrosses(dimA, dimB))
	add("within", im.IsWithin())
	add("contains", im.IsContains())
	add("covers", im.IsCovers())
	add("coveredby", im.IsCoveredBy())
	add("overlaps", im.IsOverlaps(dimA, dimB))
	add("equals", im.IsEquals(dimA, dimB))
	return names
}
