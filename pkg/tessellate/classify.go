package tessellate

import (
	"github.com/chazu/hachure/pkg/entity"
	"github.com/jbeda/geom"
)

// Partition is the classifier's split of a boundary's loops into the
// outer perimeter and the holes punched out of it.
type Partition struct {
	Outer *Loop
	Holes []*Loop
}

// Classify selects the outer loop and the holes for one boundary. The
// sole loop is always the outer; among several, the loop with the
// largest bounding-box footprint wins, width times height standing in
// for polygon area.
//
// Under StyleNormal every non-outer loop is a hole. StyleOutermost
// keeps only loops flagged outermost and not external; the rest are
// ignored.
//
// The partition points into loops; it stays valid as long as the slice
// does.
func Classify(loops []Loop, style entity.HatchStyle) Partition {
	if len(loops) == 0 {
		return Partition{}
	}

	outer := 0
	if len(loops) > 1 {
		best := -1.0
		for i := range loops {
			if a := footprint(loops[i].Bounds); a > best {
				best, outer = a, i
			}
		}
	}

	p := Partition{Outer: &loops[outer]}
	for i := range loops {
		if i == outer {
			continue
		}
		if style == entity.StyleOutermost {
			t := loops[i].Type
			if !t.Outermost() || t.External() {
				continue
			}
		}
		p.Holes = append(p.Holes, &loops[i])
	}
	return p
}

func footprint(r geom.Rect) float64 {
	return r.Width() * r.Height()
}
