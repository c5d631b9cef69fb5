package fill

import (
	"math"
	"sort"

	"github.com/jbeda/geom"

	"github.com/chazu/hachure/pkg/diag"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/tessellate"
)

const (
	// hitTolerance collapses intersection hits whose projections along
	// the hatch direction are numerically the same point.
	hitTolerance = 1e-6
	// parallelTolerance rejects boundary edges nearly parallel to the
	// hatch line; their intersection parameter is unstable.
	parallelTolerance = 1e-6
)

// Pattern sweeps a family of parallel hatch lines across the entity's
// resolved boundary and clips each against every boundary edge under
// the even-odd rule. Line spacing comes from the pattern's offset
// vector, falling back to the entity's spacing attribute and then to
// 1. The returned set is empty when the boundary cannot be resolved or
// no line survives clipping; it is never nil.
func Pattern(h *entity.Hatch, sink diag.Sink) *kernel.LineSet {
	lines := &kernel.LineSet{Handle: h.Handle}

	loops := tessellate.Loops(h.Boundary, h.Extrusion.Z)
	part := tessellate.Classify(loops, h.Boundary.Style)
	if part.Outer == nil {
		return lines
	}

	outer, err := resolveRing(part.Outer)
	if err != nil {
		sink.Emit(diag.Warningf(h.Handle, part.Outer.Index, "outer loop failed to stitch: %v", err))
		return lines
	}
	if outer == nil {
		return lines
	}
	// Normalize the outer winding so intersection pairing stays
	// deterministic across authoring tools.
	if signedArea(outer) < 0 {
		reverseRing(outer)
	}

	rings := [][]geom.Coord{outer}
	for _, hole := range part.Holes {
		ring, err := resolveRing(hole)
		if err != nil {
			sink.Emit(diag.Warningf(h.Handle, hole.Index, "hole failed to stitch: %v", err))
			continue
		}
		if ring == nil {
			continue
		}
		rings = append(rings, ring)
	}

	angle := 0.0
	var basePoint geom.Coord
	var offsetLen float64
	if h.Pattern != nil {
		angle = h.Pattern.Angle * math.Pi / 180.0
		basePoint = h.Pattern.Base
		offsetLen = math.Hypot(h.Pattern.Offset.X, h.Pattern.Offset.Y)
	}

	dir := geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
	perp := geom.Coord{X: -dir.Y, Y: dir.X}

	spacing := 1.0
	switch {
	case offsetLen > 0:
		spacing = offsetLen
	case h.Spacing > 0:
		spacing = h.Spacing
	}
	// base anchors the phase of the line family along the
	// perpendicular axis.
	base := geom.DotProduct(basePoint, perp)

	minProj, maxProj := projectionRange(rings, perp)
	for k := int(math.Ceil((minProj - base) / spacing)); ; k++ {
		offset := base + float64(k)*spacing
		if offset >= maxProj {
			break
		}
		clipLine(lines, rings, dir, perp, offset)
	}

	if h.Extrusion.Z < 0 {
		lines.MirrorX()
	}
	return lines
}

// clipLine intersects one infinite hatch line, sitting at offset along
// perp, with every ring edge, then pairs the ordered hits into visible
// spans. A trailing unpaired hit is dropped.
func clipLine(lines *kernel.LineSet, rings [][]geom.Coord, dir, perp geom.Coord, offset float64) {
	var hits []geom.Coord
	for _, ring := range rings {
		for i := range ring {
			p0 := ring[i]
			p1 := ring[(i+1)%len(ring)]
			den := geom.DotProduct(p1.Minus(p0), perp)
			if math.Abs(den) <= parallelTolerance {
				continue
			}
			t := (offset - geom.DotProduct(p0, perp)) / den
			if t < 0 || t > 1 {
				continue
			}
			hits = append(hits, p0.Plus(p1.Minus(p0).Times(t)))
		}
	}
	if len(hits) < 2 {
		return
	}

	sort.Slice(hits, func(a, b int) bool {
		return geom.DotProduct(hits[a], dir) < geom.DotProduct(hits[b], dir)
	})

	// Edges sharing a vertex on the hatch line report it twice; keep
	// the first of each near-duplicate run.
	kept := hits[:1]
	for _, p := range hits[1:] {
		if geom.DotProduct(p, dir)-geom.DotProduct(kept[len(kept)-1], dir) < hitTolerance {
			continue
		}
		kept = append(kept, p)
	}

	for i := 0; i+1 < len(kept); i += 2 {
		a, b := kept[i], kept[i+1]
		lines.Vertices = append(lines.Vertices,
			float32(a.X), float32(a.Y), 0,
			float32(b.X), float32(b.Y), 0,
		)
	}
}

// projectionRange spans every ring vertex along the perpendicular
// axis.
func projectionRange(rings [][]geom.Coord, perp geom.Coord) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			d := geom.DotProduct(p, perp)
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
	}
	return lo, hi
}

// signedArea is the shoelace sum over an implicitly closed ring;
// positive means counterclockwise winding.
func signedArea(ring []geom.Coord) float64 {
	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

func reverseRing(ring []geom.Coord) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
