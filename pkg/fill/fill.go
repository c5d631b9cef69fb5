// Package fill turns a hatch entity's boundary into renderable
// geometry: a triangulated polygon-with-holes mesh for solid fills, a
// batch of clipped parallel hatch lines for pattern fills.
//
// Failures stay contained to the entity. An unresolvable loop is
// reported through the injected diagnostic sink and skipped; a
// degenerate boundary is a normal nothing-to-draw outcome and stays
// quiet.
package fill

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/chazu/hachure/pkg/diag"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/tessellate"
)

// Result is the renderable output for one hatch entity. A solid fill
// sets Mesh, a pattern fill sets Lines; both stay nil or empty when the
// boundary could not be resolved.
type Result struct {
	Mesh  *kernel.Mesh
	Lines *kernel.LineSet
}

// Empty reports that the entity produced no geometry and nothing
// should be drawn for it.
func (r *Result) Empty() bool {
	return (r.Mesh == nil || r.Mesh.IsEmpty()) && (r.Lines == nil || r.Lines.IsEmpty())
}

// Build generates fill geometry for one hatch entity, dispatching on
// its fill kind. A nil sink discards diagnostics.
func Build(h *entity.Hatch, tri kernel.Triangulator, sink diag.Sink) (*Result, error) {
	if sink == nil {
		sink = diag.Discard
	}
	switch h.Fill {
	case entity.FillSolid:
		m, err := Solid(h, tri, sink)
		if err != nil {
			return nil, err
		}
		return &Result{Mesh: m}, nil
	case entity.FillPattern:
		return &Result{Lines: Pattern(h, sink)}, nil
	default:
		return nil, fmt.Errorf("fill: hatch %s: unknown fill kind %d", h.Handle, int(h.Fill))
	}
}

// resolveRing stitches one classified loop into a closed ring,
// trimming the path's closing point; rings close implicitly. The
// second return distinguishes a stitch failure (reported by the
// caller) from a ring too degenerate to bound area (skipped quietly).
func resolveRing(l *tessellate.Loop) ([]geom.Coord, error) {
	path, err := tessellate.Stitch(l.Segments)
	if err != nil {
		return nil, err
	}
	if n := len(path); n > 1 && path[0].DistanceFrom(path[n-1]) <= tessellate.StitchTolerance {
		path = path[:n-1]
	}
	if len(path) < 3 {
		return nil, nil
	}
	return path, nil
}
