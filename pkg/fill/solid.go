package fill

import (
	"fmt"

	"github.com/chazu/hachure/pkg/diag"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/tessellate"
)

// Solid meshes the interior of the entity's boundary. An outer loop
// that fails to stitch abandons the whole fill; a hole that fails is
// omitted and the fill proceeds without it. Both are reported through
// the sink. A negative extrusion normal mirrors the finished mesh
// across the YZ plane.
//
// A nil mesh with a nil error means nothing to draw.
func Solid(h *entity.Hatch, tri kernel.Triangulator, sink diag.Sink) (*kernel.Mesh, error) {
	loops := tessellate.Loops(h.Boundary, h.Extrusion.Z)
	part := tessellate.Classify(loops, h.Boundary.Style)
	if part.Outer == nil {
		return nil, nil
	}

	outer, err := resolveRing(part.Outer)
	if err != nil {
		sink.Emit(diag.Warningf(h.Handle, part.Outer.Index, "outer loop failed to stitch: %v", err))
		return nil, nil
	}
	if outer == nil {
		return nil, nil
	}

	shape := kernel.Shape{Outer: outer}
	for _, hole := range part.Holes {
		ring, err := resolveRing(hole)
		if err != nil {
			sink.Emit(diag.Warningf(h.Handle, hole.Index, "hole failed to stitch: %v", err))
			continue
		}
		if ring == nil {
			continue
		}
		shape.Holes = append(shape.Holes, ring)
	}

	mesh, err := tri.Triangulate(shape)
	if err != nil {
		return nil, fmt.Errorf("fill: hatch %s: %w", h.Handle, err)
	}
	mesh.Handle = h.Handle
	if h.Extrusion.Z < 0 {
		mesh.MirrorX()
	}
	return mesh, nil
}
