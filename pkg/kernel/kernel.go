// Package kernel defines the abstract triangulation kernel interface.
// Implementations (libtess) fill a classified boundary shape with
// triangles behind this interface. The kernel abstraction allows
// swapping backends without changing the rest of the system.
package kernel

import "github.com/jbeda/geom"

// Shape is one resolved hatch boundary: a closed outer ring and zero
// or more closed hole rings, all in the entity's local 2D plane. Rings
// close implicitly; the first point is not repeated at the end.
type Shape struct {
	Outer []geom.Coord
	Holes [][]geom.Coord
}

// Triangulator fills a shape's interior with triangles.
type Triangulator interface {
	// Triangulate meshes the shape, keeping the holes uncovered.
	// Degenerate input such as an outer path with fewer than three
	// points yields an empty mesh, not an error.
	Triangulate(s Shape) (*Mesh, error)
}
