// Package libtess implements the kernel.Triangulator interface using
// the github.com/hajimehoshi/go-libtess2 polygon tessellation library.
package libtess

import (
	"fmt"

	libtess2 "github.com/hajimehoshi/go-libtess2"
	"github.com/jbeda/geom"

	"github.com/chazu/hachure/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Triangulator = (*LibtessTriangulator)(nil)

// LibtessTriangulator implements kernel.Triangulator using libtess2.
type LibtessTriangulator struct{}

// New returns a new LibtessTriangulator.
func New() *LibtessTriangulator {
	return &LibtessTriangulator{}
}

// Triangulate fills the shape with triangles under the even-odd
// winding rule, so hole contours cancel the outer contour where they
// overlap regardless of their orientation.
func (t *LibtessTriangulator) Triangulate(s kernel.Shape) (*kernel.Mesh, error) {
	if len(s.Outer) < 3 {
		return &kernel.Mesh{}, nil
	}

	contours := make([]libtess2.Contour, 0, 1+len(s.Holes))
	contours = append(contours, contour(s.Outer))
	for _, h := range s.Holes {
		// A hole needs area to cancel anything.
		if len(h) < 3 {
			continue
		}
		contours = append(contours, contour(h))
	}

	elements, verts, err := libtess2.Tesselate(contours, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, fmt.Errorf("libtess: tessellate: %w", err)
	}

	vertices := make([]float32, 0, len(verts)*3)
	normals := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		// Fills are flat in the local plane and face +z.
		vertices = append(vertices, v.X, v.Y, 0)
		normals = append(normals, 0, 0, 1)
	}
	indices := make([]uint32, 0, len(elements))
	for _, e := range elements {
		indices = append(indices, uint32(e))
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// contour converts a closed point path to a libtess2 contour. libtess2
// closes contours implicitly, so the path's closing point must not be
// repeated by the caller.
func contour(path []geom.Coord) libtess2.Contour {
	c := make(libtess2.Contour, 0, len(path))
	for _, p := range path {
		c = append(c, libtess2.Vertex{X: float32(p.X), Y: float32(p.Y)})
	}
	return c
}
