// Package render assembles per-entity renderable objects: fill
// geometry from the conversion pipeline paired with a resolved
// material and a draw-order depth offset.
package render

import (
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/material"
)

// Depth offsets by render mode. Solid fills sit slightly behind
// nominal depth so pattern lines and boundary edges win the depth
// test.
const (
	ShapeDepthOffset = -0.1
	LineDepthOffset  = 0.0
)

// Object is one renderable hatch: geometry, material, and draw
// placement, with the source entity kept as a back-reference.
type Object struct {
	Entity      *entity.Hatch     `json:"-"`
	Handle      string            `json:"handle"`
	Mesh        *kernel.Mesh      `json:"mesh,omitempty"`
	Lines       *kernel.LineSet   `json:"lines,omitempty"`
	Material    material.Material `json:"material"`
	DepthOffset float64           `json:"depth_offset"`
}
