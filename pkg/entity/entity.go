package entity

import (
	"strings"

	"github.com/jbeda/geom"
)

// FillKind enumerates how a hatch region is rendered.
type FillKind int

const (
	FillSolid   FillKind = iota // triangulated polygon-with-holes mesh
	FillPattern                 // clipped parallel line segments
)

func (k FillKind) String() string {
	switch k {
	case FillSolid:
		return "solid"
	case FillPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// HatchStyle selects how non-outer loops are classified.
type HatchStyle int

const (
	// StyleNormal treats every loop other than the outer loop as a hole.
	StyleNormal HatchStyle = 0
	// StyleOutermost consults each loop's type flags: only loops marked
	// outermost and not external become holes.
	StyleOutermost HatchStyle = 1
)

func (s HatchStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleOutermost:
		return "outermost"
	default:
		return "unknown"
	}
}

// LoopType carries the source format's per-loop boundary-type flags.
// Classification logic reads them through the named predicates, never
// through raw bit tests.
type LoopType int

const (
	LoopDefault    LoopType = 0
	LoopExternal   LoopType = 1 << 0 // part of the entity's external boundary
	LoopPolyline   LoopType = 1 << 1 // sourced from a polyline boundary path
	LoopDerived    LoopType = 1 << 2 // derived from picked geometry
	LoopTextIsland LoopType = 1 << 3 // island around text
	LoopOutermost  LoopType = 1 << 4 // outermost loop of a nested set
)

// External reports whether the external-boundary flag is set.
func (t LoopType) External() bool { return t&LoopExternal != 0 }

// Polyline reports whether the polyline-path flag is set.
func (t LoopType) Polyline() bool { return t&LoopPolyline != 0 }

// Derived reports whether the derived-geometry flag is set.
func (t LoopType) Derived() bool { return t&LoopDerived != 0 }

// TextIsland reports whether the text-island flag is set.
func (t LoopType) TextIsland() bool { return t&LoopTextIsland != 0 }

// Outermost reports whether the outermost flag is set.
func (t LoopType) Outermost() bool { return t&LoopOutermost != 0 }

func (t LoopType) String() string {
	if t == LoopDefault {
		return "default"
	}
	var parts []string
	if t.External() {
		parts = append(parts, "external")
	}
	if t.Polyline() {
		parts = append(parts, "polyline")
	}
	if t.Derived() {
		parts = append(parts, "derived")
	}
	if t.TextIsland() {
		parts = append(parts, "text-island")
	}
	if t.Outermost() {
		parts = append(parts, "outermost")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Vec3 is a 3D vector. Hatch entities use it only for the extrusion
// direction; boundary geometry is 2D in the entity's local plane.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Loop is one closed or intended-to-be-closed boundary curve, composed
// of ordered primitive segments.
type Loop struct {
	Type       LoopType    `json:"type"`
	Primitives []Primitive `json:"primitives"`
}

// Boundary is the ordered collection of loops bounding one hatch region.
type Boundary struct {
	Style HatchStyle `json:"style"`
	Loops []Loop     `json:"loops"`
}

// Pattern describes the family of parallel fill lines for a pattern
// hatch: a direction angle, an anchor point fixing the phase of the
// line family, and the offset vector between neighboring lines.
type Pattern struct {
	Name   string     `json:"name,omitempty"`
	Angle  float64    `json:"angle"`  // degrees
	Base   geom.Coord `json:"base"`   // anchor point
	Offset geom.Coord `json:"offset"` // displacement between consecutive lines
}

// Hatch is one parsed HATCH entity.
type Hatch struct {
	Handle      string   `json:"handle"`                 // entity identity, the result-cache key
	Layer       string   `json:"layer,omitempty"`        // owning layer, for by-layer color lookup
	ColorNumber int      `json:"color_number,omitempty"` // color index; 0 and 256 resolve by layer
	Fill        FillKind `json:"fill"`
	Boundary    Boundary `json:"boundary"`
	Extrusion   Vec3     `json:"extrusion"` // local plane normal; negative z mirrors output x
	Pattern     *Pattern `json:"pattern,omitempty"`
	Spacing     float64  `json:"spacing,omitempty"` // fallback line spacing when the pattern offset is zero
}
