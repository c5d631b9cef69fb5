package entity

import "github.com/jbeda/geom"

// Primitive is the interface for boundary curve segments. Each variant
// describes one curve of a loop; tessellation derives point sequences
// from them without mutating the originals.
type Primitive interface {
	primitive() // marker method restricting implementations to this package
}

// Line is a straight segment between two endpoints.
type Line struct {
	Start geom.Coord `json:"start"`
	End   geom.Coord `json:"end"`
}

func (Line) primitive() {}

// Polyline is a pre-materialized point sequence supplied by the parser.
// A closed polyline implicitly joins its last point back to its first.
type Polyline struct {
	Points []geom.Coord `json:"points"`
	Closed bool         `json:"closed,omitempty"`
}

func (Polyline) primitive() {}

// Arc is a circular arc. Angles are in degrees; Clockwise records the
// declared rotation sense from the source format.
type Arc struct {
	Center     geom.Coord `json:"center"`
	Radius     float64    `json:"radius"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
	Clockwise  bool       `json:"clockwise,omitempty"`
}

func (Arc) primitive() {}

// Ellipse is an elliptical arc. Major is the major-axis endpoint vector
// measured from the center; Ratio is the minor/major axis ratio. Angles
// are in degrees, measured from the major axis.
type Ellipse struct {
	Center     geom.Coord `json:"center"`
	Major      geom.Coord `json:"major"`
	Ratio      float64    `json:"ratio"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
}

func (Ellipse) primitive() {}

// Spline is a parametric B-spline curve, possibly rational when Weights
// are present. An empty or mis-sized knot vector is replaced with a
// uniform clamped one during evaluation.
type Spline struct {
	Control []geom.Coord `json:"control"`
	Degree  int          `json:"degree"`
	Knots   []float64    `json:"knots,omitempty"`
	Weights []float64    `json:"weights,omitempty"`
}

func (Spline) primitive() {}
