// Package tessellate turns hatch boundary loops into stitched point
// paths: each primitive is discretized into an ordered point sequence,
// the sequences are chained end-to-end into continuous paths, and the
// loops of a boundary are partitioned into one outer loop and its
// holes.
package tessellate

import (
	"math"

	"github.com/chazu/hachure/pkg/bspline"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/jbeda/geom"
)

// arcSegments is the fixed discretization for circular and elliptical
// arcs.
const arcSegments = 32

// Segment is one tessellated boundary primitive: an ordered point
// sequence owned by the current stitching pass. Stitching may reverse
// it in place; the source primitive is never touched.
type Segment struct {
	Points []geom.Coord
	Closed bool // the source polyline joins its last point back to its first
}

func (s *Segment) reverse() {
	for i, j := 0, len(s.Points)-1; i < j; i, j = i+1, j-1 {
		s.Points[i], s.Points[j] = s.Points[j], s.Points[i]
	}
}

func (s *Segment) first() geom.Coord { return s.Points[0] }
func (s *Segment) last() geom.Coord  { return s.Points[len(s.Points)-1] }

// Loop is one boundary loop after tessellation: the per-primitive
// segments plus the bounding box over every produced point.
type Loop struct {
	Index    int // position within the boundary
	Type     entity.LoopType
	Segments []Segment
	Bounds   geom.Rect
}

// Loops tessellates every loop of a boundary. Primitives the
// tessellator does not recognize produce an empty segment, which no
// stitch can place; the loop then fails to resolve, matching how the
// rest of the pipeline treats malformed input.
func Loops(b entity.Boundary, extrusionZ float64) []Loop {
	loops := make([]Loop, 0, len(b.Loops))
	for i, l := range b.Loops {
		tl := Loop{Index: i, Type: l.Type}
		for _, p := range l.Primitives {
			seg, _ := Primitive(p, extrusionZ)
			tl.Segments = append(tl.Segments, seg)
		}
		tl.Bounds = segmentBounds(tl.Segments)
		loops = append(loops, tl)
	}
	return loops
}

// Primitive tessellates one boundary primitive into a segment of 2D
// points in the entity's local plane. The boolean is false for
// primitive types the tessellator does not recognize; those contribute
// no points.
func Primitive(p entity.Primitive, extrusionZ float64) (Segment, bool) {
	switch p := p.(type) {
	case entity.Line:
		return Segment{Points: []geom.Coord{p.Start, p.End}}, true
	case entity.Polyline:
		return Segment{Points: append([]geom.Coord(nil), p.Points...), Closed: p.Closed}, true
	case entity.Arc:
		return Segment{Points: arcPoints(p, extrusionZ)}, true
	case entity.Ellipse:
		return Segment{Points: ellipsePoints(p)}, true
	case entity.Spline:
		return Segment{Points: bspline.Evaluate(p.Control, p.Degree, p.Knots, p.Weights)}, true
	default:
		return Segment{}, false
	}
}

// arcPoints samples a circular arc counterclockwise between its start
// and end angles. A clockwise arc under a positive extrusion normal has
// its angle pair swapped and negated, compensating for the boundary
// direction flip of the reversed local frame.
func arcPoints(a entity.Arc, extrusionZ float64) []geom.Coord {
	start := a.StartAngle * math.Pi / 180.0
	end := a.EndAngle * math.Pi / 180.0
	if a.Clockwise && extrusionZ > 0 {
		start, end = -end, -start
	}
	for end <= start {
		end += 2 * math.Pi
	}

	points := make([]geom.Coord, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		t := start + (end-start)*float64(i)/arcSegments
		points = append(points, geom.Coord{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		})
	}
	return points
}

// ellipsePoints samples an elliptical arc counterclockwise in its
// parametric angle, rotated into the frame of the major axis.
func ellipsePoints(e entity.Ellipse) []geom.Coord {
	start := e.StartAngle * math.Pi / 180.0
	end := e.EndAngle * math.Pi / 180.0
	for end <= start {
		end += 2 * math.Pi
	}

	major := e.Major.Magnitude()
	minor := major * e.Ratio
	rot := math.Atan2(e.Major.Y, e.Major.X)
	cosR, sinR := math.Cos(rot), math.Sin(rot)

	points := make([]geom.Coord, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		t := start + (end-start)*float64(i)/arcSegments
		x := major * math.Cos(t)
		y := minor * math.Sin(t)
		points = append(points, geom.Coord{
			X: e.Center.X + x*cosR - y*sinR,
			Y: e.Center.Y + x*sinR + y*cosR,
		})
	}
	return points
}

// segmentBounds accumulates the bounding box over every segment point.
func segmentBounds(segs []Segment) geom.Rect {
	var r geom.Rect
	seeded := false
	for _, s := range segs {
		for _, p := range s.Points {
			if !seeded {
				r = geom.Rect{Min: p, Max: p}
				seeded = true
				continue
			}
			r.ExpandToContainCoord(p)
		}
	}
	return r
}
