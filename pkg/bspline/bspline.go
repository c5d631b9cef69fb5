// Package bspline evaluates B-spline curves, including rational curves
// carrying per-control-point weights, into polyline approximations.
// Callers hand over whatever control data the source document supplied;
// the evaluator owns the sampling resolution and repairs malformed knot
// and weight vectors rather than failing.
package bspline

import "github.com/jbeda/geom"

// minSegments is the floor on the sampling resolution; short curves
// still get a smooth polyline.
const minSegments = 24

// segmentsPerSpan scales resolution with the number of control spans.
const segmentsPerSpan = 8

// Evaluate approximates the curve with an ordered point sequence. It
// returns nil when the inputs cannot describe a curve (degree below 1,
// or fewer than degree+1 control points). A missing or mis-sized knot
// vector is replaced with a uniform clamped one; mis-sized weights are
// ignored.
func Evaluate(control []geom.Coord, degree int, knots, weights []float64) []geom.Coord {
	if degree < 1 || len(control) < degree+1 {
		return nil
	}
	if len(knots) != len(control)+degree+1 {
		knots = uniformKnots(len(control), degree)
	}
	if len(weights) != len(control) {
		weights = nil
	}

	lo := knots[degree]
	hi := knots[len(knots)-1-degree]
	if !(hi > lo) {
		return nil
	}

	segments := sampleCount(len(control))
	points := make([]geom.Coord, 0, segments+1)
	for i := 0; i <= segments; i++ {
		u := lo + (hi-lo)*float64(i)/float64(segments)
		points = append(points, evalAt(control, degree, knots, weights, u))
	}
	return points
}

func sampleCount(control int) int {
	n := segmentsPerSpan * (control - 1)
	if n < minSegments {
		n = minSegments
	}
	return n
}

// uniformKnots builds a clamped uniform knot vector: degree+1 copies of
// the boundary values with evenly spaced interior knots.
func uniformKnots(control, degree int) []float64 {
	n := control + degree + 1
	knots := make([]float64, n)
	interior := float64(control - degree)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n-degree-1:
			knots[i] = interior
		default:
			knots[i] = float64(i - degree)
		}
	}
	return knots
}

// findSpan locates the knot span containing u: the index s with
// knots[s] <= u < knots[s+1], clamped to the final span at the top end.
func findSpan(u float64, degree int, knots []float64, numControl int) int {
	n := numControl - 1
	if u >= knots[n+1] {
		return n
	}
	lo, hi := degree, n+1
	mid := (lo + hi) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// evalAt runs the de Boor recurrence at parameter u. Weights ride along
// in homogeneous coordinates so rational curves evaluate exactly.
func evalAt(control []geom.Coord, degree int, knots, weights []float64, u float64) geom.Coord {
	s := findSpan(u, degree, knots, len(control))

	px := make([]float64, degree+1)
	py := make([]float64, degree+1)
	pw := make([]float64, degree+1)
	for j := 0; j <= degree; j++ {
		w := 1.0
		if weights != nil {
			w = weights[s-degree+j]
		}
		c := control[s-degree+j]
		px[j] = c.X * w
		py[j] = c.Y * w
		pw[j] = w
	}

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			i := s - degree + j
			den := knots[i+degree-r+1] - knots[i]
			var alpha float64
			if den != 0 {
				alpha = (u - knots[i]) / den
			}
			px[j] = (1-alpha)*px[j-1] + alpha*px[j]
			py[j] = (1-alpha)*py[j-1] + alpha*py[j]
			pw[j] = (1-alpha)*pw[j-1] + alpha*pw[j]
		}
	}

	w := pw[degree]
	if w == 0 {
		return geom.Coord{X: px[degree], Y: py[degree]}
	}
	return geom.Coord{X: px[degree] / w, Y: py[degree] / w}
}
