package entity

import (
	"fmt"

	"github.com/jbeda/geom"
)

// ValidationSeverity indicates whether a validation finding blocks
// conversion or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks conversion
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Handle   string             // which entity has the problem
	Loop     int                // loop index within the boundary, -1 if entity-level
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Loop < 0 {
		return fmt.Sprintf("[%s] hatch %s: %s", e.Severity, e.Handle, e.Message)
	}
	return fmt.Sprintf("[%s] hatch %s: loop %d: %s", e.Severity, e.Handle, e.Loop, e.Message)
}

// Validate runs all checks over a document and returns the findings.
// An empty slice means the document is clean. Warnings describe inputs
// the pipeline degrades on gracefully (skipped loops, fallback spacing);
// errors describe inputs the caller should reject.
func Validate(d *Document) []ValidationError {
	if d == nil {
		return nil
	}
	var errs []ValidationError
	errs = append(errs, validateHandles(d)...)
	for _, h := range d.Hatches {
		errs = append(errs, ValidateHatch(h)...)
	}
	return errs
}

// ValidateHatch runs all checks over a single entity.
func ValidateHatch(h *Hatch) []ValidationError {
	if h == nil {
		return nil
	}
	var errs []ValidationError
	errs = append(errs, validateFill(h)...)
	errs = append(errs, validateBoundary(h)...)
	if h.Extrusion == (Vec3{}) {
		errs = append(errs, ValidationError{
			Handle:   h.Handle,
			Loop:     -1,
			Message:  "zero extrusion direction; plane orientation is undefined",
			Severity: SeverityWarning,
		})
	}
	if h.Handle == "" {
		errs = append(errs, ValidationError{
			Handle:   h.Handle,
			Loop:     -1,
			Message:  "empty handle; result caching is disabled for this entity",
			Severity: SeverityWarning,
		})
	}
	return errs
}

// validateHandles checks that non-empty entity handles are unique, since
// the result cache keys on them.
func validateHandles(d *Document) []ValidationError {
	seen := make(map[string]int)
	var errs []ValidationError
	for _, h := range d.Hatches {
		if h == nil || h.Handle == "" {
			continue
		}
		seen[h.Handle]++
		if seen[h.Handle] == 2 {
			errs = append(errs, ValidationError{
				Handle:   h.Handle,
				Loop:     -1,
				Message:  "duplicate handle; cached results would collide",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func validateFill(h *Hatch) []ValidationError {
	var errs []ValidationError
	switch h.Fill {
	case FillSolid, FillPattern:
	default:
		errs = append(errs, ValidationError{
			Handle:   h.Handle,
			Loop:     -1,
			Message:  fmt.Sprintf("unknown fill kind %d", int(h.Fill)),
			Severity: SeverityError,
		})
	}
	if h.Fill == FillPattern && h.Pattern == nil {
		errs = append(errs, ValidationError{
			Handle:   h.Handle,
			Loop:     -1,
			Message:  "pattern fill without pattern descriptor; spacing falls back to the entity default",
			Severity: SeverityWarning,
		})
	}
	return errs
}

func validateBoundary(h *Hatch) []ValidationError {
	var errs []ValidationError
	if len(h.Boundary.Loops) == 0 {
		errs = append(errs, ValidationError{
			Handle:   h.Handle,
			Loop:     -1,
			Message:  "boundary has no loops; nothing to draw",
			Severity: SeverityWarning,
		})
		return errs
	}
	for i, l := range h.Boundary.Loops {
		if len(l.Primitives) == 0 {
			errs = append(errs, ValidationError{
				Handle:   h.Handle,
				Loop:     i,
				Message:  "loop has no primitives",
				Severity: SeverityWarning,
			})
			continue
		}
		for _, p := range l.Primitives {
			errs = append(errs, validatePrimitive(h.Handle, i, p)...)
		}
	}
	return errs
}

func validatePrimitive(handle string, loop int, p Primitive) []ValidationError {
	warn := func(msg string) ValidationError {
		return ValidationError{Handle: handle, Loop: loop, Message: msg, Severity: SeverityWarning}
	}
	var errs []ValidationError
	switch p := p.(type) {
	case Line:
	case Polyline:
		if len(p.Points) < 2 {
			errs = append(errs, warn(fmt.Sprintf("polyline has %d points; the loop cannot stitch", len(p.Points))))
		}
	case Arc:
		if p.Radius <= 0 {
			errs = append(errs, warn(fmt.Sprintf("arc radius %g is not positive", p.Radius)))
		}
	case Ellipse:
		if p.Ratio <= 0 {
			errs = append(errs, warn(fmt.Sprintf("ellipse axis ratio %g is not positive", p.Ratio)))
		}
		if p.Major == (geom.Coord{}) {
			errs = append(errs, warn("ellipse major axis is a zero vector"))
		}
	case Spline:
		if p.Degree < 1 {
			errs = append(errs, warn(fmt.Sprintf("spline degree %d; the curve will be skipped", p.Degree)))
		}
		if len(p.Control) < p.Degree+1 {
			errs = append(errs, warn(fmt.Sprintf("spline has %d control points for degree %d; the curve will be skipped", len(p.Control), p.Degree)))
		}
		if len(p.Knots) > 0 && len(p.Knots) != len(p.Control)+p.Degree+1 {
			errs = append(errs, warn(fmt.Sprintf("knot vector length %d does not match %d control points; a uniform vector is substituted", len(p.Knots), len(p.Control))))
		}
		if len(p.Weights) > 0 && len(p.Weights) != len(p.Control) {
			errs = append(errs, warn(fmt.Sprintf("weight count %d does not match %d control points; weights are ignored", len(p.Weights), len(p.Control))))
		}
	default:
		errs = append(errs, warn(fmt.Sprintf("unrecognized primitive type %T; it will be skipped", p)))
	}
	return errs
}
