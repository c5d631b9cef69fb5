package entity_test

import (
	"strings"
	"testing"

	"github.com/chazu/hachure/pkg/entity"
	"github.com/jbeda/geom"
)

// minimalSolid returns a well-formed solid hatch with one square loop.
func minimalSolid(handle string) *entity.Hatch {
	return &entity.Hatch{
		Handle:    handle,
		Fill:      entity.FillSolid,
		Extrusion: entity.Vec3{Z: 1},
		Boundary: entity.Boundary{
			Loops: []entity.Loop{{
				Primitives: []entity.Primitive{
					entity.Polyline{
						Points: []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
						Closed: true,
					},
				},
			}},
		},
	}
}

func findingWith(errs []entity.ValidationError, substr string) *entity.ValidationError {
	for i := range errs {
		if strings.Contains(errs[i].Message, substr) {
			return &errs[i]
		}
	}
	return nil
}

func TestValidateCleanDocument(t *testing.T) {
	doc := &entity.Document{Hatches: []*entity.Hatch{minimalSolid("A1")}}
	if errs := entity.Validate(doc); len(errs) != 0 {
		t.Fatalf("expected no findings, got %v", errs)
	}
}

func TestValidateDuplicateHandles(t *testing.T) {
	doc := &entity.Document{Hatches: []*entity.Hatch{minimalSolid("A1"), minimalSolid("A1")}}
	errs := entity.Validate(doc)
	f := findingWith(errs, "duplicate handle")
	if f == nil {
		t.Fatalf("expected a duplicate-handle finding, got %v", errs)
	}
	if f.Severity != entity.SeverityError {
		t.Errorf("duplicate handle severity = %v, want error", f.Severity)
	}
}

func TestValidateHatch(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*entity.Hatch)
		substr   string
		severity entity.ValidationSeverity
	}{
		{
			"unknown fill kind",
			func(h *entity.Hatch) { h.Fill = entity.FillKind(7) },
			"unknown fill kind",
			entity.SeverityError,
		},
		{
			"pattern fill without descriptor",
			func(h *entity.Hatch) { h.Fill = entity.FillPattern },
			"without pattern descriptor",
			entity.SeverityWarning,
		},
		{
			"empty boundary",
			func(h *entity.Hatch) { h.Boundary.Loops = nil },
			"no loops",
			entity.SeverityWarning,
		},
		{
			"empty loop",
			func(h *entity.Hatch) { h.Boundary.Loops[0].Primitives = nil },
			"no primitives",
			entity.SeverityWarning,
		},
		{
			"zero extrusion",
			func(h *entity.Hatch) { h.Extrusion = entity.Vec3{} },
			"zero extrusion",
			entity.SeverityWarning,
		},
		{
			"empty handle",
			func(h *entity.Hatch) { h.Handle = "" },
			"empty handle",
			entity.SeverityWarning,
		},
		{
			"short polyline",
			func(h *entity.Hatch) {
				h.Boundary.Loops[0].Primitives = []entity.Primitive{entity.Polyline{Points: []geom.Coord{{X: 0, Y: 0}}}}
			},
			"polyline has 1 points",
			entity.SeverityWarning,
		},
		{
			"negative arc radius",
			func(h *entity.Hatch) {
				h.Boundary.Loops[0].Primitives = []entity.Primitive{entity.Arc{Radius: -2}}
			},
			"arc radius -2",
			entity.SeverityWarning,
		},
		{
			"flat ellipse",
			func(h *entity.Hatch) {
				h.Boundary.Loops[0].Primitives = []entity.Primitive{entity.Ellipse{Major: geom.Coord{X: 1}, Ratio: 0}}
			},
			"axis ratio 0",
			entity.SeverityWarning,
		},
		{
			"spline degree zero",
			func(h *entity.Hatch) {
				h.Boundary.Loops[0].Primitives = []entity.Primitive{entity.Spline{Control: []geom.Coord{{X: 0, Y: 0}}, Degree: 0}}
			},
			"spline degree 0",
			entity.SeverityWarning,
		},
		{
			"mismatched knots",
			func(h *entity.Hatch) {
				h.Boundary.Loops[0].Primitives = []entity.Primitive{entity.Spline{
					Control: []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}},
					Degree:  2,
					Knots:   []float64{0, 1},
				}}
			},
			"knot vector length 2",
			entity.SeverityWarning,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := minimalSolid("H1")
			tt.mutate(h)
			errs := entity.ValidateHatch(h)
			f := findingWith(errs, tt.substr)
			if f == nil {
				t.Fatalf("expected a finding containing %q, got %v", tt.substr, errs)
			}
			if f.Severity != tt.severity {
				t.Errorf("severity = %v, want %v", f.Severity, tt.severity)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	e := entity.ValidationError{Handle: "2F", Loop: 1, Message: "loop has no primitives", Severity: entity.SeverityWarning}
	want := "[warning] hatch 2F: loop 1: loop has no primitives"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	e.Loop = -1
	want = "[warning] hatch 2F: loop has no primitives"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
