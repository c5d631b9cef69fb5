package entity

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the transfer format for parsed hatch entities: the hatch
// records themselves plus the layer color table they resolve against.
type Document struct {
	Layers  map[string]int `json:"layers,omitempty"` // layer name -> color index
	Hatches []*Hatch       `json:"hatches"`
}

// ParseDocument decodes a JSON document. An omitted extrusion direction
// is normalized to the default plane normal (0,0,1).
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("entity: parse document: %w", err)
	}
	for _, h := range doc.Hatches {
		if h != nil && h.Extrusion == (Vec3{}) {
			h.Extrusion = Vec3{Z: 1}
		}
	}
	return &doc, nil
}

// LoadDocument reads and parses a JSON document file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("entity: load document: %w", err)
	}
	return ParseDocument(data)
}

// loopJSON is the wire shape of a Loop; primitives travel as raw
// messages so the kind discriminator can be applied per element.
type loopJSON struct {
	Type       LoopType          `json:"type"`
	Primitives []json.RawMessage `json:"primitives"`
}

// MarshalJSON encodes the loop with a "kind" discriminator on each
// primitive.
func (l Loop) MarshalJSON() ([]byte, error) {
	out := loopJSON{Type: l.Type, Primitives: make([]json.RawMessage, 0, len(l.Primitives))}
	for i, p := range l.Primitives {
		raw, err := marshalPrimitive(p)
		if err != nil {
			return nil, fmt.Errorf("entity: primitive %d: %w", i, err)
		}
		out.Primitives = append(out.Primitives, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the loop, dispatching each primitive on its
// "kind" discriminator.
func (l *Loop) UnmarshalJSON(data []byte) error {
	var raw loopJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Type = raw.Type
	l.Primitives = nil
	for i, msg := range raw.Primitives {
		p, err := unmarshalPrimitive(msg)
		if err != nil {
			return fmt.Errorf("entity: primitive %d: %w", i, err)
		}
		l.Primitives = append(l.Primitives, p)
	}
	return nil
}

func marshalPrimitive(p Primitive) (json.RawMessage, error) {
	switch p := p.(type) {
	case Line:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Line
		}{"line", p})
	case Polyline:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Polyline
		}{"polyline", p})
	case Arc:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Arc
		}{"arc", p})
	case Ellipse:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Ellipse
		}{"ellipse", p})
	case Spline:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Spline
		}{"spline", p})
	default:
		return nil, fmt.Errorf("unsupported primitive type %T", p)
	}
}

func unmarshalPrimitive(data []byte) (Primitive, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Kind {
	case "line":
		var p Line
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "polyline":
		var p Polyline
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "arc":
		var p Arc
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "ellipse":
		var p Ellipse
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "spline":
		var p Spline
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", head.Kind)
	}
}
