// Package material resolves display colors for hatch geometry from the
// entity's color number and layer, following the CAD color-index
// convention.
package material

import "github.com/chazu/hachure/pkg/entity"

// Mode distinguishes what a material shades.
type Mode int

const (
	ModeShape Mode = iota // triangulated solid fill
	ModeLine              // pattern line work
)

func (m Mode) String() string {
	switch m {
	case ModeShape:
		return "shape"
	case ModeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Material is the resolved appearance for one piece of geometry.
type Material struct {
	Color string `json:"color"` // #RRGGBB
	Mode  Mode   `json:"mode"`
}

// Resolver maps a hatch entity to a material for one render mode.
type Resolver interface {
	Resolve(h *entity.Hatch, mode Mode) Material
}

// Compile-time interface check.
var _ Resolver = (*Palette)(nil)

// Palette resolves colors through the classic color index table.
// Color number 0 (by block) and 256 (by layer) defer to the entity's
// layer color.
type Palette struct {
	// Layers maps layer names to their color numbers.
	Layers map[string]int
}

// NewPalette returns a Palette backed by the given layer color table.
// A nil table resolves every deferred color to white.
func NewPalette(layers map[string]int) *Palette {
	return &Palette{Layers: layers}
}

// indexColors covers the named head of the color index plus the
// grayscale tail. Numbers outside the table fall back to white.
var indexColors = map[int]string{
	1:   "#FF0000", // red
	2:   "#FFFF00", // yellow
	3:   "#00FF00", // green
	4:   "#00FFFF", // cyan
	5:   "#0000FF", // blue
	6:   "#FF00FF", // magenta
	7:   "#FFFFFF", // white
	8:   "#414141", // dark gray
	9:   "#808080", // gray
	30:  "#FF7F00", // orange
	250: "#333333",
	251: "#505050",
	252: "#696969",
	253: "#828282",
	254: "#BEBEBE",
	255: "#FFFFFF",
}

// Resolve picks the entity's color. Deferred color numbers follow the
// layer table, defaulting to white for unknown layers.
func (p *Palette) Resolve(h *entity.Hatch, mode Mode) Material {
	n := h.ColorNumber
	if n == 0 || n == 256 {
		if ln, ok := p.Layers[h.Layer]; ok {
			n = ln
		} else {
			n = 7
		}
	}
	color, ok := indexColors[n]
	if !ok {
		color = "#FFFFFF"
	}
	return Material{Color: color, Mode: mode}
}
