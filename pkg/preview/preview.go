// Package preview paints converted hatch objects into an in-memory RGBA
// image. It gives the command line tool a PNG snapshot of a converted
// document without a GPU surface: solid fills go down as triangles straight
// from the mesh index buffer, pattern lines as thin screen-space quads,
// both through the x/image vector rasterizer.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
	"strconv"

	"github.com/jbeda/geom"
	"golang.org/x/image/vector"

	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/render"
)

const (
	// marginFrac is the fraction of each image dimension left blank around
	// the fitted geometry.
	marginFrac = 0.05

	// strokeWidth is the on-screen width of a pattern line in pixels.
	strokeWidth = 1.5
)

// background is the viewport clear color.
var background = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}

// Render paints objs into a width-by-height image. Geometry from every
// object shares one uniform fit-to-viewport scale with a small margin, and
// objects paint in ascending depth-offset order so solid fills land beneath
// pattern lines. An empty or geometry-free object list yields a plain
// background image.
func Render(objs []*render.Object, width, height int) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	bounds, ok := worldBounds(objs)
	if !ok {
		return img
	}
	view := fitViewport(bounds, width, height)

	ordered := make([]*render.Object, len(objs))
	copy(ordered, objs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DepthOffset < ordered[j].DepthOffset
	})

	ras := vector.NewRasterizer(width, height)
	for _, obj := range ordered {
		if obj == nil {
			continue
		}
		src := image.NewUniform(parseColor(obj.Material.Color))
		if obj.Mesh != nil && !obj.Mesh.IsEmpty() {
			ras.Reset(width, height)
			fillMesh(ras, obj.Mesh, view)
			ras.Draw(img, img.Bounds(), src, image.Point{})
		}
		if obj.Lines != nil && !obj.Lines.IsEmpty() {
			ras.Reset(width, height)
			strokeLines(ras, obj.Lines, view)
			ras.Draw(img, img.Bounds(), src, image.Point{})
		}
	}
	return img
}

// worldBounds accumulates the drawing extent over every mesh vertex and
// line endpoint. ok is false when no object carries geometry.
func worldBounds(objs []*render.Object) (geom.Rect, bool) {
	var bounds geom.Rect
	seeded := false
	expand := func(buf []float32) {
		for i := 0; i+1 < len(buf); i += 3 {
			pt := geom.Coord{X: float64(buf[i]), Y: float64(buf[i+1])}
			if !seeded {
				bounds = geom.Rect{Min: pt, Max: pt}
				seeded = true
				continue
			}
			bounds.ExpandToContainCoord(pt)
		}
	}
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		if obj.Mesh != nil {
			expand(obj.Mesh.Vertices)
		}
		if obj.Lines != nil {
			expand(obj.Lines.Vertices)
		}
	}
	return bounds, seeded
}

// viewport maps drawing coordinates to pixel coordinates. Pixel y grows
// downward while drawing y grows upward, so the projection flips y about
// the drawing center.
type viewport struct {
	scale  float64
	center geom.Coord
	halfW  float64
	halfH  float64
}

func fitViewport(bounds geom.Rect, width, height int) viewport {
	v := viewport{
		scale: 1,
		center: geom.Coord{
			X: (bounds.Min.X + bounds.Max.X) / 2,
			Y: (bounds.Min.Y + bounds.Max.Y) / 2,
		},
		halfW: float64(width) / 2,
		halfH: float64(height) / 2,
	}
	sx := math.Inf(1)
	sy := math.Inf(1)
	if w := bounds.Width(); w > 0 {
		sx = float64(width) * (1 - 2*marginFrac) / w
	}
	if h := bounds.Height(); h > 0 {
		sy = float64(height) * (1 - 2*marginFrac) / h
	}
	if scale := math.Min(sx, sy); !math.IsInf(scale, 1) {
		v.scale = scale
	}
	return v
}

func (v viewport) point(x, y float32) (float32, float32) {
	px := v.halfW + (float64(x)-v.center.X)*v.scale
	py := v.halfH - (float64(y)-v.center.Y)*v.scale
	return float32(px), float32(py)
}

func fillMesh(ras *vector.Rasterizer, m *kernel.Mesh, view viewport) {
	for t := 0; t < m.TriangleCount(); t++ {
		i0 := int(m.Indices[3*t]) * 3
		i1 := int(m.Indices[3*t+1]) * 3
		i2 := int(m.Indices[3*t+2]) * 3
		x0, y0 := view.point(m.Vertices[i0], m.Vertices[i0+1])
		x1, y1 := view.point(m.Vertices[i1], m.Vertices[i1+1])
		x2, y2 := view.point(m.Vertices[i2], m.Vertices[i2+1])
		ras.MoveTo(x0, y0)
		ras.LineTo(x1, y1)
		ras.LineTo(x2, y2)
		ras.ClosePath()
	}
}

// strokeLines widens each segment into a quad strokeWidth pixels across.
func strokeLines(ras *vector.Rasterizer, l *kernel.LineSet, view viewport) {
	half := float32(strokeWidth / 2)
	for s := 0; s < l.SegmentCount(); s++ {
		ax, ay := view.point(l.Vertices[6*s], l.Vertices[6*s+1])
		bx, by := view.point(l.Vertices[6*s+3], l.Vertices[6*s+4])
		dx, dy := bx-ax, by-ay
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx := -dy / length * half
		ny := dx / length * half
		ras.MoveTo(ax+nx, ay+ny)
		ras.LineTo(bx+nx, by+ny)
		ras.LineTo(bx-nx, by-ny)
		ras.LineTo(ax-nx, ay-ny)
		ras.ClosePath()
	}
}

// parseColor decodes a #RRGGBB material color. Anything malformed falls
// back to white.
func parseColor(s string) color.RGBA {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if len(s) != 7 || s[0] != '#' {
		return white
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return white
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xFF,
	}
}
