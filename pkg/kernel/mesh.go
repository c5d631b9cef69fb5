package kernel

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Handle   string    `json:"handle"`   // which hatch entity this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// MirrorX negates every vertex x coordinate in place, projecting the
// mesh through the YZ plane. Normals stay untouched; hatch fills are
// flat and keep facing +z. Applying the mirror twice restores the
// original coordinates.
func (m *Mesh) MirrorX() {
	for i := 0; i < len(m.Vertices); i += 3 {
		m.Vertices[i] = -m.Vertices[i]
	}
}

// LineSet is a batch of independent line segments suitable for
// rendering. Vertices is flat with 3 floats per endpoint and 2
// endpoints per segment: [x0,y0,z0, x1,y1,z1, ...].
type LineSet struct {
	Vertices []float32 `json:"vertices"`
	Handle   string    `json:"handle"`
}

// SegmentCount returns the number of line segments.
func (l *LineSet) SegmentCount() int {
	return len(l.Vertices) / 6
}

// IsEmpty returns true if the set has no segments.
func (l *LineSet) IsEmpty() bool {
	return len(l.Vertices) == 0
}

// MirrorX negates every endpoint x coordinate in place.
func (l *LineSet) MirrorX() {
	for i := 0; i < len(l.Vertices); i += 3 {
		l.Vertices[i] = -l.Vertices[i]
	}
}
