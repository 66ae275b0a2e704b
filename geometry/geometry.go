package geometry

import (
	"fmt"

	Vec "pointfill.com/pointfill/vector"
)

//pointfill geometry library - closed triangle meshes whose enclosed volume gets filled with particles
//Mesh positions are world coordinates, no modelview / projection transforms are applied here

//Meshes are treated as watertight. Open or self intersecting meshes silently break the inside test

type Triangle struct {
	Verts [3]Vec.Vec32
}

//Triangle Mesh Storage. Triangle i occupies Vertexes[3i], Vertexes[3i+1], Vertexes[3i+2]
//Never mutated after construction so it may be shared between sampling goroutines
type Mesh struct {
	Vertexes []Vec.Vec32
}

func InitTriangle(a Vec.Vec32, b Vec.Vec32, c Vec.Vec32) Triangle {
	return Triangle{Verts: [3]Vec.Vec32{a, b, c}}
}

//NewMesh reads a flat position buffer of xyz floats, three vertices per triangle
func NewMesh(positions []float32) (*Mesh, error) {
	if len(positions)%9 != 0 {
		return nil, fmt.Errorf("position buffer length %d is not a whole number of triangles (9 floats each)", len(positions))
	}
	verts := make([]Vec.Vec32, len(positions)/3)
	for i := range verts {
		verts[i] = Vec.Vec32{positions[i*3], positions[i*3+1], positions[i*3+2]}
	}
	return &Mesh{Vertexes: verts}, nil
}

//FromVertices wraps a vertex list, three vertices per triangle. The slice is copied
func FromVertices(vertices []Vec.Vec32) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex count %d is not a multiple of 3", len(vertices))
	}
	verts := make([]Vec.Vec32, len(vertices))
	copy(verts, vertices)
	return &Mesh{Vertexes: verts}, nil
}

func (g *Mesh) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Vertexes) / 3
}

func (g *Mesh) Triangle(i int) Triangle {
	return InitTriangle(g.Vertexes[i*3], g.Vertexes[i*3+1], g.Vertexes[i*3+2])
}

//Vertices returns the flat position buffer (x,y,z per vertex)
func (g *Mesh) Vertices() []float32 {
	buf := make([]float32, 0, len(g.Vertexes)*3)
	for _, v := range g.Vertexes {
		buf = append(buf, v[0], v[1], v[2])
	}
	return buf
}

func (tri *Triangle) Normal() Vec.Vec32 {
	N := Vec.Cross(Vec.Sub(tri.Verts[1], tri.Verts[0]), Vec.Sub(tri.Verts[2], tri.Verts[0]))
	return Vec.Normalize(N)
}

//Triangle Mesh Box with 12 Triangles // 36 Vertexes centered on o
//Winding is not consistent between faces, the inside test does not care
func Box(w float32, h float32, d float32, o Vec.Vec32) *Mesh {
	var Verts = make([]Vec.Vec32, 12*3)

	x := o[0]
	y := o[1]
	z := o[2]

	p := w / 2
	q := h / 2
	s := d / 2

	LFB := Vec.Vec32{x - p, y - q, z + s}
	LFT := Vec.Vec32{x - p, y + q, z + s}
	RFT := Vec.Vec32{x + p, y + q, z + s}
	RFB := Vec.Vec32{x + p, y - q, z + s}
	LBB := Vec.Vec32{x - p, y - q, z - s}
	LBT := Vec.Vec32{x - p, y + q, z - s}
	RBT := Vec.Vec32{x + p, y + q, z - s}
	RBB := Vec.Vec32{x + p, y - q, z - s}

	//FRONT FACE +Z
	Verts[0], Verts[1], Verts[2] = LFB, LFT, RFT
	Verts[3], Verts[4], Verts[5] = RFT, RFB, LFB

	//BACK FACE -Z
	Verts[6], Verts[7], Verts[8] = LBB, LBT, RBB
	Verts[9], Verts[10], Verts[11] = LBT, RBT, RBB

	//BOTTOM FACE -Y
	Verts[12], Verts[13], Verts[14] = LFB, LBB, RBB
	Verts[15], Verts[16], Verts[17] = LFB, RBB, RFB

	//TOP FACE +Y
	Verts[18], Verts[19], Verts[20] = LFT, LBT, RBT
	Verts[21], Verts[22], Verts[23] = RBT, RFT, LFT

	//LEFT FACE -X
	Verts[24], Verts[25], Verts[26] = LFB, LBB, LFT
	Verts[27], Verts[28], Verts[29] = LBB, LBT, LFT

	//RIGHT FACE +X
	Verts[30], Verts[31], Verts[32] = RFT, RFB, RBB
	Verts[33], Verts[34], Verts[35] = RFT, RBT, RBB

	return &Mesh{Vertexes: Verts}
}

//UnitCube spans (0,0,0)-(1,1,1)
func UnitCube() *Mesh {
	return Box(1, 1, 1, Vec.Vec32{0.5, 0.5, 0.5})
}

//Tetrahedron from four corners, 4 triangles
func Tetrahedron(a Vec.Vec32, b Vec.Vec32, c Vec.Vec32, d Vec.Vec32) *Mesh {
	return &Mesh{Vertexes: []Vec.Vec32{
		a, b, c,
		a, b, d,
		a, c, d,
		b, c, d,
	}}
}
