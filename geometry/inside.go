package geometry

import Vec "pointfill.com/pointfill/vector"

//InsideDirection fixed non axis aligned ray direction for the parity test.
//Every Contains call uses it so one sampling run always casts along the same line
var InsideDirection = Vec.Normalize(Vec.Vec32{1, 1.1, 1.2})

//Contains even-odd test along InsideDirection
func (g *Mesh) Contains(p Vec.Vec32) bool {
	return g.ContainsAlong(p, InsideDirection)
}

//ContainsAlong casts a ray from p along dir and counts every triangle it crosses, front or back.
//Odd means inside. A ray through a shared edge or vertex counts each triangle touching it,
//which can flip the answer for that point
func (g *Mesh) ContainsAlong(p Vec.Vec32, dir Vec.Vec32) bool {
	return g.Crossings(Ray{Origin: p, Dir: dir})%2 == 1
}

//Crossings number of triangles hit by the ray, back faces included
func (g *Mesh) Crossings(ray Ray) int {
	counter := 0
	faces := g.TriangleCount()
	for i := 0; i < faces; i++ {
		if _, hit := ray.IntersectTriangle(g.Triangle(i), false); hit {
			counter++
		}
	}
	return counter
}
