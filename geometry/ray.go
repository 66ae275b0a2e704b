package geometry

import Vec "pointfill.com/pointfill/vector"

//Ray origin + t*Dir for t >= 0
type Ray struct {
	Origin Vec.Vec32
	Dir    Vec.Vec32
}

func (r Ray) At(t float32) Vec.Vec32 {
	return Vec.Add(r.Origin, Vec.Scale(r.Dir, t))
}

//IntersectTriangle returns the hit point of the ray with tri.
//Front faces are the ones the ray meets against their normal (b-a)x(c-a); back faces
//are skipped only when cullBackFace is set. No epsilon: hits exactly on an edge or vertex
//count for every triangle sharing it, rays parallel to the plane miss.
func (r Ray) IntersectTriangle(tri Triangle, cullBackFace bool) (Vec.Vec32, bool) {
	a := tri.Verts[0]
	edge1 := Vec.Sub(tri.Verts[1], a)
	edge2 := Vec.Sub(tri.Verts[2], a)
	normal := Vec.Cross(edge1, edge2)

	DdN := Vec.Dot(r.Dir, normal)
	var sign float32
	switch {
	case DdN > 0:
		if cullBackFace {
			return Vec.Vec32{}, false
		}
		sign = 1
	case DdN < 0:
		sign = -1
		DdN = -DdN
	default:
		return Vec.Vec32{}, false
	}

	diff := Vec.Sub(r.Origin, a)
	DdQxE2 := sign * Vec.Dot(r.Dir, Vec.Cross(diff, edge2))
	if DdQxE2 < 0 {
		return Vec.Vec32{}, false
	}
	DdE1xQ := sign * Vec.Dot(r.Dir, Vec.Cross(edge1, diff))
	if DdE1xQ < 0 {
		return Vec.Vec32{}, false
	}
	if DdQxE2+DdE1xQ > DdN {
		return Vec.Vec32{}, false
	}

	//Hit distance along the ray, behind the origin is a miss
	QdN := -sign * Vec.Dot(diff, normal)
	if QdN < 0 {
		return Vec.Vec32{}, false
	}
	return r.At(QdN / DdN), true
}
