package geometry

import (
	"github.com/chewxy/math32"
	Vec "pointfill.com/pointfill/vector"
)

//Bounds axis aligned box, Min <= Max on every axis for a non empty mesh
type Bounds struct {
	Min Vec.Vec32
	Max Vec.Vec32
}

//Bounds of every vertex position. Zero Bounds for an empty mesh
func (g *Mesh) Bounds() Bounds {
	if g == nil || len(g.Vertexes) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: g.Vertexes[0], Max: g.Vertexes[0]}
	for _, v := range g.Vertexes[1:] {
		b.Min = Vec.Min(b.Min, v)
		b.Max = Vec.Max(b.Max, v)
	}
	return b
}

func (b Bounds) Size() Vec.Vec32 {
	return Vec.Sub(b.Max, b.Min)
}

func (b Bounds) Center() Vec.Vec32 {
	return Vec.Scale(Vec.Add(b.Min, b.Max), 0.5)
}

func (b Bounds) Volume() float32 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

//Contains inclusive on both corners
func (b Bounds) Contains(p Vec.Vec32) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

//Degenerate reports a box with no positive extent on some axis (flat, inverted or NaN)
func (b Bounds) Degenerate() bool {
	s := b.Size()
	for i := 0; i < 3; i++ {
		if !(s[i] > 0) || math32.IsInf(s[i], 0) {
			return true
		}
	}
	return false
}
