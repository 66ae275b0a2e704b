package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

//Vector math for particle positions and mesh vertices
//Value functions are immutable. Pointer methods mutate the receiver and return it for chaining

//Vec32 Default Vector Implementation
type Vec32 [3]float32

//Axis indexes into a Vec32
const (
	X = 0
	Y = 1
	Z = 2
)

//NewVec32 returns a vector with all components set to a
func NewVec32(a float32) *Vec32 {
	return &Vec32{a, a, a}
}

func Abs(a Vec32) Vec32 {
	return Vec32{math32.Abs(a[0]), math32.Abs(a[1]), math32.Abs(a[2])}
}

func Dot(a Vec32, b Vec32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v *Vec32) Dot(b Vec32) float32 {
	return v[0]*b[0] + v[1]*b[1] + v[2]*b[2]
}

//Scale - Scales vector by scalar a
func Scale(v Vec32, a float32) Vec32 {
	return Vec32{v[0] * a, v[1] * a, v[2] * a}
}

func (v *Vec32) Scale(a float32) *Vec32 {
	v[0] *= a
	v[1] *= a
	v[2] *= a
	return v
}

func (v *Vec32) Clear() *Vec32 {
	v[0] = 0
	v[1] = 0
	v[2] = 0
	return v
}

func Add(v Vec32, b Vec32) Vec32 {
	return Vec32{v[0] + b[0], v[1] + b[1], v[2] + b[2]}
}

func Sub(v Vec32, b Vec32) Vec32 {
	return Vec32{v[0] - b[0], v[1] - b[1], v[2] - b[2]}
}

//Add - Mutate
func (v *Vec32) Add(b Vec32) *Vec32 {
	v[0] += b[0]
	v[1] += b[1]
	v[2] += b[2]
	return v
}

//Sub - Mutate
func (v *Vec32) Sub(b Vec32) *Vec32 {
	v[0] -= b[0]
	v[1] -= b[1]
	v[2] -= b[2]
	return v
}

//Cross Product
func Cross(a Vec32, b Vec32) Vec32 {
	return Vec32{
		a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1]}
}

func Length(a Vec32) float32 {
	return math32.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func (v *Vec32) Length() float32 {
	return Length(*v)
}

//Normalize returns the unit vector of a. The zero vector stays zero
func Normalize(a Vec32) Vec32 {
	l := Length(a)
	if l == 0 {
		return Vec32{}
	}
	return Vec32{a[0] / l, a[1] / l, a[2] / l}
}

//Min component wise minimum
func Min(a Vec32, b Vec32) Vec32 {
	return Vec32{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

//Max component wise maximum
func Max(a Vec32, b Vec32) Vec32 {
	return Vec32{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

//Lerp linear interpolation a + (b-a)*t per component
func Lerp(a Vec32, b Vec32, t Vec32) Vec32 {
	return Vec32{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
		a[2] + (b[2]-a[2])*t[2]}
}

func VecEquals(v Vec32, a Vec32) bool {
	return v[0] == a[0] && v[1] == a[1] && v[2] == a[2]
}

func (v *Vec32) Distance(a Vec32) float32 {
	return Length(Sub(*v, a))
}

func (v Vec32) String() string {
	return fmt.Sprintf("[ %f, %f, %f]", v[0], v[1], v[2])
}
