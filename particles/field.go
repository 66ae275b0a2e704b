package particles

//Particle field handed to the renderer: one position and one alpha attribute per point
import (
	"context"
	"fmt"

	G "pointfill.com/pointfill/geometry"
	S "pointfill.com/pointfill/sampler"
	U "pointfill.com/pointfill/utils"
	V "pointfill.com/pointfill/vector"
)

//Field Positions and Alpha always have the same length
type Field struct {
	Positions []V.Vec32
	Alpha     []float32
}

//NewField takes ownership of positions. Alpha starts at 1
func NewField(positions []V.Vec32) *Field {
	f := &Field{Positions: positions, Alpha: make([]float32, len(positions))}
	f.FillAlpha(1)
	return f
}

//Fill samples n points inside mesh and wraps them in a field
func Fill(ctx context.Context, s *S.Sampler, mesh *G.Mesh, n int) (*Field, error) {
	points, err := s.Sample(ctx, mesh, n)
	if err != nil {
		return nil, fmt.Errorf("fill particle field: %w", err)
	}
	return NewField(points), nil
}

func (f *Field) Count() int {
	return len(f.Positions)
}

func (f *Field) FillAlpha(a float32) {
	for i := range f.Alpha {
		f.Alpha[i] = a
	}
}

//SetAlpha evaluates fn for every particle
func (f *Field) SetAlpha(fn func(i int, p V.Vec32) float32) {
	for i, p := range f.Positions {
		f.Alpha[i] = fn(i, p)
	}
}

//FadeAlong ramps alpha from 0 at b.Min to 1 at b.Max on one axis, clamped
func (f *Field) FadeAlong(axis int, b G.Bounds) error {
	if axis < V.X || axis > V.Z {
		return fmt.Errorf("axis %d out of range", axis)
	}
	extent := b.Max[axis] - b.Min[axis]
	if !(extent > 0) {
		return fmt.Errorf("bounds have no extent on axis %d", axis)
	}
	f.SetAlpha(func(_ int, p V.Vec32) float32 {
		a := (p[axis] - b.Min[axis]) / extent
		return min(max(a, 0), 1)
	})
	return nil
}

//Scale moves particles toward (factor < 1) or away from origin
func (f *Field) Scale(origin V.Vec32, factor float32) {
	U.ScalePositions(f.Positions, origin, factor)
}

//Bounds of the particle positions
func (f *Field) Bounds() G.Bounds {
	return (&G.Mesh{Vertexes: f.Positions}).Bounds()
}

//PositionBuffer flat xyz floats for a GL array buffer
func (f *Field) PositionBuffer() []float32 {
	buf := make([]float32, 0, len(f.Positions)*3)
	for _, p := range f.Positions {
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

func (f *Field) AlphaBuffer() []float32 {
	buf := make([]float32, len(f.Alpha))
	copy(buf, f.Alpha)
	return buf
}
