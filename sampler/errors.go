package sampler

import "errors"

var (
	//ErrInvalidInput negative count, nil solid or a mesh without triangles
	ErrInvalidInput = errors.New("invalid sampler input")

	//ErrDegenerateGeometry flat bounding box or no candidate accepted within the attempt budget
	ErrDegenerateGeometry = errors.New("could not sample: degenerate or zero-volume mesh")
)
