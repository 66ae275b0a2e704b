package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	S "pointfill.com/pointfill/sampler"
	V "pointfill.com/pointfill/vector"
)

func writeFile(t *testing.T, name string, body string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, MeshCube, cfg.Mesh.Kind)
	assert.Equal(t, S.DefaultMaxAttempts, cfg.SamplerOptions().MaxAttempts)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
[window]
title = "box fill"

[mesh]
kind = "box"
origin = [0.0, 1.0, 0.0]
width = 2.0
height = 1.0
depth = 1.0

[sampling]
points = 250
seed = 11
workers = 2

[render]
fade_axis = 1
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "box fill", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width, "unset keys keep defaults")
	assert.Equal(t, MeshBox, cfg.Mesh.Kind)
	assert.Equal(t, V.Vec32{0, 1, 0}, cfg.Mesh.Origin)
	assert.Equal(t, float32(2), cfg.Mesh.Width)
	assert.Equal(t, S.Options{Seed: 11, MaxAttempts: S.DefaultMaxAttempts, Workers: 2}, cfg.SamplerOptions())
	assert.Equal(t, 1, cfg.Render.FadeAxis)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
mesh:
  kind: tetrahedron
  corners:
    - [0, 0, 0]
    - [2, 0, 0]
    - [0, 2, 0]
    - [0, 0, 2]
sampling:
  points: 40
  seed: 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, MeshTetrahedron, cfg.Mesh.Kind)
	assert.Equal(t, V.Vec32{2, 0, 0}, cfg.Mesh.Corners[1])
	assert.Equal(t, 40, cfg.Sampling.Points)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "scene.json", `{}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.toml", `[mesh`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "kind.toml", "[mesh]\nkind = \"torus\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "neg.toml", "[sampling]\npoints = -4\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mesh.Kind = MeshBox
	cfg.Mesh.Depth = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Window.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Render.FadeAxis = 5
	assert.Error(t, cfg.Validate())
}

func TestBuildMesh(t *testing.T) {
	cfg := DefaultConfig()

	cube, err := BuildMesh(cfg.Mesh)
	require.NoError(t, err)
	assert.Equal(t, 12, cube.TriangleCount())

	cfg.Mesh.Kind = MeshTetrahedron
	tet, err := BuildMesh(cfg.Mesh)
	require.NoError(t, err)
	assert.Equal(t, 4, tet.TriangleCount())

	cfg.Mesh.Kind = MeshBox
	cfg.Mesh.Width = 4
	box, err := BuildMesh(cfg.Mesh)
	require.NoError(t, err)
	assert.Equal(t, V.Vec32{4, 1, 1}, box.Bounds().Size())

	cfg.Mesh.Kind = "sphere"
	_, err = BuildMesh(cfg.Mesh)
	assert.Error(t, err)
}

func TestBuildField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling.Points = 200
	cfg.Sampling.Seed = 8
	cfg.Render.Alpha = 0.5

	mesh, field, err := BuildField(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 200, field.Count())
	for i, p := range field.Positions {
		require.True(t, mesh.Bounds().Contains(p))
		require.Equal(t, float32(0.5), field.Alpha[i])
	}

	cfg.Render.FadeAxis = V.Z
	_, field, err = BuildField(context.Background(), cfg)
	require.NoError(t, err)
	for i, p := range field.Positions {
		assert.InDelta(t, p[2], field.Alpha[i], 1e-6)
	}

	cfg.Sampling.Points = -1
	_, _, err = BuildField(context.Background(), cfg)
	assert.ErrorIs(t, err, S.ErrInvalidInput)
}

func TestSceneCamera(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling.Points = 10
	cfg.Sampling.Seed = 1

	scene, err := NewScene(context.Background(), cfg)
	require.NoError(t, err)

	view := scene.ViewMatrix()
	c := mgl32.TransformCoordinate(mgl32.Vec3(scene.Mesh.Bounds().Center()), view)
	assert.InDelta(t, 0, c[0], 1e-6)
	assert.InDelta(t, 0, c[1], 1e-6)
	assert.InDelta(t, -cfg.Render.Distance, c[2], 1e-6)

	//Half a turn later the center still sits in front of the camera
	scene.Anim.Angle = 3.1
	c = mgl32.TransformCoordinate(mgl32.Vec3(scene.Mesh.Bounds().Center()), scene.ViewMatrix())
	assert.InDelta(t, -cfg.Render.Distance, c[2], 1e-5)

	proj := scene.ProjMatrix(200, 100)
	assert.NotEqual(t, mgl32.Ident4(), proj)
	near := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, -0.01}, proj)
	assert.InDelta(t, -1, near[2], 1e-4, "near plane maps to depth -1")
	far := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, -cfg.Render.Distance * 4}, proj)
	assert.InDelta(t, 1, far[2], 1e-4, "far plane maps to depth 1")
	assert.Equal(t, scene.ProjMatrix(100, 100), scene.ProjMatrix(100, 0), "zero height falls back to square")
}

func TestAnimationTimer(t *testing.T) {
	start := time.Unix(100, 0)
	a := &AnimationTimer{AppStart: start, CurrentTime: start}

	a.Step(start.Add(2*time.Second), 0.5)
	assert.InDelta(t, 1.0, a.Angle, 1e-6)
	assert.InDelta(t, 2.0, a.Elapsed(), 1e-6)

	a.Paused = true
	a.Step(start.Add(4*time.Second), 0.5)
	assert.InDelta(t, 1.0, a.Angle, 1e-6)
	assert.InDelta(t, 4.0, a.Elapsed(), 1e-6)
}
