package app

//Viewer configuration. Defaults come from DefaultConfig, files only override what they set
import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	G "pointfill.com/pointfill/geometry"
	P "pointfill.com/pointfill/particles"
	S "pointfill.com/pointfill/sampler"
	V "pointfill.com/pointfill/vector"
)

//Mesh kinds understood by BuildMesh
const (
	MeshBox         = "box"
	MeshCube        = "cube"
	MeshTetrahedron = "tetrahedron"
)

type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

//MeshConfig describes the collider volume the particles fill.
//Box uses Width/Height/Depth centered on Origin, Tetrahedron uses Corners
type MeshConfig struct {
	Kind    string     `toml:"kind" yaml:"kind"`
	Origin  V.Vec32    `toml:"origin" yaml:"origin"`
	Width   float32    `toml:"width" yaml:"width"`
	Height  float32    `toml:"height" yaml:"height"`
	Depth   float32    `toml:"depth" yaml:"depth"`
	Corners [4]V.Vec32 `toml:"corners" yaml:"corners"`
}

type SamplingConfig struct {
	Points      int    `toml:"points" yaml:"points"`
	Seed        uint64 `toml:"seed" yaml:"seed"`
	MaxAttempts int    `toml:"max_attempts" yaml:"max_attempts"`
	Workers     int    `toml:"workers" yaml:"workers"`
}

//RenderConfig FadeAxis -1 keeps a flat alpha. Distance is the camera distance from the
//mesh center, OrbitSpeed in radians per second, FovY in radians
type RenderConfig struct {
	Alpha      float32    `toml:"alpha" yaml:"alpha"`
	FadeAxis   int        `toml:"fade_axis" yaml:"fade_axis"`
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
	Distance   float32    `toml:"distance" yaml:"distance"`
	OrbitSpeed float32    `toml:"orbit_speed" yaml:"orbit_speed"`
	FovY       float32    `toml:"fov_y" yaml:"fov_y"`
}

//Config our configuration structure for the point fill viewer
type Config struct {
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Mesh     MeshConfig     `toml:"mesh" yaml:"mesh"`
	Sampling SamplingConfig `toml:"sampling" yaml:"sampling"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
}

//DefaultConfig fills a unit cube with 5000 points
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Point Fill"},
		Mesh: MeshConfig{
			Kind:    MeshCube,
			Origin:  V.Vec32{0.5, 0.5, 0.5},
			Width:   1,
			Height:  1,
			Depth:   1,
			Corners: [4]V.Vec32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		},
		Sampling: SamplingConfig{Points: 5000, MaxAttempts: S.DefaultMaxAttempts, Workers: 1},
		Render: RenderConfig{
			Alpha:      1,
			FadeAxis:   -1,
			ClearColor: [4]float32{0.05, 0.05, 0.08, 1},
			Distance:   3,
			OrbitSpeed: 0.3,
			FovY:       0.8,
		},
	}
}

//LoadConfig reads a .toml, .yaml or .yml file over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Sampling.Points < 0 {
		return fmt.Errorf("point count %d is negative", c.Sampling.Points)
	}
	if c.Render.FadeAxis < -1 || c.Render.FadeAxis > V.Z {
		return fmt.Errorf("fade axis %d must be -1, 0, 1 or 2", c.Render.FadeAxis)
	}
	switch c.Mesh.Kind {
	case MeshBox:
		if c.Mesh.Width <= 0 || c.Mesh.Height <= 0 || c.Mesh.Depth <= 0 {
			return fmt.Errorf("box dimensions must be positive")
		}
	case MeshCube, MeshTetrahedron:
	default:
		return fmt.Errorf("unknown mesh kind %q", c.Mesh.Kind)
	}
	return nil
}

//SamplerOptions maps the sampling section onto sampler options
func (c *Config) SamplerOptions() S.Options {
	return S.Options{
		Seed:        c.Sampling.Seed,
		MaxAttempts: c.Sampling.MaxAttempts,
		Workers:     c.Sampling.Workers,
	}
}

func BuildMesh(m MeshConfig) (*G.Mesh, error) {
	switch m.Kind {
	case MeshBox:
		return G.Box(m.Width, m.Height, m.Depth, m.Origin), nil
	case MeshCube:
		return G.UnitCube(), nil
	case MeshTetrahedron:
		c := m.Corners
		return G.Tetrahedron(c[0], c[1], c[2], c[3]), nil
	}
	return nil, fmt.Errorf("unknown mesh kind %q", m.Kind)
}

//BuildField builds the configured mesh and fills it with particles
func BuildField(ctx context.Context, cfg *Config) (*G.Mesh, *P.Field, error) {
	mesh, err := BuildMesh(cfg.Mesh)
	if err != nil {
		return nil, nil, err
	}
	field, err := P.Fill(ctx, S.New(cfg.SamplerOptions()), mesh, cfg.Sampling.Points)
	if err != nil {
		return nil, nil, err
	}
	field.FillAlpha(cfg.Render.Alpha)
	if cfg.Render.FadeAxis >= 0 {
		if err := field.FadeAlong(cfg.Render.FadeAxis, mesh.Bounds()); err != nil {
			return nil, nil, err
		}
	}
	return mesh, field, nil
}
