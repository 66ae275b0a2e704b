package app

//Manages the point fill scene: builds the particle field, opens the window and runs the draw loop
import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	G "pointfill.com/pointfill/geometry"
	P "pointfill.com/pointfill/particles"
	SH "pointfill.com/pointfill/shaders"
)

//Camera tilt above the orbit plane, radians
const cameraTilt = 0.35

//Seconds timer for animation
type AnimationTimer struct {
	AppStart    time.Time //Time Application Started
	CurrentTime time.Time //Last Polled Time
	Paused      bool
	Angle       float32 //orbit angle accumulated while not paused
}

//Step advances the orbit by the wall clock time since the last step
func (a *AnimationTimer) Step(now time.Time, speed float32) {
	if !a.Paused {
		a.Angle += float32(now.Sub(a.CurrentTime).Seconds()) * speed
	}
	a.CurrentTime = now
}

//Elapsed seconds since start, fed to u_time
func (a *AnimationTimer) Elapsed() float32 {
	return float32(a.CurrentTime.Sub(a.AppStart).Seconds())
}

//Scene holds everything the draw loop needs
type Scene struct {
	Config  *Config
	Mesh    *G.Mesh
	Field   *P.Field
	Anim    *AnimationTimer
	Context *RenderContext
}

//NewScene samples the configured mesh. No GL calls
func NewScene(ctx context.Context, cfg *Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mesh, field, err := BuildField(ctx, cfg)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Scene{
		Config: cfg,
		Mesh:   mesh,
		Field:  field,
		Anim:   &AnimationTimer{AppStart: now, CurrentTime: now},
	}, nil
}

//ViewMatrix orbit camera looking at the mesh center
func (s *Scene) ViewMatrix() mgl32.Mat4 {
	c := s.Mesh.Bounds().Center()
	m := mgl32.Translate3D(0, 0, -s.Config.Render.Distance)
	m = m.Mul4(mgl32.HomogRotate3DX(cameraTilt))
	m = m.Mul4(mgl32.HomogRotate3DY(s.Anim.Angle))
	return m.Mul4(mgl32.Translate3D(-c[0], -c[1], -c[2]))
}

//ProjMatrix perspective for a framebuffer of w x h pixels
func (s *Scene) ProjMatrix(w int, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	far := s.Config.Render.Distance * 4
	return mgl32.Perspective(s.Config.Render.FovY, aspect, 0.01, far)
}

//Run opens the viewer and draws until the window closes or ctx is done.
//GL calls are bound to the calling OS thread
func Run(ctx context.Context, cfg *Config) error {
	scene, err := NewScene(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("particle field sampled", "points", scene.Field.Count(), "mesh", cfg.Mesh.Kind)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := InitGLFW(&AppWindow{cfg.Window.Width, cfg.Window.Height, cfg.Window.Title})
	if err != nil {
		return fmt.Errorf("could not initiate GLFW context window: %w", err)
	}
	defer glfw.Terminate()

	renderCtx, err := InitOpenGL(SH.PointSpriteCore, scene.Field)
	if err != nil {
		return fmt.Errorf("could not initialize OpenGL context: %w", err)
	}
	defer renderCtx.Release()

	renderCtx.GLFWindow = window
	renderCtx.ClearColor = cfg.Render.ClearColor
	scene.Context = renderCtx
	window.SetKeyCallback(scene.ProcessInput)

	scene.loop(ctx)
	return nil
}

func (s *Scene) loop(ctx context.Context) {
	window := s.Context.GLFWindow
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			window.SetShouldClose(true)
			break
		}
		s.Anim.Step(time.Now(), s.Config.Render.OrbitSpeed)
		w, h := window.GetFramebufferSize()
		s.Context.ModelView = s.ViewMatrix()
		s.Context.Proj = s.ProjMatrix(w, h)
		Draw(s.Context, s.Anim.Elapsed())
	}
}

//ProcessInput Escape quits, Space pauses the orbit, Tab logs the animation time
func (s *Scene) ProcessInput(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeySpace:
		s.Anim.Paused = !s.Anim.Paused
	case glfw.KeyTab:
		slog.Info("animation time", "seconds", s.Anim.Elapsed(), "orbit", s.Anim.Angle)
	}
}
